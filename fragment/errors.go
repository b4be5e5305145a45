// Package fragment: sentinel error set.
package fragment

import "errors"

var (
	// ErrDegenerate names a numerically ill-conditioned configuration.
	// Fragment does not return it: it passes polygon.Prune's errors
	// through unchanged.
	ErrDegenerate = errors.New("fragment: degenerate numeric configuration")
)
