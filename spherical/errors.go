// Package spherical: sentinel error set.
// This file defines ONLY package-level sentinel errors; callers branch
// with errors.Is. NewCMFromString is the one routine that returns another
// error: math/big's parse error, unwrapped.
package spherical

import "errors"

var (
	// ErrZeroVector indicates that a vector with (near-)zero magnitude was
	// asked to normalize to a unit axis; the direction is undefined.
	ErrZeroVector = errors.New("spherical: cannot normalize a zero-length vector")

	// ErrDegenerate indicates a cm computation could not be resolved to
	// the requested tolerance (e.g. two axes are numerically coincident
	// in a context that requires them to differ).
	ErrDegenerate = errors.New("spherical: degenerate numeric configuration")
)
