// Package polygon: sentinel error set.
package polygon

import "errors"

var (
	// ErrNoCaps is returned by operations that require at least one cap
	// (e.g. finding the smallest cap of a polygon) when called on a
	// polygon representing the whole sphere (zero caps).
	ErrNoCaps = errors.New("polygon: polygon has no caps")

	// ErrDegenerate indicates prune or boundary enumeration could not
	// resolve a numerically ill-conditioned configuration within the
	// given tolerance. Corresponds to the originating specification's
	// NUMERIC_DEGENERACY / FAIL outcome (§4.1, §7).
	ErrDegenerate = errors.New("polygon: degenerate numeric configuration")
)
