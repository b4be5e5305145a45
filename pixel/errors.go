// Package pixel: sentinel error set.
package pixel

import "errors"

var (
	// ErrNegativePixel names a negative pixel id; ids are used directly
	// as slice indices and must be non-negative. No function in this
	// package returns it: Build does not check ids before indexing.
	ErrNegativePixel = errors.New("pixel: negative pixel id")
)
