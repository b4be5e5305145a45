// Package partition: sentinel error set.
package partition

import "errors"

var (
	// ErrNoLasso is returned when no lasso cap excluding another loop
	// could be found within Config.MaxLassoAdjust attempts and
	// Config.ForceSplit is false. The caller should log and skip this
	// polygon (§4.6).
	ErrNoLasso = errors.New("partition: no excluding lasso found")
)
