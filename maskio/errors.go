// Package maskio: sentinel error set.
package maskio

import "errors"

var (
	// ErrMalformedHeader is returned when a polygon count header line or
	// a polygon block header line cannot be parsed.
	ErrMalformedHeader = errors.New("maskio: malformed header line")

	// ErrMalformedCap is returned when a cap line does not contain
	// exactly four numeric fields.
	ErrMalformedCap = errors.New("maskio: malformed cap line")

	// ErrCapCountMismatch is returned when the input ends before a
	// polygon block's declared number of cap lines has been read. A next
	// block header met too early is reported as ErrMalformedCap, and cap
	// lines beyond the declared count are skipped.
	ErrCapCountMismatch = errors.New("maskio: cap count does not match header")
)
