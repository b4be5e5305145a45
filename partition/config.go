package partition

// Config tunes the lasso method's tolerances (mirroring ADJUST_LASSO,
// FORCE_SPLIT and OVERWRITE_ORIGINAL; there is no ALL_ONEBOUNDARY field).
type Config struct {
	// MaxLassoAdjust bounds how many times a candidate lasso radius is
	// halved toward the loop's minimal enclosing radius before giving
	// up (ADJUST_LASSO).
	MaxLassoAdjust int

	// ForceSplit, when true, allows Partition to subdivide by a loop's
	// own minimal enclosing cap even when no lasso can be found that
	// excludes another loop, reporting Partial instead of failing
	// outright (FORCE_SPLIT).
	ForceSplit bool

	// OverwriteOriginal, when true, has the lassoed child replace the
	// input polygon in its slot instead of being appended as a new
	// piece (OVERWRITE_ORIGINAL).
	OverwriteOriginal bool
}

// Option configures a Config.
type Option func(*Config)

// WithMaxLassoAdjust sets the ADJUST_LASSO retry bound.
func WithMaxLassoAdjust(n int) Option {
	return func(c *Config) { c.MaxLassoAdjust = n }
}

// WithForceSplit toggles FORCE_SPLIT.
func WithForceSplit(b bool) Option {
	return func(c *Config) { c.ForceSplit = b }
}

// WithOverwriteOriginal toggles OVERWRITE_ORIGINAL.
func WithOverwriteOriginal(b bool) Option {
	return func(c *Config) { c.OverwriteOriginal = b }
}

// DefaultConfig returns the lasso method's default tuning: 8 adjustment
// steps, force-split disabled, and the lassoed child overwriting the
// original slot (matching the balkanize driver's default expectation
// that stage 2 operates in place, §4.5).
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		MaxLassoAdjust:    8,
		ForceSplit:        false,
		OverwriteOriginal: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
