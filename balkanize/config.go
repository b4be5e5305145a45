package balkanize

import (
	"github.com/katalvlaran/skymask/spherical"
)

// RenumberMode selects how stage 3 assigns final polygon ids.
type RenumberMode int

const (
	// RenumberSequential assigns ids 0..n-1 in final pixel-sorted order
	// (the "-n" CLI mode).
	RenumberSequential RenumberMode = iota
	// RenumberByPixel assigns each polygon its own pixel id (the "-p"
	// CLI mode).
	RenumberByPixel
	// RenumberPreserve leaves each polygon's original id untouched.
	RenumberPreserve
)

// Config tunes Balkanize's numeric tolerance and stage 2/3 behavior,
// mirroring ADJUST_LASSO / FORCE_SPLIT / OVERWRITE_ORIGINAL / WARNMAX as
// a single runtime struct per §9's migration notes. It has no field for
// CARRY_ON_REGARDLESS (Balkanize always skips a failed polygon and goes
// on) or for ALL_ONEBOUNDARY.
type Config struct {
	// Tol is the angular tolerance (as a CM value) passed to every
	// Prune/Fragment/Partition call.
	Tol spherical.CM

	// LassoAdjust bounds partition's lasso-radius retries
	// (ADJUST_LASSO).
	LassoAdjust int

	// ForceSplit allows partition to proceed with an approximate split
	// when no excluding lasso is found, instead of failing that polygon
	// (FORCE_SPLIT).
	ForceSplit bool

	// OverwriteMode has partition's lassoed child replace the original
	// slot instead of being appended fresh (OVERWRITE_ORIGINAL).
	OverwriteMode bool

	// MaxWarnings bounds how many warnings Result.Warnings retains
	// before further ones are only counted (WARNMAX).
	MaxWarnings int

	// Renumber selects stage 3's id-assignment policy.
	Renumber RenumberMode

	// Logger receives warning narration. Defaults to NopLogger.
	Logger Logger
}

// Option configures a Config.
type Option func(*Config)

// WithTol sets the angular tolerance used throughout the run.
func WithTol(tol spherical.CM) Option {
	return func(c *Config) { c.Tol = tol }
}

// WithLassoAdjust sets the ADJUST_LASSO retry bound passed to partition.
func WithLassoAdjust(n int) Option {
	return func(c *Config) { c.LassoAdjust = n }
}

// WithForceSplit toggles FORCE_SPLIT.
func WithForceSplit(b bool) Option {
	return func(c *Config) { c.ForceSplit = b }
}

// WithOverwriteMode toggles OVERWRITE_ORIGINAL.
func WithOverwriteMode(b bool) Option {
	return func(c *Config) { c.OverwriteMode = b }
}

// WithMaxWarnings sets WARNMAX.
func WithMaxWarnings(n int) Option {
	return func(c *Config) { c.MaxWarnings = n }
}

// WithRenumberMode selects stage 3's id-assignment policy.
func WithRenumberMode(m RenumberMode) Option {
	return func(c *Config) { c.Renumber = m }
}

// WithLogger installs a Logger for progress/warning narration.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// DefaultConfig returns the engine's default tuning: tolerance 1e-9,
// 8 lasso-adjustment steps (matching mangle's own default), force-split
// and overwrite-mode both on (stage 2 always runs in place and always
// makes a best effort), 8 retained warnings (WARNMAX), sequential
// renumbering, and a no-op Logger.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Tol:           spherical.NewCM(1e-9),
		LassoAdjust:   8,
		ForceSplit:    true,
		OverwriteMode: true,
		MaxWarnings:   8,
		Renumber:      RenumberSequential,
		Logger:        NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
