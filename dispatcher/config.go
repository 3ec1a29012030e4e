package dispatcher

import "github.com/dshills/rewind/history"

// Config holds dispatcher configuration options.
type Config struct {
	// MaxHistory bounds the undo stack. Oldest entries are evicted first.
	// Zero or negative selects history.DefaultMaxEntries.
	MaxHistory int

	// EnableMetrics enables run/undo/redo timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps command execution in panic recovery.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxHistory:       history.DefaultMaxEntries,
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithMaxHistory returns a copy of the config with the history bound set.
func (c Config) WithMaxHistory(n int) Config {
	c.MaxHistory = n
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}
