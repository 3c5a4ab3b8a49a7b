package interaction

import "time"

// Defaults used by DefaultConfig.
const (
	DefaultSwipeOffset = 50.0
	DefaultClickWindow = 500 * time.Millisecond
)

// Config configures recognition thresholds. It is fixed once the engine is
// created.
type Config struct {
	// SwipeOffset is the distance a contact must travel along an axis
	// before a swipe in that direction fires.
	// Default: 50
	SwipeOffset float64

	// ClickWindow is how long the engine waits after the last activation
	// before resolving the count to a callback.
	// Default: 500ms
	ClickWindow time.Duration
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SwipeOffset: DefaultSwipeOffset,
		ClickWindow: DefaultClickWindow,
	}
}

// Validate checks that all thresholds are usable.
func (c Config) Validate() error {
	if c.SwipeOffset <= 0 {
		return &ConfigError{Field: "SwipeOffset", Reason: "must be positive"}
	}
	if c.ClickWindow <= 0 {
		return &ConfigError{Field: "ClickWindow", Reason: "must be positive"}
	}
	return nil
}
