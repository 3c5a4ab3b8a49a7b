package config

import (
	"fmt"
	"time"

	"github.com/dshills/gestures/internal/interaction"
	"github.com/dshills/gestures/internal/logging"
)

// Settings is the complete configuration.
type Settings struct {
	Gestures GestureSettings `toml:"gestures" yaml:"gestures"`
	Log      LogSettings     `toml:"log" yaml:"log"`
	Elements []Element       `toml:"elements" yaml:"elements"`
	Bindings []Binding       `toml:"bindings" yaml:"bindings"`
}

// GestureSettings holds recognition thresholds.
type GestureSettings struct {
	// SwipeOffset is the distance a contact travels before a swipe fires.
	SwipeOffset float64 `toml:"swipe_offset" yaml:"swipe_offset"`
	// ClickWindow is the click debounce window.
	ClickWindow Duration `toml:"click_window" yaml:"click_window"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Element declares a rectangle on the demo surface, in terminal cells.
type Element struct {
	ID    string `toml:"id" yaml:"id"`
	Label string `toml:"label" yaml:"label"`
	X     int    `toml:"x" yaml:"x"`
	Y     int    `toml:"y" yaml:"y"`
	W     int    `toml:"w" yaml:"w"`
	H     int    `toml:"h" yaml:"h"`
	Touch bool   `toml:"touch" yaml:"touch"`
}

// Binding registers one gesture on a declared element.
type Binding struct {
	Element string `toml:"element" yaml:"element"`
	Gesture string `toml:"gesture" yaml:"gesture"`
	// Count is the activation count for numbered-clicks.
	Count int `toml:"count" yaml:"count"`
	// Keys is a chord such as "ctrl+alt+a" for keystroke.
	Keys string `toml:"keys" yaml:"keys"`
	// On selects the swipe callback: "end" (default) fires once when the
	// contact lifts, "start" fires on every qualifying move.
	On string `toml:"on" yaml:"on"`
	// Message is reported when the gesture is recognized.
	Message string `toml:"message" yaml:"message"`
}

// Duration is a time.Duration written as a string like "500ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns settings with built-in defaults and no elements.
func Default() *Settings {
	cfg := interaction.DefaultConfig()
	return &Settings{
		Gestures: GestureSettings{
			SwipeOffset: cfg.SwipeOffset,
			ClickWindow: Duration(cfg.ClickWindow),
		},
		Log: LogSettings{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Engine returns the recognition configuration.
func (s *Settings) Engine() interaction.Config {
	return interaction.Config{
		SwipeOffset: s.Gestures.SwipeOffset,
		ClickWindow: time.Duration(s.Gestures.ClickWindow),
	}
}

// Logging returns logger options writing to the default output.
func (s *Settings) Logging() logging.Options {
	return logging.Options{
		Level:  s.Log.Level,
		Format: s.Log.Format,
	}
}

// Element returns the declared element with the given id.
func (s *Settings) Element(id string) (Element, bool) {
	for _, e := range s.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Validate checks every setting and returns the first problem found.
func (s *Settings) Validate() error {
	if err := s.Engine().Validate(); err != nil {
		return &ValidationError{Path: "gestures", Message: err.Error(), Err: err}
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return &ValidationError{Path: "log.level", Message: err.Error(), Err: err}
	}
	if _, err := logging.New(logging.Options{Format: s.Log.Format}); err != nil {
		return &ValidationError{Path: "log.format", Message: err.Error(), Err: err}
	}

	seen := make(map[string]bool, len(s.Elements))
	for i, e := range s.Elements {
		path := fmt.Sprintf("elements[%d]", i)
		if e.ID == "" {
			return &ValidationError{Path: path + ".id", Message: "must not be empty"}
		}
		if seen[e.ID] {
			return &ValidationError{Path: path + ".id", Message: "duplicate id " + e.ID}
		}
		seen[e.ID] = true
		if e.W <= 0 || e.H <= 0 {
			return &ValidationError{Path: path, Message: "width and height must be positive"}
		}
	}

	for i, b := range s.Bindings {
		if _, err := s.registration(i, b, nil, nil); err != nil {
			return err
		}
	}
	return nil
}
