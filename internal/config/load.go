package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// envOverrides are the environment variables read on top of file settings.
// Unset variables leave the file values alone.
type envOverrides struct {
	SwipeOffset float64  `env:"GESTURES_SWIPE_OFFSET"`
	ClickWindow Duration `env:"GESTURES_CLICK_WINDOW"`
	LogLevel    string   `env:"GESTURES_LOG_LEVEL"`
	LogFormat   string   `env:"GESTURES_LOG_FORMAT"`
}

// Load reads settings from path on top of the defaults, applies environment
// overrides and validates the result. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Settings, error) {
	return LoadWithEnv(path, env.ToMap(os.Environ()))
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(path string, environ map[string]string) (*Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// File doesn't exist, not an error
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := Decode(path, data, s); err != nil {
				return nil, err
			}
		}
	}

	if err := s.applyEnv(environ); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Decode parses data into s using the format implied by path's extension.
// Fields absent from data keep their current values.
func Decode(path string, data []byte, s *Settings) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}

// applyEnv overlays GESTURES_* variables.
func (s *Settings) applyEnv(environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.SwipeOffset != 0 {
		s.Gestures.SwipeOffset = o.SwipeOffset
	}
	if o.ClickWindow != 0 {
		s.Gestures.ClickWindow = o.ClickWindow
	}
	if o.LogLevel != "" {
		s.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		s.Log.Format = o.LogFormat
	}
	return nil
}
