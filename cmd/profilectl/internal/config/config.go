// Package config loads profilectl settings from defaults, an optional
// .profilectl.yaml and PROFILECTL_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/cellprof/codec"
	"github.com/katalvlaran/cellprof/dtw"
	"github.com/katalvlaran/cellprof/profile"
)

// Defaults.
const (
	DefaultFormat       = "json"
	DefaultLogLevel     = "info"
	DefaultLogJSON      = false
	DefaultColor        = true
	DefaultCompareLen   = 0
	DefaultDTWWindow    = 0
	DefaultSlopePenalty = 0.0
	DefaultDTWMemory    = "full"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the top-level profilectl configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Format  string        `mapstructure:"format"`
	Color   bool          `mapstructure:"color"`
	Log     LogConfig     `mapstructure:"log"`
	Compare CompareConfig `mapstructure:"compare"`
	DTW     DTWConfig     `mapstructure:"dtw"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// CompareConfig holds settings for the compare command.
type CompareConfig struct {
	// Length resamples both profiles before comparing. Zero keeps the
	// original sizes.
	Length int `mapstructure:"length"`
}

// DTWConfig holds dynamic time warping options.
type DTWConfig struct {
	Window       int     `mapstructure:"window"`
	SlopePenalty float64 `mapstructure:"slope_penalty"`
	Memory       string  `mapstructure:"memory"`
}

// Validate checks every field that has a restricted range.
func (c *Config) Validate() error {
	if _, err := codec.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}
	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Compare.Length != 0 && c.Compare.Length < profile.MinLength {
		return fmt.Errorf("%w: compare.length %d below %d", ErrInvalid, c.Compare.Length, profile.MinLength)
	}
	if c.DTW.Window < 0 {
		return fmt.Errorf("%w: dtw.window %d", ErrInvalid, c.DTW.Window)
	}
	if c.DTW.SlopePenalty < 0 {
		return fmt.Errorf("%w: dtw.slope_penalty %v", ErrInvalid, c.DTW.SlopePenalty)
	}
	if _, err := dtw.ParseMemoryMode(c.DTW.Memory); err != nil {
		return fmt.Errorf("%w: dtw.memory: %w", ErrInvalid, err)
	}

	return nil
}

// DTWOptions converts the dtw section into dtw options.
func (c *Config) DTWOptions() []dtw.Option {
	mode, _ := dtw.ParseMemoryMode(c.DTW.Memory)

	return []dtw.Option{
		dtw.WithWindow(c.DTW.Window),
		dtw.WithSlopePenalty(c.DTW.SlopePenalty),
		dtw.WithMemoryMode(mode),
	}
}
