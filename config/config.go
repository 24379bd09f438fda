// Package config resolves runtime settings from defaults, .env, environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/marquee/constants"
	"github.com/lixenwraith/marquee/timeline"
)

// EnvPrefix namespaces every environment key
const EnvPrefix = "MARQUEE_"

// Config holds all runtime settings
type Config struct {
	// Motion
	PixelsPerSecond float64
	PaddingRight    float64
	SnapIncrement   float64
	Reversed        bool

	// Feed
	DataPath  string
	CachePath string
	Dev       bool

	// Audio
	AudioEnabled bool
	MasterVolume float64

	// Logging
	LogPath  string
	LogLevel string

	// Layout: rail top row, negative centers vertically
	RailRow int

	// Color: auto, truecolor, 256
	ColorMode string
}

// Default returns the baseline configuration
func Default() *Config {
	cfg := &Config{
		PixelsPerSecond: constants.DefaultPixelsPerSecond,
		SnapIncrement:   constants.DefaultSnapIncrement,
		AudioEnabled:    false,
		MasterVolume:    0.5,
		LogLevel:        "info",
		RailRow:         -1,
		ColorMode:       "auto",
	}
	if dir, err := os.UserCacheDir(); err == nil {
		cfg.CachePath = filepath.Join(dir, "marquee", "treatments_order.json")
	}
	return cfg
}

// LoadDotEnv merges a .env file into the process environment without overriding set variables
// A missing file is not an error
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays MARQUEE_* environment variables; unparsable values are ignored
func (c *Config) LoadEnv() {
	envFloat("PIXELS_PER_SECOND", &c.PixelsPerSecond)
	envFloat("PADDING_RIGHT", &c.PaddingRight)
	envFloat("SNAP", &c.SnapIncrement)
	envBool("REVERSED", &c.Reversed)

	envString("DATA", &c.DataPath)
	envString("CACHE", &c.CachePath)
	envBool("DEV", &c.Dev)

	envBool("AUDIO_ENABLED", &c.AudioEnabled)
	// Volume is given as 0-100
	if v := os.Getenv(EnvPrefix + "MASTER_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	envString("LOG", &c.LogPath)
	envString("LOG_LEVEL", &c.LogLevel)

	if v := os.Getenv(EnvPrefix + "RAIL_ROW"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.RailRow = val
		}
	}
	envString("COLOR", &c.ColorMode)
}

// BindFlags registers command-line overrides on fs, defaulting to the current values
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.PixelsPerSecond, "speed", c.PixelsPerSecond, "rail speed in columns per second")
	fs.Float64Var(&c.PaddingRight, "padding", c.PaddingRight, "extra columns at the loop seam")
	fs.Float64Var(&c.SnapIncrement, "snap", c.SnapIncrement, "xPercent snap increment, 0 disables")
	fs.BoolVar(&c.Reversed, "reversed", c.Reversed, "start scrolling right")
	fs.StringVar(&c.DataPath, "data", c.DataPath, "treatment feed JSON (default: built-in list)")
	fs.StringVar(&c.CachePath, "cache", c.CachePath, "order cache file, empty disables")
	fs.BoolVar(&c.Dev, "dev", c.Dev, "reshuffle on every start and skip the order cache")
	fs.BoolVar(&c.AudioEnabled, "audio", c.AudioEnabled, "play cues on seek and wheel bursts")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "log file path, empty discards")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, error or none")
	fs.IntVar(&c.RailRow, "row", c.RailRow, "rail top row, negative centers")
	fs.StringVar(&c.ColorMode, "color", c.ColorMode, "color mode: auto, truecolor, 256")
}

// Validate rejects settings the engine cannot run with
func (c *Config) Validate() error {
	if !(c.PixelsPerSecond > 0) || math.IsInf(c.PixelsPerSecond, 0) {
		return fmt.Errorf("speed must be positive, got %v", c.PixelsPerSecond)
	}
	if c.PaddingRight < 0 || math.IsNaN(c.PaddingRight) {
		return fmt.Errorf("padding must be non-negative, got %v", c.PaddingRight)
	}
	if c.SnapIncrement < 0 || math.IsNaN(c.SnapIncrement) {
		return fmt.Errorf("snap must be non-negative, got %v", c.SnapIncrement)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("volume must be within 0-1, got %v", c.MasterVolume)
	}
	switch c.ColorMode {
	case "auto", "truecolor", "true", "24bit", "256":
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}
	return nil
}

// Timeline returns the loop construction settings
func (c *Config) Timeline() timeline.Config {
	return timeline.Config{
		PixelsPerSecond: c.PixelsPerSecond,
		PaddingRight:    c.PaddingRight,
		SnapIncrement:   c.SnapIncrement,
		Reversed:        c.Reversed,
	}
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok {
		*dst = v
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = val
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			*dst = val
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
