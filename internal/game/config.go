package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/windrider/internal/logger"
	"github.com/samdwyer/windrider/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickRate is the number of simulation frames per second.
	TickRate int

	// LevelWidth and LevelHeight size the generated level, in cells.
	LevelWidth  int
	LevelHeight int

	// TuningFile is an optional YAML file overriding the embedded tuning.
	TuningFile string

	// StartRune is the ID of the rune active at spawn, empty for none.
	StartRune string

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool

	Log logger.Config
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		TickRate:    60,
		LevelWidth:  world.DefaultWidth,
		LevelHeight: world.DefaultHeight,
		Log:         logger.DefaultConfig(),
	}
}

// Frame returns the duration of one simulation frame.
func (c Config) Frame() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// ConfigFromEnv overlays WINDRIDER_* environment variables on the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("WINDRIDER_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WINDRIDER_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("WINDRIDER_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WINDRIDER_TICK_RATE %q: %w", v, err)
		}
		if rate <= 0 || rate > 1000 {
			return Config{}, fmt.Errorf("WINDRIDER_TICK_RATE %d out of range 1-1000", rate)
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv("WINDRIDER_LEVEL_WIDTH"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width < 8 {
			return Config{}, fmt.Errorf("invalid WINDRIDER_LEVEL_WIDTH %q", v)
		}
		cfg.LevelWidth = width
	}
	if v := os.Getenv("WINDRIDER_LEVEL_HEIGHT"); v != "" {
		height, err := strconv.Atoi(v)
		if err != nil || height < 8 {
			return Config{}, fmt.Errorf("invalid WINDRIDER_LEVEL_HEIGHT %q", v)
		}
		cfg.LevelHeight = height
	}
	cfg.TuningFile = os.Getenv("WINDRIDER_TUNING_FILE")
	cfg.StartRune = os.Getenv("WINDRIDER_START_RUNE")

	if v := os.Getenv("WINDRIDER_TELEMETRY"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WINDRIDER_TELEMETRY %q: %w", v, err)
		}
		cfg.Telemetry = on
	}

	if v := os.Getenv("WINDRIDER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("WINDRIDER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv("WINDRIDER_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv("WINDRIDER_LOG_DEV"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WINDRIDER_LOG_DEV %q: %w", v, err)
		}
		cfg.Log.Development = dev
	}

	return cfg, nil
}
