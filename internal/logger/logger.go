// Package logger builds the zap logger used across WindRider.
//
// The terminal belongs to the renderer while the game runs, so logs go to a
// file unless configured otherwise.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	Path        string // output file; "stderr" or "stdout" are accepted too
	Development bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Path:   "windrider.log",
	}
}

// New builds a logger from cfg. An unknown level falls back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zc.Encoding = "json"
	} else {
		zc.Encoding = "console"
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	path := cfg.Path
	if path == "" {
		path = DefaultConfig().Path
	}
	if path != "stderr" && path != "stdout" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	log, err := zc.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
