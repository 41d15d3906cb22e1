// Package main is the entry point for WindRider.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/windrider/internal/game"
	"github.com/samdwyer/windrider/internal/logger"
	"github.com/samdwyer/windrider/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			zl.Warn("telemetry setup failed, running without traces", zap.Error(err))
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					zl.Error("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	g, err := game.New(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize game", zap.Error(err))
	}

	if err := g.Run(ctx); err != nil {
		zl.Fatal("game error", zap.Error(err))
	}
}

// setupOTelEnv maps WINDRIDER_OTLP_* variables onto the standard OTEL
// exporter variables unless those are already set.
func setupOTelEnv() {
	mapping := map[string]string{
		"WINDRIDER_OTLP_ENDPOINT": "OTEL_EXPORTER_OTLP_ENDPOINT",
		"WINDRIDER_OTLP_HEADERS":  "OTEL_EXPORTER_OTLP_HEADERS",
	}
	for from, to := range mapping {
		if v := os.Getenv(from); v != "" && os.Getenv(to) == "" {
			os.Setenv(to, v)
		}
	}
}
