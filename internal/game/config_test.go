package game

import (
	"testing"
	"time"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"WINDRIDER_SEED", "WINDRIDER_TICK_RATE", "WINDRIDER_LEVEL_WIDTH", "WINDRIDER_LEVEL_HEIGHT",
		"WINDRIDER_TUNING_FILE", "WINDRIDER_START_RUNE", "WINDRIDER_TELEMETRY", "WINDRIDER_LOG_LEVEL",
		"WINDRIDER_LOG_FORMAT", "WINDRIDER_LOG_PATH", "WINDRIDER_LOG_DEV",
	} {
		t.Setenv(k, "")
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if got := cfg.Frame(); got != time.Second/60 {
		t.Errorf("Frame() = %v, want 1/60s", got)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("WINDRIDER_SEED", "12345")
	t.Setenv("WINDRIDER_TICK_RATE", "30")
	t.Setenv("WINDRIDER_LEVEL_WIDTH", "80")
	t.Setenv("WINDRIDER_TUNING_FILE", "tuning.yaml")
	t.Setenv("WINDRIDER_START_RUNE", "cryonis")
	t.Setenv("WINDRIDER_TELEMETRY", "true")
	t.Setenv("WINDRIDER_LOG_LEVEL", "DEBUG")
	t.Setenv("WINDRIDER_LOG_PATH", "/tmp/windrider.log")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}

	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.Frame() != time.Second/30 {
		t.Errorf("Frame() = %v, want 1/30s", cfg.Frame())
	}
	if cfg.LevelWidth != 80 {
		t.Errorf("LevelWidth = %d, want 80", cfg.LevelWidth)
	}
	if cfg.TuningFile != "tuning.yaml" {
		t.Errorf("TuningFile = %q, want tuning.yaml", cfg.TuningFile)
	}
	if cfg.StartRune != "cryonis" {
		t.Errorf("StartRune = %q, want cryonis", cfg.StartRune)
	}
	if !cfg.Telemetry {
		t.Error("Telemetry = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Path != "/tmp/windrider.log" {
		t.Errorf("Log.Path = %q, want /tmp/windrider.log", cfg.Log.Path)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"WINDRIDER_SEED", "abc"},
		{"WINDRIDER_TICK_RATE", "0"},
		{"WINDRIDER_TICK_RATE", "fast"},
		{"WINDRIDER_LEVEL_WIDTH", "3"},
		{"WINDRIDER_LEVEL_HEIGHT", "tall"},
		{"WINDRIDER_TELEMETRY", "maybe"},
		{"WINDRIDER_LOG_DEV", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("ConfigFromEnv() with %s=%q error = nil, want error", tt.key, tt.value)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePlaying, "playing"},
		{StateRuneMenu, "rune_menu"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
