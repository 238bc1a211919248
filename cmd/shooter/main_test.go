package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr, expected string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"2222", "2222"},
	}
	for _, tt := range tests {
		if got := port(tt.addr); got != tt.expected {
			t.Errorf("port(%q) = %q, expected %q", tt.addr, got, tt.expected)
		}
	}
}

func TestLoadGameConfigRejectsBadPreset(t *testing.T) {
	flagDifficulty, flagFPS, flagConfig = "insane", 25, ""
	t.Cleanup(func() { flagDifficulty = "" })

	if _, err := loadGameConfig(); err == nil {
		t.Error("loadGameConfig() error = nil, expected unknown difficulty")
	}
}

func TestLoadGameConfigCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte("player:\n  max_health: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagDifficulty, flagFPS, flagConfig = "", 25, path
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Player.MaxHealth != 9 {
		t.Errorf("MaxHealth = %d, expected 9", cfg.Player.MaxHealth)
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.log")

	logger, closeLog, err := openLogger(path, true)
	if err != nil {
		t.Fatalf("openLogger() error = %v", err)
	}
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestFPSOverridesTickLength(t *testing.T) {
	tests := []struct {
		fps        int
		tickMS     int
		expectRate int
	}{
		{0, 40, 25},
		{50, 20, 50},
		{60, 17, 60},
	}
	for _, tt := range tests {
		flagDifficulty, flagFPS, flagConfig = "", tt.fps, ""

		cfg, err := loadGameConfig()
		if err != nil {
			t.Fatalf("loadGameConfig() error = %v", err)
		}
		if cfg.Schedule.TickMS != tt.tickMS {
			t.Errorf("fps=%d: tick_ms = %d, expected %d", tt.fps, cfg.Schedule.TickMS, tt.tickMS)
		}
		if got := tickRate(cfg); got != tt.expectRate {
			t.Errorf("fps=%d: tickRate() = %d, expected %d", tt.fps, got, tt.expectRate)
		}
	}
	flagFPS = 0
}
