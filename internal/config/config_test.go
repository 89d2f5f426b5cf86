package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Addr())
	}
	if cfg.DataFile != "cats.json" {
		t.Fatalf("expected cats.json, got %q", cfg.DataFile)
	}
	if !cfg.WatchDataFile {
		t.Fatalf("expected watch enabled by default")
	}
	if cfg.DBDSN != "" {
		t.Fatalf("expected no dsn, got %q", cfg.DBDSN)
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: %v %v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9000\nDATA_FILE=from-file.json\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DATA_FILE", "from-env.json")
	t.Setenv("WATCH_DATA_FILE", "false")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected port from file, got %q", cfg.Port)
	}
	if cfg.DataFile != "from-env.json" {
		t.Fatalf("expected env to win, got %q", cfg.DataFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.WatchDataFile {
		t.Fatalf("expected watch disabled")
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("expected 30s, got %v", cfg.WriteTimeout)
	}
}
