package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("base URL = %q, want the local default", cfg.API.BaseURL)
	}
	if cfg.Notify.PollIntervalSec != 30 {
		t.Errorf("poll interval = %d, want 30", cfg.Notify.PollIntervalSec)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &Config{
		API:          APIConfig{BaseURL: "https://farm.example.com"},
		Notify:       NotifyConfig{PollIntervalSec: 60},
		LogFile:      "/tmp/avicontrol.log",
		SnapshotPath: "/tmp/catalog.db",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.API.BaseURL != want.API.BaseURL {
		t.Errorf("base URL = %q, want %q", got.API.BaseURL, want.API.BaseURL)
	}
	if got.Notify.PollIntervalSec != 60 {
		t.Errorf("poll interval = %d, want 60", got.Notify.PollIntervalSec)
	}
	if got.LogFile != want.LogFile {
		t.Errorf("log file = %q, want %q", got.LogFile, want.LogFile)
	}
	if got.SnapshotPath != want.SnapshotPath {
		t.Errorf("snapshot path = %q, want %q", got.SnapshotPath, want.SnapshotPath)
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "notify:\n  poll_interval_sec: -5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notify.PollIntervalSec != 30 {
		t.Errorf("poll interval = %d, want the 30s fallback", cfg.Notify.PollIntervalSec)
	}
}
