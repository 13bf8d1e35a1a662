package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/actorsim/common"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TimingMode() != common.Timing50Hz {
		t.Fatalf("expected 50hz default, got %s", cfg.TimingMode())
	}
}

func TestLoadCustomOverlaysDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("timing: frame\nseed: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TimingMode() != common.TimingFrameSynchronized || cfg.Seed != 9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Window.Scale != Default().Window.Scale {
		t.Fatalf("expected unnamed fields to keep defaults, got scale %d", cfg.Window.Scale)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "timing", body: "timing: 30hz\n"},
		{name: "speed", body: "speed: 5\n"},
		{name: "scale", body: "window: {scale: 0}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit path")
	}
}
