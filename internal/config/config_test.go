package config

import (
	"path/filepath"
	"testing"
)

// Load is once-guarded, so a single process gets one outcome; the trap to
// guard against is a failed first call being replayed as (nil, nil).
func TestLoad_FailureSticks(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-config.yaml")

	cfg, err := Load(missing)
	if err == nil {
		t.Fatalf("Load(%q) error = nil, want error", missing)
	}
	if cfg != nil {
		t.Fatalf("Load(%q) config = %+v, want nil", missing, cfg)
	}

	cfg, err = Load(missing)
	if err == nil {
		t.Fatal("second Load error = nil, want the original failure")
	}
	if cfg != nil {
		t.Fatalf("second Load config = %+v, want nil", cfg)
	}
}
