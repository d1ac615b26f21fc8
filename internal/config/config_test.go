package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PersonalizedCount != 10 {
		t.Errorf("PersonalizedCount = %d, want 10", cfg.PersonalizedCount)
	}
	if cfg.MaxCount != 50 {
		t.Errorf("MaxCount = %d, want 50", cfg.MaxCount)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if len(cfg.Weights) == 0 {
		t.Error("Weights missing from loaded config")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexrec.yaml")
	content := "max_count: 25\npersonalized_count: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxCount != 25 {
		t.Errorf("MaxCount = %d, want 25", cfg.MaxCount)
	}
	if cfg.PersonalizedCount != 5 {
		t.Errorf("PersonalizedCount = %d, want 5", cfg.PersonalizedCount)
	}
	// Untouched keys keep their defaults.
	if cfg.ReviewCount != 10 {
		t.Errorf("ReviewCount = %d, want 10", cfg.ReviewCount)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexrec.yaml")
	if err := os.WriteFile(path, []byte("max_count: 25\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LEXREC_MAX_COUNT", "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxCount != 30 {
		t.Errorf("MaxCount = %d, want 30 (env wins)", cfg.MaxCount)
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexrec.yaml")
	if err := os.WriteFile(path, []byte("min_count: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for min_count 0")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for an explicitly named missing file")
	}
}
