package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.View != "map" {
		t.Errorf("expected view map, got %s", cfg.View)
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		t.Error("chart dimensions should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data: emissions.csv
view: bar
year: 2015
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Data != "emissions.csv" {
		t.Errorf("expected data emissions.csv, got %s", cfg.Data)
	}
	if cfg.View != "bar" {
		t.Errorf("expected view bar, got %s", cfg.View)
	}
	if cfg.Year != 2015 {
		t.Errorf("expected year 2015, got %d", cfg.Year)
	}
	// Unset fields keep defaults.
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
	if cfg.Chart.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Chart.Width)
	}
}

func TestLoadRejectsBadView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("view: pie\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown view")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Year = 2010
	cfg.View = "line"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Year != 2010 || loaded.View != "line" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("trends")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.View != "line" {
		t.Errorf("expected view line, got %s", cfg.View)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}
