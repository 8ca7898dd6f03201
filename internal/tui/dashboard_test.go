package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anastasyalesnussa/aseanco2/internal/config"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig(t *testing.T, csv string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Data = path
	return cfg
}

const sampleCSV = `country,year,co2_per_capita
Indonesia,2018,1.6
Indonesia,2019,1.7
Indonesia,2020,1.8
Vietnam,2018,1.9
Vietnam,2019,2.0
Vietnam,2020,2.1
`

func TestNewSeedsSelection(t *testing.T) {
	cfg := testConfig(t, sampleCSV)
	cfg.Year = 2019
	cfg.View = "bar"

	m := New(cfg)
	if m.loadErr != nil {
		t.Fatalf("unexpected load error: %v", m.loadErr)
	}
	if m.sel.Year != 2019 {
		t.Errorf("expected year 2019, got %d", m.sel.Year)
	}
	if m.sel.Mode != ModeBar {
		t.Errorf("expected bar mode, got %s", m.sel.Mode)
	}
}

func TestNewClampsConfigYear(t *testing.T) {
	cfg := testConfig(t, sampleCSV)
	cfg.Year = 1990

	m := New(cfg)
	if m.sel.Year != 2018 {
		t.Errorf("expected clamp to 2018, got %d", m.sel.Year)
	}
}

func TestYearStepping(t *testing.T) {
	cfg := testConfig(t, sampleCSV)
	cfg.Year = 2019

	var model tea.Model = New(cfg)

	model, _ = model.Update(key("l"))
	if got := model.(Model).sel.Year; got != 2020 {
		t.Errorf("after l: expected 2020, got %d", got)
	}

	// Upper bound holds
	model, _ = model.Update(key("l"))
	if got := model.(Model).sel.Year; got != 2020 {
		t.Errorf("expected clamp at 2020, got %d", got)
	}

	model, _ = model.Update(key("H"))
	if got := model.(Model).sel.Year; got != 2018 {
		t.Errorf("after H: expected clamp to 2018, got %d", got)
	}

	model, _ = model.Update(key("G"))
	if got := model.(Model).sel.Year; got != 2020 {
		t.Errorf("after G: expected 2020, got %d", got)
	}

	model, _ = model.Update(key("g"))
	if got := model.(Model).sel.Year; got != 2018 {
		t.Errorf("after g: expected 2018, got %d", got)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := model.(Model).sel.Year; got != 2018 {
		t.Errorf("left at lower bound: expected 2018, got %d", got)
	}
}

func TestModeSwitching(t *testing.T) {
	cfg := testConfig(t, sampleCSV)

	var model tea.Model = New(cfg)
	if model.(Model).sel.Mode != ModeMap {
		t.Fatalf("expected map default, got %s", model.(Model).sel.Mode)
	}

	model, _ = model.Update(key("i"))
	if model.(Model).sel.Mode != ModeLine {
		t.Errorf("expected line after i, got %s", model.(Model).sel.Mode)
	}

	model, _ = model.Update(key("b"))
	if model.(Model).sel.Mode != ModeBar {
		t.Errorf("expected bar after b, got %s", model.(Model).sel.Mode)
	}

	model, _ = model.Update(key("m"))
	if model.(Model).sel.Mode != ModeMap {
		t.Errorf("expected map after m, got %s", model.(Model).sel.Mode)
	}

	// Tab cycles through all three and wraps
	for _, want := range []ViewMode{ModeLine, ModeBar, ModeMap} {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
		if model.(Model).sel.Mode != want {
			t.Errorf("tab cycle: expected %s, got %s", want, model.(Model).sel.Mode)
		}
	}
}

func TestViewTitles(t *testing.T) {
	cfg := testConfig(t, sampleCSV)
	cfg.Year = 2020

	var model tea.Model = New(cfg)

	view := model.View()
	if !strings.Contains(view, "CO2 Emissions per Capita — 2020") {
		t.Error("expected map title with year")
	}

	model, _ = model.Update(key("i"))
	if !strings.Contains(model.View(), "Historical CO2 Emissions Trends") {
		t.Error("expected line chart title")
	}

	model, _ = model.Update(key("b"))
	if !strings.Contains(model.View(), "CO2 Emission Comparison — 2020") {
		t.Error("expected bar chart title")
	}
}

func TestEmptyYearInformational(t *testing.T) {
	// 2020 sits inside the bounds but has no rows
	cfg := testConfig(t, `country,year,co2_per_capita
Indonesia,2019,1.7
Indonesia,2021,1.9
`)
	cfg.Year = 2019

	var model tea.Model = New(cfg)
	model, _ = model.Update(key("l"))

	view := model.View()
	if !strings.Contains(view, "no records for 2020") {
		t.Errorf("expected empty state message, got:\n%s", view)
	}
}

func TestLoadErrorInline(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Data = filepath.Join(t.TempDir(), "missing.csv")

	var model tea.Model = New(cfg)

	view := model.View()
	if !strings.Contains(view, "DATA LOAD FAILED") {
		t.Error("expected inline load error panel")
	}

	// Navigation keys are inert but must not panic without a dataset
	model, _ = model.Update(key("l"))
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	_ = model.View()
}

func TestReloadRecovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")

	cfg := config.DefaultConfig()
	cfg.Data = path

	var model tea.Model = New(cfg)
	if model.(Model).loadErr == nil {
		t.Fatal("expected load error for missing file")
	}

	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	model, _ = model.Update(key("r"))
	if model.(Model).loadErr != nil {
		t.Errorf("expected recovery after reload, got %v", model.(Model).loadErr)
	}
}

func TestQuitKeys(t *testing.T) {
	cfg := testConfig(t, sampleCSV)
	model := New(cfg)

	_, cmd := model.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in   string
		want ViewMode
	}{
		{"map", ModeMap},
		{"line", ModeLine},
		{"bar", ModeBar},
		{"anything", ModeMap},
	}
	for _, tt := range tests {
		if got := ParseViewMode(tt.in); got != tt.want {
			t.Errorf("ParseViewMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
