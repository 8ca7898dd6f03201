package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultData   = "co2_emission_asean_clean.csv"
	DefaultYear   = 2020
	DefaultView   = "map"
	DefaultTheme  = "ocean"
	DefaultWidth  = 80
	DefaultHeight = 24
)

type Config struct {
	Data  string      `yaml:"data"`
	Year  int         `yaml:"year"`
	View  string      `yaml:"view"`
	Theme string      `yaml:"theme"`
	Chart ChartConfig `yaml:"chart"`
}

type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Data:  DefaultData,
		Year:  DefaultYear,
		View:  DefaultView,
		Theme: DefaultTheme,
		Chart: ChartConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values no view could render.
func (c *Config) Validate() error {
	switch c.View {
	case "map", "line", "bar":
	default:
		return fmt.Errorf("unknown view %q (want map, line, or bar)", c.View)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	return nil
}
