// Package config loads CLI defaults from an optional YAML file; flags win
// over file values, file values win over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML document.
type Config struct {
	// BasePxPerDay is the world-space width of one day at zoom 1.
	BasePxPerDay float64 `yaml:"base_px_per_day"`
	// DayFirst renders day-precision labels as DD/MM/YYYY.
	DayFirst bool `yaml:"day_first"`
	// Output is the default output format: table, json, csv or summary.
	Output string `yaml:"output"`
	// LayersFile is the default layer persistence sidecar path.
	LayersFile string `yaml:"layers_file"`

	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`

	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		PanX   float64 `yaml:"pan_x"`
		PanY   float64 `yaml:"pan_y"`
		Zoom   float64 `yaml:"zoom"`
	} `yaml:"viewport"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.BasePxPerDay = 2.0
	cfg.Output = "table"
	cfg.Log.Level = "info"
	cfg.Viewport.Width = 1200
	cfg.Viewport.Height = 800
	cfg.Viewport.Zoom = 1.0
	return cfg
}

// Load reads a YAML config over the defaults. An empty path returns the
// defaults untouched; a named but missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if cfg.BasePxPerDay <= 0 {
		cfg.BasePxPerDay = Default().BasePxPerDay
	}
	if cfg.Viewport.Zoom <= 0 {
		cfg.Viewport.Zoom = 1.0
	}
	return cfg, nil
}
