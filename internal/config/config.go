// Package config loads the demo program's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo configuration file.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	View   ViewConfig   `yaml:"view"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
}

// GridConfig sets the initial grid.
type GridConfig struct {
	Rows  int        `yaml:"rows"`
	Cols  int        `yaml:"cols"`
	Cells [][]string `yaml:"cells"`
}

// ViewConfig toggles component chrome.
type ViewConfig struct {
	CellWidth     int  `yaml:"cell_width"`
	ShowToolbar   bool `yaml:"toolbar"`
	ShowHeaders   bool `yaml:"headers"`
	ShowRowNums   bool `yaml:"row_numbers"`
	ShowRowDelete bool `yaml:"row_delete"`
	ShowStatus    bool `yaml:"status"`
	ReadOnly      bool `yaml:"read_only"`

	// SystemClipboard uses the OS clipboard for copy and paste instead of
	// an in-process one.
	SystemClipboard bool `yaml:"system_clipboard"`
}

// LogConfig controls the log sink. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ExportConfig controls the xlsx export written on exit. An empty Path
// disables export.
type ExportConfig struct {
	Path     string  `yaml:"path"`
	Sheet    string  `yaml:"sheet"`
	ColWidth float64 `yaml:"col_width"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grid: GridConfig{Rows: 1, Cols: 2},
		View: ViewConfig{
			CellWidth:     12,
			ShowToolbar:   true,
			ShowHeaders:   true,
			ShowRowNums:   true,
			ShowRowDelete: true,
			ShowStatus:    true,
		},
		Log:    LogConfig{Level: "info"},
		Export: ExportConfig{Sheet: "Sheet1"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the demo cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Rows < 0 {
		errs = append(errs, fmt.Errorf("grid.rows must not be negative, got %d", c.Grid.Rows))
	}
	if c.Grid.Cols < 0 {
		errs = append(errs, fmt.Errorf("grid.cols must not be negative, got %d", c.Grid.Cols))
	}
	if c.View.CellWidth < 0 {
		errs = append(errs, fmt.Errorf("view.cell_width must not be negative, got %d", c.View.CellWidth))
	}
	if c.Export.ColWidth < 0 {
		errs = append(errs, fmt.Errorf("export.col_width must not be negative, got %g", c.Export.ColWidth))
	}
	return errors.Join(errs...)
}
