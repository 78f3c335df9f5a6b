package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lixiaohui100200/html2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all configuration for document generation.
type Config struct {
	Selector   string           `yaml:"selector"`
	Page       PageConfig       `yaml:"page"`
	Output     OutputConfig     `yaml:"output"`
	Pagination PaginationConfig `yaml:"pagination"`
	Header     BandConfig       `yaml:"header"`
	Footer     BandConfig       `yaml:"footer"`
}

// PageConfig defines the content band geometry in points.
type PageConfig struct {
	ContentWidth  float64  `yaml:"contentWidth"`
	ContentHeight float64  `yaml:"contentHeight"`
	X             *float64 `yaml:"x"` // nil = centered
	Y             *float64 `yaml:"y"` // nil = centered
}

// OutputConfig defines the artifact kind and name.
type OutputConfig struct {
	Type     string `yaml:"type"`     // "save", "file", or passthrough
	Filename string `yaml:"filename"` // used by save and file
}

// PaginationConfig defines the break strategy.
type PaginationConfig struct {
	Mode      string `yaml:"mode"`      // "adaptive" or "fixed"
	ItemAttr  string `yaml:"itemAttr"`  // attribute marking atomic elements
	GroupAttr string `yaml:"groupAttr"` // attribute marking container elements
}

// BandConfig defines a header or footer element.
type BandConfig struct {
	Selector  string `yaml:"selector"`
	EveryPage bool   `yaml:"everyPage"`
}

// DefaultConfig returns a neutral configuration; empty fields fall back to
// the library defaults.
func DefaultConfig() *Config {
	return &Config{Selector: "body"}
}

// LoadConfig loads configuration from a YAML file path.
// Returns an error if the file is not found (no silent fallback).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// applyFlags overlays explicitly set flags onto the config.
func applyFlags(cfg *Config, f *cliFlags) {
	if f.selector != "" {
		cfg.Selector = f.selector
	}
	if f.output != "" {
		cfg.Output.Filename = f.output
	}
	if f.outputType != "" {
		cfg.Output.Type = f.outputType
	}
	if f.page.contentWidth > 0 {
		cfg.Page.ContentWidth = f.page.contentWidth
	}
	if f.page.contentHeight > 0 {
		cfg.Page.ContentHeight = f.page.contentHeight
	}
	if !math.IsNaN(f.page.x) {
		x := f.page.x
		cfg.Page.X = &x
	}
	if !math.IsNaN(f.page.y) {
		y := f.page.y
		cfg.Page.Y = &y
	}
	if f.pagination.mode != "" {
		cfg.Pagination.Mode = f.pagination.mode
	}
	if f.pagination.itemAttr != "" {
		cfg.Pagination.ItemAttr = f.pagination.itemAttr
	}
	if f.pagination.groupAttr != "" {
		cfg.Pagination.GroupAttr = f.pagination.groupAttr
	}
	if f.bands.headerSelector != "" {
		cfg.Header.Selector = f.bands.headerSelector
	}
	if f.bands.headerEveryPage {
		cfg.Header.EveryPage = true
	}
	if f.bands.footerSelector != "" {
		cfg.Footer.Selector = f.bands.footerSelector
	}
	if f.bands.footerEveryPage {
		cfg.Footer.EveryPage = true
	}
}
