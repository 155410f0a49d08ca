// Package config loads the desktop's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Screen is the host window.
type Screen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Chrome holds window decoration metrics in pixels.
type Chrome struct {
	BarHeight float64 `yaml:"bar_height"`
	EdgeGrab  float64 `yaml:"edge_grab"`
	CloseSize float64 `yaml:"close_size"` // 0 = bar height
}

// RGB is a color written as [r, g, b].
type RGB []int

// Color converts to an opaque color. Call Validate first.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 0xff}
}

// Tints are the highlight colors of the selected and focused windows.
type Tints struct {
	Selected RGB `yaml:"selected"`
	Focused  RGB `yaml:"focused"`
}

// Logging configures the zap logger.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level       string   `yaml:"level"`
	Development bool     `yaml:"development"`
	OutputPaths []string `yaml:"output_paths,omitempty"`
}

// WindowKind selects the content of an initial window.
type WindowKind string

const (
	KindConsole WindowKind = "console"
	KindMap     WindowKind = "map"
	KindShape   WindowKind = "shape"
)

// Window describes a window opened at startup.
type Window struct {
	Kind   WindowKind `yaml:"kind"`
	Title  string     `yaml:"title,omitempty"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`

	// map
	Lat  float64 `yaml:"lat,omitempty"`
	Lon  float64 `yaml:"lon,omitempty"`
	Zoom int     `yaml:"zoom,omitempty"`

	// shape
	Shapefile string `yaml:"shapefile,omitempty"`
}

type Config struct {
	Screen  Screen   `yaml:"screen"`
	Chrome  Chrome   `yaml:"chrome"`
	Tints   Tints    `yaml:"tints"`
	Logging Logging  `yaml:"logging"`
	Windows []Window `yaml:"windows"`
}

const maxMapZoom = 19

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Screen: Screen{Width: 1024, Height: 768, Title: "canvasdesk"},
		Chrome: Chrome{BarHeight: 20, EdgeGrab: 5},
		Tints: Tints{
			Selected: RGB{200, 100, 100},
			Focused:  RGB{100, 100, 200},
		},
		Logging: Logging{Level: "info"},
		Windows: []Window{
			{Kind: KindConsole, Title: "Console", X: 40, Y: 40, Width: 360, Height: 240},
			{Kind: KindMap, Title: "Map", X: 440, Y: 80, Width: 520, Height: 400,
				Lat: 39.8333, Lon: -98.5833, Zoom: 4},
		},
	}
}

// ValidationError names the offending setting.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Load reads the file at path over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate returns the first setting out of range.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return &ValidationError{Path: "screen", Err: fmt.Errorf("width and height must be > 0")}
	}
	if c.Chrome.BarHeight <= 0 {
		return &ValidationError{Path: "chrome.bar_height", Err: fmt.Errorf("bar_height must be > 0")}
	}
	if c.Chrome.EdgeGrab < 0 {
		return &ValidationError{Path: "chrome.edge_grab", Err: fmt.Errorf("edge_grab must be >= 0")}
	}
	if c.Chrome.CloseSize < 0 || c.Chrome.CloseSize > c.Chrome.BarHeight {
		return &ValidationError{Path: "chrome.close_size", Err: fmt.Errorf("close_size must be between 0 and bar_height")}
	}
	if err := validateRGB(c.Tints.Selected); err != nil {
		return &ValidationError{Path: "tints.selected", Err: err}
	}
	if err := validateRGB(c.Tints.Focused); err != nil {
		return &ValidationError{Path: "tints.focused", Err: err}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}

	for i, w := range c.Windows {
		if err := validateWindow(w); err != nil {
			return &ValidationError{Path: fmt.Sprintf("windows[%d]", i), Err: err}
		}
	}
	return nil
}

func validateRGB(c RGB) error {
	if len(c) != 3 {
		return fmt.Errorf("want [r, g, b], got %d components", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return fmt.Errorf("component %d out of range 0-255", v)
		}
	}
	return nil
}

func validateWindow(w Window) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("width and height must be > 0")
	}
	switch w.Kind {
	case KindConsole:
	case KindMap:
		if w.Zoom < 0 || w.Zoom > maxMapZoom {
			return fmt.Errorf("zoom must be between 0 and %d", maxMapZoom)
		}
		if w.Lat < -90 || w.Lat > 90 || w.Lon < -180 || w.Lon > 180 {
			return fmt.Errorf("lat/lon out of range")
		}
	case KindShape:
		if w.Shapefile == "" {
			return fmt.Errorf("shape windows need a shapefile")
		}
	default:
		return fmt.Errorf("invalid kind %q", w.Kind)
	}
	return nil
}
