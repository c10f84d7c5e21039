package sable

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML settings file for an engine. Zero values fall
// back to the engine defaults.
//
//	[surface]
//	width = 320
//	height = 240
//	scale = 2.0
//
//	[rendering]
//	mode = "pixelated"     # "smooth" or "pixelated"
//	quality = "high"       # "low", "medium", "high" (smooth mode only)
//
//	[window]
//	title = "My Game"
//	show_fps = true
type Config struct {
	Surface   SurfaceConfig   `toml:"surface"`
	Rendering RenderingConfig `toml:"rendering"`
	Window    WindowConfig    `toml:"window"`
}

type SurfaceConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Scale  float64 `toml:"scale"`
}

type RenderingConfig struct {
	Mode    string `toml:"mode"`
	Quality string `toml:"quality"`
}

type WindowConfig struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

// LoadConfig reads and validates a TOML settings file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.Rendering.mode(); err != nil {
		return nil, err
	}
	if _, err := cfg.Rendering.smoothingQuality(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewEngineFromConfig creates an engine from a settings file, applying any
// additional options after the configured ones.
func NewEngineFromConfig(cfg *Config, opts ...Option) (*Engine, error) {
	width, height := cfg.Surface.Width, cfg.Surface.Height
	configured := make([]Option, 0, 4+len(opts))
	if cfg.Surface.Scale > 0 {
		configured = append(configured, WithScale(cfg.Surface.Scale))
	}
	mode, err := cfg.Rendering.mode()
	if err != nil {
		return nil, err
	}
	configured = append(configured, WithRenderingMode(mode))
	if cfg.Window.ScreenshotDir != "" {
		configured = append(configured, WithScreenshotDir(cfg.Window.ScreenshotDir))
	}
	configured = append(configured, opts...)

	e, err := NewEngine(width, height, configured...)
	if err != nil {
		return nil, err
	}
	if mode == RenderingSmooth && cfg.Rendering.Quality != "" {
		q, err := cfg.Rendering.smoothingQuality()
		if err != nil {
			return nil, err
		}
		if err := e.SetSmoothingQuality(q); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// RunConfig converts the window section into a RunConfig for Run.
func (c *Config) RunConfig() RunConfig {
	return RunConfig{
		Title:   c.Window.Title,
		Width:   c.Window.Width,
		Height:  c.Window.Height,
		ShowFPS: c.Window.ShowFPS,
	}
}

func (r RenderingConfig) mode() (RenderingMode, error) {
	switch r.Mode {
	case "", "smooth":
		return RenderingSmooth, nil
	case "pixelated":
		return RenderingPixelated, nil
	default:
		return 0, fmt.Errorf("parse config: unknown rendering mode %q", r.Mode)
	}
}

func (r RenderingConfig) smoothingQuality() (SmoothingQuality, error) {
	switch r.Quality {
	case "", "medium":
		return SmoothingMedium, nil
	case "low":
		return SmoothingLow, nil
	case "high":
		return SmoothingHigh, nil
	default:
		return 0, fmt.Errorf("parse config: unknown smoothing quality %q", r.Quality)
	}
}
