// Package config loads editor settings from YAML.
//
// Settings cover the pieces a document host wires together: canvas
// size, undo depth, render cache capacity, and the defaults applied to
// a new document's background.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	vac "github.com/gogpu/vac"
	"github.com/gogpu/vac/scene"
)

// Config is the full editor configuration. Zero fields are filled from
// Default on load.
type Config struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	History    HistoryConfig    `yaml:"history"`
	Render     RenderConfig     `yaml:"render"`
	Background BackgroundConfig `yaml:"background"`
	LogLevel   string           `yaml:"log_level"`
}

// CanvasConfig sizes the drawing area in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	Depth int `yaml:"depth"`
}

// RenderConfig tunes the renderer caches.
type RenderConfig struct {
	FrameCacheCapacity int `yaml:"frame_cache_capacity"`
}

// BackgroundConfig holds the background applied to new documents.
// Color is hex, "#rrggbb" or "#rrggbbaa".
type BackgroundConfig struct {
	Color    string  `yaml:"color"`
	ImageURL string  `yaml:"image_url"`
	Opacity  float64 `yaml:"opacity"`
	Hold     *bool   `yaml:"hold"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	hold := true
	return Config{
		Canvas:     CanvasConfig{Width: 1280, Height: 720},
		History:    HistoryConfig{Depth: scene.DefaultHistoryDepth},
		Render:     RenderConfig{FrameCacheCapacity: 64},
		Background: BackgroundConfig{Color: "#ffffff", Opacity: 1, Hold: &hold},
		LogLevel:   "info",
	}
}

// Load reads a YAML configuration file, filling unset fields from
// Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes, filling unset fields from
// Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas size %dx%d is not positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.History.Depth <= 0 {
		return fmt.Errorf("config: history depth %d is not positive", c.History.Depth)
	}
	if c.Render.FrameCacheCapacity <= 0 {
		return fmt.Errorf("config: frame cache capacity %d is not positive", c.Render.FrameCacheCapacity)
	}
	if c.Background.Opacity < 0 || c.Background.Opacity > 1 {
		return fmt.Errorf("config: background opacity %v outside [0, 1]", c.Background.Opacity)
	}
	if _, err := ParseColor(c.Background.Color); err != nil {
		return err
	}
	if v := scene.ValidateImageURL(c.Background.ImageURL); v != scene.URLAcceptable {
		return fmt.Errorf("config: background image URL %q is not a valid pattern", c.Background.ImageURL)
	}
	return nil
}

// BackgroundData converts the background section to scene defaults.
func (c Config) BackgroundData() scene.BackgroundData {
	d := scene.DefaultBackgroundData()
	if col, err := ParseColor(c.Background.Color); err == nil {
		d.Color = col
	}
	d.ImageURL = scene.FixupImageURL(c.Background.ImageURL)
	d.Opacity = c.Background.Opacity
	if c.Background.Hold != nil {
		d.Hold = *c.Background.Hold
	}
	d.Size = vac.V2(float64(c.Canvas.Width), float64(c.Canvas.Height))
	return d
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" hex colors.
func ParseColor(s string) (vac.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return vac.RGBA{}, fmt.Errorf("config: color %q is not #rrggbb or #rrggbbaa", s)
	}
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return vac.RGBA{}, fmt.Errorf("config: color %q: %w", s, err)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return vac.RGBA{
		R: float64(n>>24&0xff) / 255,
		G: float64(n>>16&0xff) / 255,
		B: float64(n>>8&0xff) / 255,
		A: float64(n&0xff) / 255,
	}, nil
}
