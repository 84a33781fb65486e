// Package config loads scene files.
//
// A scene file names the STL model, where its annotation settings live, the
// initial viewport and camera, and the anchor points overlay boxes attach to:
//
//	model = "bracket.stl"
//
//	[viewport]
//	width = 1400
//	height = 900
//
//	[[anchors]]
//	name = "hole-1"
//	position = [12.5, 4.0, 0.0]
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/cadoverlay/internal/annotation"
)

// Defaults
const (
	DefaultWidth  = 1400
	DefaultHeight = 900
	DefaultFOV    = 45
	DefaultFPS    = 60
	MaxFPS        = 240
)

// ErrNoModel is returned when a scene file does not name a model
var ErrNoModel = errors.New("scene has no model")

// Viewport is the initial panel size in pixels
type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Camera overrides the fitted orbit camera. Zero values keep the fit.
type Camera struct {
	Distance float64 `toml:"distance"`
	AngleX   float64 `toml:"angle_x"`
	AngleY   float64 `toml:"angle_y"`
	FOV      float64 `toml:"fov"`
}

// Anchor is a named point in model coordinates
type Anchor struct {
	Name     string     `toml:"name"`
	Position [3]float64 `toml:"position"`
}

// Layout tunes the positioning loop
type Layout struct {
	FPS int `toml:"fps"`
}

// Config is a loaded scene file. Paths are absolute after Load.
type Config struct {
	Model       string   `toml:"model"`
	Annotations string   `toml:"annotations"`
	Viewport    Viewport `toml:"viewport"`
	Camera      Camera   `toml:"camera"`
	Anchors     []Anchor `toml:"anchors"`
	Layout      Layout   `toml:"layout"`

	path string
}

// Load reads, resolves and validates the scene file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	cfg.path = path

	dir := filepath.Dir(path)
	cfg.Model = resolve(dir, cfg.Model)
	cfg.Annotations = resolve(dir, cfg.Annotations)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &cfg, nil
}

// Path returns the scene file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// ApplyDefaults fills every unset field
func (c *Config) ApplyDefaults() {
	if c.Annotations == "" && c.Model != "" {
		c.Annotations = annotation.SidecarPath(c.Model)
	}
	if c.Viewport.Width == 0 {
		c.Viewport.Width = DefaultWidth
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = DefaultHeight
	}
	if c.Camera.FOV == 0 {
		c.Camera.FOV = DefaultFOV
	}
	if c.Layout.FPS == 0 {
		c.Layout.FPS = DefaultFPS
	}
}

// Validate checks a config with defaults applied
func (c *Config) Validate() error {
	if c.Model == "" {
		return ErrNoModel
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport %dx%d must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %v out of range", c.Camera.FOV)
	}
	if c.Camera.Distance < 0 {
		return fmt.Errorf("camera distance %v must not be negative", c.Camera.Distance)
	}
	if c.Layout.FPS < 0 || c.Layout.FPS > MaxFPS {
		return fmt.Errorf("layout fps %d out of range 1..%d", c.Layout.FPS, MaxFPS)
	}

	seen := make(map[string]bool, len(c.Anchors))
	for i, a := range c.Anchors {
		if a.Name == "" {
			return fmt.Errorf("anchor %d has no name", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate anchor %q", a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
