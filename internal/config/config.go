// Package config loads render settings from JSON, TOML or YAML files and
// merges them with command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"softraster/internal/raster"
)

// ErrUnknownFormat is returned for config files with an unrecognised extension.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config holds all render settings. Zero values mean "use the default".
type Config struct {
	// Scene
	Mesh       string `json:"mesh" toml:"mesh" yaml:"mesh"`
	Texture    string `json:"texture" toml:"texture" yaml:"texture"`
	TextureDir string `json:"texture_dir" toml:"texture_dir" yaml:"texture_dir"`
	Lighting   bool   `json:"lighting" toml:"lighting" yaml:"lighting"`
	Textured   bool   `json:"textured" toml:"textured" yaml:"textured"`
	Wireframe  bool   `json:"wireframe" toml:"wireframe" yaml:"wireframe"`
	// Vertex colour, 0..255 per channel, tinting the diffuse term. All zero
	// means white.
	Color [3]float64 `json:"color" toml:"color" yaml:"color"`

	// Camera
	FOV      float64    `json:"fov" toml:"fov" yaml:"fov"`
	Near     float64    `json:"near" toml:"near" yaml:"near"`
	Far      float64    `json:"far" toml:"far" yaml:"far"`
	LookFrom [3]float64 `json:"look_from" toml:"look_from" yaml:"look_from"`
	LookAt   [3]float64 `json:"look_at" toml:"look_at" yaml:"look_at"`
	Up       [3]float64 `json:"up" toml:"up" yaml:"up"`

	// Raster
	Width      int        `json:"width" toml:"width" yaml:"width"`
	Height     int        `json:"height" toml:"height" yaml:"height"`
	Background [4]float64 `json:"background" toml:"background" yaml:"background"`
	FaceCull   string     `json:"face_cull" toml:"face_cull" yaml:"face_cull"` // cw, ccw or none
	DepthTest  *bool      `json:"depth_test" toml:"depth_test" yaml:"depth_test"`

	// Output
	OutputDir   string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`
	Format      string `json:"format" toml:"format" yaml:"format"` // webp or png
	Supersample int    `json:"supersample" toml:"supersample" yaml:"supersample"`
	Frames      int    `json:"frames" toml:"frames" yaml:"frames"`
	Workers     int    `json:"workers" toml:"workers" yaml:"workers"`
}

// Load reads a config file, choosing the decoder by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh        string
	Texture     string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Frames      int
	Supersample int
	Workers     int
	Lighting    bool
	Textured    bool
	Wireframe   bool
}

// Resolve applies flags over the file values, then fills in any empty
// fields with defaults. Boolean flags can only switch features on.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	c.Lighting = c.Lighting || flags.Lighting
	c.Textured = c.Textured || flags.Textured
	c.Wireframe = c.Wireframe || flags.Wireframe

	// Texture names resolve next to the texture unless a directory is given.
	if c.Texture != "" && c.TextureDir == "" {
		c.TextureDir = filepath.Dir(c.Texture)
	}

	// Defaults
	if c.Mesh == "" {
		c.Mesh = "cube"
	}
	if c.Color == ([3]float64{}) {
		c.Color = [3]float64{255, 255, 255}
	}
	if c.FOV <= 0 {
		c.FOV = 90
	}
	if c.Near == 0 {
		c.Near = -0.1
	}
	if c.Far == 0 {
		c.Far = -5
	}
	if c.LookFrom == ([3]float64{}) {
		c.LookFrom = [3]float64{0, 0, -2}
	}
	if c.LookAt == ([3]float64{}) {
		c.LookAt = [3]float64{0, 0, 1}
	}
	if c.Up == ([3]float64{}) {
		c.Up = [3]float64{0, 1, 0}
	}
	if c.Width <= 0 {
		c.Width = 720
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Background == ([4]float64{}) {
		c.Background = [4]float64{0.678, 0.847, 0.902, 1}
	}
	if c.FaceCull == "" {
		c.FaceCull = "cw"
	}
	if c.DepthTest == nil {
		on := true
		c.DepthTest = &on
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if _, _, err := c.Cull(); err != nil {
		return err
	}
	switch c.Format {
	case "webp", "png":
	default:
		return fmt.Errorf("config: format %q: want webp or png", c.Format)
	}
	if c.Near == c.Far {
		return fmt.Errorf("config: near and far planes coincide at %v", c.Near)
	}
	if c.Width <= 0 {
		return fmt.Errorf("config: width %d: want a positive size", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("config: height %d: want a positive size", c.Height)
	}
	if c.Frames < 1 {
		return fmt.Errorf("config: frames %d: want at least 1", c.Frames)
	}
	if c.Supersample < 1 {
		return fmt.Errorf("config: supersample %d: want at least 1", c.Supersample)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d: want 0 or more", c.Workers)
	}
	return nil
}

// Cull maps FaceCull onto the renderer setting. enabled is false for "none".
func (c *Config) Cull() (mode raster.FaceCull, enabled bool, err error) {
	switch strings.ToLower(c.FaceCull) {
	case "cw":
		return raster.CullCW, true, nil
	case "ccw":
		return raster.CullCCW, true, nil
	case "none", "off":
		return raster.CullCW, false, nil
	}
	return 0, false, fmt.Errorf("config: face_cull %q: want cw, ccw or none", c.FaceCull)
}
