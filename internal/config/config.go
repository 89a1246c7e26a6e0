package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"trskit/internal/imageio"
	"trskit/internal/logging"
)

// Default camera angles, in degrees.
const (
	DefaultYaw   = 35.0
	DefaultPitch = -25.0
)

// Config holds the output location and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Manifest  string `json:"manifest" yaml:"manifest"` // relative to OutputDir

	// Render settings
	RenderSize  int     `json:"render_size" yaml:"render_size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	FillRatio   float64 `json:"fill_ratio" yaml:"fill_ratio"` // 0 keeps the camera framing
	Format      string  `json:"format" yaml:"format"`
	Camera      Camera  `json:"camera" yaml:"camera"`
	Workers     int     `json:"workers" yaml:"workers"`
	LogLevel    string  `json:"log_level" yaml:"log_level"`
}

// Camera angles in degrees. Nil fields take the defaults so that an
// explicit 0 survives.
type Camera struct {
	Yaw   *float64 `json:"yaw,omitempty" yaml:"yaw,omitempty"`
	Pitch *float64 `json:"pitch,omitempty" yaml:"pitch,omitempty"`
}

// Angles returns yaw and pitch with defaults applied.
func (c Camera) Angles() (yaw, pitch float64) {
	yaw, pitch = DefaultYaw, DefaultPitch
	if c.Yaw != nil {
		yaw = *c.Yaw
	}
	if c.Pitch != nil {
		pitch = *c.Pitch
	}
	return yaw, pitch
}

// Load reads a JSON or YAML (.yaml, .yml) config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Size      int
	Format    string
	Workers   int
	LogLevel  string
}

// Resolve applies flags and fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Manifest == "" {
		c.Manifest = "manifest.json"
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = imageio.WebP
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings that Resolve cannot repair.
func (c Config) Validate() error {
	if _, err := imageio.Normalize(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d exceeds 8", c.Supersample)
	}
	if c.FillRatio < 0 || c.FillRatio > 1 {
		return fmt.Errorf("config: fill_ratio %g outside [0, 1]", c.FillRatio)
	}
	return nil
}

// ManifestPath returns the manifest location, resolved against OutputDir.
func (c Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	return filepath.Join(c.OutputDir, c.Manifest)
}
