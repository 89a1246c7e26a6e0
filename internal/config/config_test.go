package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"trskit/internal/imageio"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := write(t, "cfg.json", `{"output_dir": "out", "render_size": 128, "format": "tga", "camera": {"yaw": 0}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, 128, cfg.RenderSize)
	require.Equal(t, "tga", cfg.Format)

	yaw, pitch := cfg.Camera.Angles()
	require.Zero(t, yaw)
	require.Equal(t, DefaultPitch, pitch)
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "cfg.yaml", `
output_dir: out
supersample: 4
fill_ratio: 0.8
camera:
  yaw: 10
  pitch: 0
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Supersample)
	require.Equal(t, 0.8, cfg.FillRatio)
	require.Equal(t, "debug", cfg.LogLevel)

	yaw, pitch := cfg.Camera.Angles()
	require.Equal(t, 10.0, yaw)
	require.Zero(t, pitch)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(write(t, "bad.json", "{"))
	require.Error(t, err)

	_, err = Load(write(t, "bad.yml", "render_size: [1"))
	require.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	require.Equal(t, "renders", cfg.OutputDir)
	require.Equal(t, 256, cfg.RenderSize)
	require.Equal(t, 2, cfg.Supersample)
	require.Equal(t, imageio.WebP, cfg.Format)
	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, filepath.Join("renders", "manifest.json"), cfg.ManifestPath())
	require.NoError(t, cfg.Validate())

	yaw, pitch := cfg.Camera.Angles()
	require.Equal(t, DefaultYaw, yaw)
	require.Equal(t, DefaultPitch, pitch)
}

func TestResolveFlagsWin(t *testing.T) {
	cfg := Config{OutputDir: "a", RenderSize: 64, Format: "webp", Workers: 2, LogLevel: "warn"}
	cfg.Resolve(Flags{OutputDir: "b", Size: 32, Format: "tga", Workers: 3, LogLevel: "error"})
	require.Equal(t, Config{
		OutputDir:   "b",
		Manifest:    "manifest.json",
		RenderSize:  32,
		Supersample: 2,
		Format:      "tga",
		Workers:     3,
		LogLevel:    "error",
	}, cfg)

	cfg.Resolve(Flags{})
	require.Equal(t, "b", cfg.OutputDir)
}

func TestManifestPathAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "m.json")
	cfg := Config{OutputDir: "out", Manifest: abs}
	require.Equal(t, abs, cfg.ManifestPath())
}

func TestValidate(t *testing.T) {
	base := Config{}
	base.Resolve(Flags{})

	cases := map[string]func(*Config){
		"format":      func(c *Config) { c.Format = "gif" },
		"log level":   func(c *Config) { c.LogLevel = "chatty" },
		"supersample": func(c *Config) { c.Supersample = 16 },
		"fill low":    func(c *Config) { c.FillRatio = -0.1 },
		"fill high":   func(c *Config) { c.FillRatio = 1.5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
