package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"trskit/internal/config"
)

const towerYAML = `
name: tower
objects:
  - name: base
    scale: [2, 0.5, 2]
    color: slategray
  - name: top
    parent: base
    translation: [0, 1, 0]
    euler: [0, 45, 0]
    color: orange
`

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func testConfig(t *testing.T, format string) config.Config {
	cfg := config.Config{OutputDir: filepath.Join(t.TempDir(), "out"), RenderSize: 32, Format: format, Workers: 2}
	cfg.Resolve(config.Flags{})
	return cfg
}

func TestRun(t *testing.T) {
	src := t.TempDir()
	paths := []string{
		writeScene(t, src, "tower.yaml", towerYAML),
		writeScene(t, src, "broken.json", `{"objects": [{"name": "a", "parent": "nope"}]}`),
		writeScene(t, src, "single.json", `{"objects": [{"name": "cube"}]}`),
	}
	cfg := testConfig(t, "tga")

	core, logs := observer.New(zap.DebugLevel)
	results := Run(context.Background(), cfg, paths, zap.New(core))
	require.Len(t, results, 3)

	require.True(t, results[0].Success, results[0].Error)
	require.Equal(t, "tower", results[0].Scene)
	require.Equal(t, "tower.tga", results[0].Image)
	require.Equal(t, 2, results[0].Objects)

	require.False(t, results[1].Success)
	require.Contains(t, results[1].Error, "unknown parent")

	require.True(t, results[2].Success, results[2].Error)
	require.Equal(t, "single", results[2].Scene)

	f, err := os.Open(filepath.Join(cfg.OutputDir, "tower.tga"))
	require.NoError(t, err)
	defer f.Close()
	img, err := tga.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())

	require.Equal(t, 1, logs.FilterMessage("batch finished").Len())
	require.Equal(t, 1, logs.FilterMessage("scene failed").Len())
	require.Equal(t, 2, logs.FilterMessage("rendered").Len())
}

func TestRunFillRatio(t *testing.T) {
	src := t.TempDir()
	paths := []string{writeScene(t, src, "tower.yml", towerYAML)}
	cfg := testConfig(t, "webp")
	cfg.FillRatio = 0.5

	results := Run(context.Background(), cfg, paths, zap.NewNop())
	require.True(t, results[0].Success, results[0].Error)
	_, err := os.Stat(filepath.Join(cfg.OutputDir, "tower.webp"))
	require.NoError(t, err)
}

func TestRunCanceled(t *testing.T) {
	src := t.TempDir()
	paths := []string{
		writeScene(t, src, "a.yaml", towerYAML),
		writeScene(t, src, "b.yaml", towerYAML),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, testConfig(t, "webp"), paths, zap.NewNop())
	for _, r := range results {
		require.False(t, r.Success)
		require.Equal(t, context.Canceled.Error(), r.Error)
	}
}

func TestRunEmpty(t *testing.T) {
	require.Empty(t, Run(context.Background(), testConfig(t, "webp"), nil, zap.NewNop()))
}

func TestOutputName(t *testing.T) {
	name, err := OutputName("scenes/arm.scene.yaml", "WEBP")
	require.NoError(t, err)
	require.Equal(t, "arm.scene.webp", name)

	_, err = OutputName("arm.yaml", "jpeg")
	require.Error(t, err)
}

func TestOutputNames(t *testing.T) {
	names, err := OutputNames([]string{"a/scene.yaml", "b/scene.json", "scene-1.yml", "c/scene.yaml", "d/other.yaml"}, "tga")
	require.NoError(t, err)
	require.Equal(t, []string{"scene.tga", "scene-1.tga", "scene-1-1.tga", "scene-2.tga", "other.tga"}, names)

	_, err = OutputNames([]string{"a.yaml"}, "gif")
	require.Error(t, err)
}

func TestRunSameBaseName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "a"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "b"), 0755))
	paths := []string{
		writeScene(t, filepath.Join(root, "a"), "scene.yaml", towerYAML),
		writeScene(t, filepath.Join(root, "b"), "scene.yaml", `{"objects": [{"name": "cube"}]}`),
	}
	cfg := testConfig(t, "tga")

	results := Run(context.Background(), cfg, paths, zap.NewNop())
	require.True(t, results[0].Success, results[0].Error)
	require.True(t, results[1].Success, results[1].Error)
	require.Equal(t, "scene.tga", results[0].Image)
	require.Equal(t, "scene-1.tga", results[1].Image)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestRunUnknownFormat(t *testing.T) {
	paths := []string{writeScene(t, t.TempDir(), "a.yaml", towerYAML)}
	cfg := testConfig(t, "gif")
	results := Run(context.Background(), cfg, paths, zap.NewNop())
	require.False(t, results[0].Success)
	require.Contains(t, results[0].Error, "unknown format")
}

func TestWriteManifest(t *testing.T) {
	results := []Result{
		{Scene: "tower", Source: "s/tower.yaml", Image: "tower.webp", Objects: 2, Success: true},
		{Source: "s/broken.json", Error: "boom"},
	}
	path := filepath.Join(t.TempDir(), "nested", "manifest.json")
	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Equal(t, []ManifestEntry{{Scene: "tower", Source: "s/tower.yaml", Image: "tower.webp", Objects: 2}}, m.Rendered)
	require.Equal(t, map[string]string{"s/broken.json": "boom"}, m.Failed)
}

func TestBuildManifestAllRendered(t *testing.T) {
	m := BuildManifest([]Result{{Scene: "a", Success: true}})
	require.Len(t, m.Rendered, 1)
	require.Nil(t, m.Failed)
}
