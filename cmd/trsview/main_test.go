package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"trskit/internal/trs"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crowd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestPrintWorldMatricesEveryObject(t *testing.T) {
	var doc strings.Builder
	doc.WriteString("objects:\n")
	for i := 0; i < 250; i++ {
		fmt.Fprintf(&doc, "  - {name: o%d, translation: [%d, 0, 0]}\n", i, i)
	}
	path := writeScene(t, doc.String())

	var out bytes.Buffer
	require.NoError(t, printWorldMatrices(&out, path))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 250)
	require.True(t, strings.HasPrefix(lines[249], "crowd\to249\t\t"), lines[249])
}

func TestPrintWorldMatricesParent(t *testing.T) {
	path := writeScene(t, `
objects:
  - {name: root, translation: [1, 0, 0]}
  - {name: child, parent: root, translation: [0, 1, 0]}
`)
	var out bytes.Buffer
	require.NoError(t, printWorldMatrices(&out, path))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	fields := strings.Split(lines[1], "\t")
	require.Equal(t, []string{"crowd", "child", "root"}, fields[:3])
	require.Equal(t, "[(1, 0, 0, 1), (0, 1, 0, 1), (0, 0, 1, 0), (0, 0, 0, 1)]", fields[4])
}

func TestPrintWorldMatricesMissing(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, printWorldMatrices(&out, filepath.Join(t.TempDir(), "none.yaml")))
	require.Zero(t, out.Len())
}

func TestExportTransforms(t *testing.T) {
	path := writeScene(t, "objects: [{name: a, translation: [1, 2, 3], scale: 2}]")
	out := filepath.Join(t.TempDir(), "a.trs")
	require.NoError(t, exportTransforms(path, out))

	got, err := trs.ReadFile[float32](out)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, float32(3), got[0].Translation.Z())
	require.Equal(t, float32(2), got[0].Scale.X())
}
