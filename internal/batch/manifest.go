package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Scene   string `json:"scene"`
	Source  string `json:"source"`
	Image   string `json:"image"`
	Objects int    `json:"objects"`
}

// Manifest is the JSON document written by WriteManifest.
type Manifest struct {
	Rendered []ManifestEntry   `json:"rendered"`
	Failed   map[string]string `json:"failed,omitempty"` // source -> error
}

// BuildManifest splits results into rendered entries and failures.
func BuildManifest(results []Result) Manifest {
	m := Manifest{Rendered: make([]ManifestEntry, 0, len(results))}
	for _, r := range results {
		if !r.Success {
			if m.Failed == nil {
				m.Failed = make(map[string]string)
			}
			m.Failed[r.Source] = r.Error
			continue
		}
		m.Rendered = append(m.Rendered, ManifestEntry{
			Scene:   r.Scene,
			Source:  r.Source,
			Image:   r.Image,
			Objects: r.Objects,
		})
	}
	return m
}

// WriteManifest writes the manifest for results to path.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(BuildManifest(results), "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return nil
}
