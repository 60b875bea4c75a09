package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one input file in the output manifest.
type ManifestEntry struct {
	Name    string        `json:"name"`
	Input   string        `json:"input"`
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Norm    float64       `json:"norm,omitempty"`
	TI      *TISummary    `json:"ti,omitempty"`
	Ortho   *OrthoSummary `json:"ortho,omitempty"`
	Map     string        `json:"map,omitempty"` // relative to the manifest
}

// WriteManifest writes the results as indented JSON to path.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:    r.Name,
			Input:   r.Input,
			Success: r.Success,
			Error:   r.Error,
			Norm:    r.Norm,
			TI:      r.TI,
			Ortho:   r.Ortho,
			Map:     r.Map,
		}
		if rel, err := filepath.Rel(dir, r.Map); r.Map != "" && err == nil {
			entries[i].Map = filepath.ToSlash(rel)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
