package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one saved frame.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
}

// Manifest describes a recording.
type Manifest struct {
	Format Format          `json:"format"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Frames []ManifestEntry `json:"frames"`
}

// WriteManifest writes the successful frames of a recording to path.
// Image paths are relative to the manifest.
func WriteManifest(path string, cfg Config, results []Result) error {
	w, h := cfg.Width, cfg.Height
	if cfg.OutputWidth > 0 && cfg.OutputHeight > 0 {
		w, h = cfg.OutputWidth, cfg.OutputHeight
	}

	m := Manifest{Format: cfg.Format, Width: w, Height: h, Frames: []ManifestEntry{}}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{Frame: r.Frame, Image: filepath.Base(r.Path)})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
