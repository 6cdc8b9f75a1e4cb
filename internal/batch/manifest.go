package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame     int     `json:"frame"`
	Angle     float64 `json:"angle"`
	Image     string  `json:"image"`
	Triangles int     `json:"triangles"`
	Pixels    int     `json:"pixels"`
	Millis    int64   `json:"ms"`
	Error     string  `json:"error,omitempty"`
}

// WriteManifest writes the per-frame summary as JSON. Image paths are
// relative to the manifest.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame:     r.Frame,
			Angle:     r.Angle,
			Image:     filepath.Base(r.Path),
			Triangles: r.Stats.Drawn,
			Pixels:    r.Stats.Pixels,
			Millis:    r.Duration.Milliseconds(),
			Error:     r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
