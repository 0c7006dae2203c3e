package viewconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultPath is the preview preferences file, relative to the process working directory.
const DefaultPath = "config/meshview.json"

// Prefs holds meshview preferences (overlays, grid, last sample). Persisted across runs.
type Prefs struct {
	ShowFPS     bool   `json:"show_fps"`
	ShowStats   bool   `json:"show_stats"`
	GridVisible bool   `json:"grid_visible"`
	Wireframe   bool   `json:"wireframe"`
	Sample      string `json:"sample,omitempty"`
	TargetFPS   int    `json:"target_fps"`
}

// Default returns default preferences: overlays off, grid on, 60 FPS, first sample.
func Default() Prefs {
	return Prefs{
		GridVisible: true,
		TargetFPS:   60,
	}
}

// Load reads preferences from path. If the file is missing or invalid, returns Default()
// and does not create a file. Missing keys keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = Default().TargetFPS
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
