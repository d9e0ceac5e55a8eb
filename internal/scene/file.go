package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON scene file. Sphere radii and colors are taken as given.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if len(s.Objects) == 0 {
		return nil, fmt.Errorf("scene: %s has no objects", path)
	}

	return &s, nil
}

// Save writes s as indented JSON.
func Save(path string, s *Scene) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}
