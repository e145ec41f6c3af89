package knowthepast

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadSettingsFile overlays a YAML settings file on the defaults.
// Credentials are never read from the file; they stay env-sourced.
func LoadSettingsFile(path string) (Settings, error) {
	s := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file: %w", err)
	}
	return s, nil
}
