package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestEntry is one input file in a batch manifest.
type ManifestEntry struct {
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace,omitempty"` // explicit override, wins over derivation
}

// Manifest is an explicit batch description: an ordered list of template
// files to process, each with an optional namespace override.
type Manifest struct {
	Files []ManifestEntry `yaml:"files"`
}

// LoadManifest parses a YAML batch manifest. Relative entry paths are
// resolved against the manifest file's directory, so manifests stay portable
// when the project moves.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	base := filepath.Dir(path)
	for i, entry := range m.Files {
		if entry.Path == "" {
			return nil, fmt.Errorf("manifest entry %d has no path", i)
		}
		if !filepath.IsAbs(entry.Path) {
			abs, err := filepath.Abs(filepath.Join(base, entry.Path))
			if err != nil {
				return nil, fmt.Errorf("resolving manifest entry %s: %w", entry.Path, err)
			}
			m.Files[i].Path = abs
		}
	}

	return &m, nil
}
