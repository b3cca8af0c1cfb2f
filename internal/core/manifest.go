package core

// manifest.go supports an optional manifest.yaml in the data directory that
// overrides a dataset's source file name or delimiter without recompiling.
// Absence of the manifest is the normal case; every dataset then uses the
// convention-based file name from its registered definition.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestEntry overrides source settings for one dataset.
type ManifestEntry struct {
	File      string `yaml:"file"`
	Delimiter string `yaml:"delimiter"`
}

// Manifest maps dataset names to their source overrides.
type Manifest struct {
	Datasets map[string]ManifestEntry `yaml:"datasets"`
}

// LoadManifest reads a manifest file. A missing file yields an empty
// manifest, not an error; a present but unparseable file is an error so
// misconfiguration fails fast at startup.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// fileFor returns the source file name for a dataset, honoring any
// manifest override.
func (m *Manifest) fileFor(def DatasetDefinition) string {
	if m == nil {
		return def.File
	}
	if e, ok := m.Datasets[def.Name]; ok && e.File != "" {
		return e.File
	}
	return def.File
}

// delimiterFor returns the field delimiter for a dataset, honoring any
// manifest override.
func (m *Manifest) delimiterFor(def DatasetDefinition) rune {
	if m != nil {
		if e, ok := m.Datasets[def.Name]; ok && e.Delimiter != "" {
			return []rune(e.Delimiter)[0]
		}
	}
	return def.Delimiter()
}
