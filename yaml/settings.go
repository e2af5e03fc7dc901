// Package yaml loads and saves the flat settings record as a YAML file.
package yaml

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/jturek/wikinote"
)

// Settings is the persisted configuration record. Flags layered on top of
// it produce the effective configuration for a run.
type Settings struct {
	MinHeadings int    `yaml:"minHeadings"`
	MaxRetries  int    `yaml:"maxRetries"`
	Exclusions  string `yaml:"exclusions"`
	Dir         string `yaml:"dir"`
	Language    string `yaml:"language"`
	Summary     bool   `yaml:"summary"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		MinHeadings: 3,
		MaxRetries:  10,
		Exclusions:  "references, external links, see also, notes, further reading",
		Dir:         "Wikipedia Notes",
		Language:    "en",
	}
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults without error; fields absent from the file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, err
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, wikinote.Errorf(wikinote.EINVALID, "parsing settings file %s: %v", path, err)
	}
	return s, nil
}

// SaveSettings writes the settings record to path, creating parent
// directories as needed.
func SaveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Config converts the record into a validated acquisition config.
func (s Settings) Config() (wikinote.Config, error) {
	cfg := wikinote.Config{
		MinHeadings: s.MinHeadings,
		MaxRetries:  s.MaxRetries,
		Exclusions:  wikinote.ParseExclusionList(s.Exclusions),
	}
	if err := cfg.Validate(); err != nil {
		return wikinote.Config{}, err
	}
	return cfg, nil
}
