// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Project values override global ones; defaults fill whatever neither sets

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaseZ is the z-order given to the first marker of a session.
const DefaultBaseZ = 2140000000

// Theme holds marker colors as lipgloss color strings ("#FFD76E", "214").
type Theme struct {
	Hint      string `yaml:"hint,omitempty"`
	HintBg    string `yaml:"hint_bg,omitempty"`
	Matched   string `yaml:"matched,omitempty"`
	Highlight string `yaml:"highlight,omitempty"`
	Status    string `yaml:"status,omitempty"`
}

// Settings holds the merged configuration.
type Settings struct {
	Zoom  float64 `yaml:"zoom,omitempty"`
	BaseZ int     `yaml:"base_z,omitempty"`
	Theme Theme   `yaml:"theme,omitempty"`
}

// Defaults returns the settings used when no config file sets a value.
func Defaults() *Settings {
	return &Settings{Zoom: 1, BaseZ: DefaultBaseZ}
}

// Load reads and merges global and project-local settings on top of
// Defaults. Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles merges the given settings files in order; later files win.
func LoadFiles(paths ...string) (*Settings, error) {
	merged := Defaults()
	for _, p := range paths {
		if p == "" {
			continue
		}
		s, err := loadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", p, err)
		}
		merged = merge(merged, s)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate rejects settings the overlay cannot work with.
func (s *Settings) Validate() error {
	if s.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", s.Zoom)
	}
	return nil
}

func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero override values onto base.
func merge(base, override *Settings) *Settings {
	result := *base
	if override == nil {
		return &result
	}
	if override.Zoom != 0 {
		result.Zoom = override.Zoom
	}
	if override.BaseZ != 0 {
		result.BaseZ = override.BaseZ
	}
	mergeString(&result.Theme.Hint, override.Theme.Hint)
	mergeString(&result.Theme.HintBg, override.Theme.HintBg)
	mergeString(&result.Theme.Matched, override.Theme.Matched)
	mergeString(&result.Theme.Highlight, override.Theme.Highlight)
	mergeString(&result.Theme.Status, override.Theme.Status)
	return &result
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
