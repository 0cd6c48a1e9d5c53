package shadow

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is a named, reusable parameter snapshot.
type Preset struct {
	Name   string `yaml:"name"`
	Params Params `yaml:"params"`
}

// presetFile is the on-disk document shape:
//
//	presets:
//	  - name: soft
//	    params:
//	      blur-radius: 24
//	      opacity: 0.25
type presetFile struct {
	Presets []rawPreset `yaml:"presets"`
}

// rawPreset keeps Params as a pointer so a preset that omits the
// mapping entirely still falls back to the defaults.
type rawPreset struct {
	Name   string  `yaml:"name"`
	Params *Params `yaml:"params"`
}

// ParsePresets decodes a YAML preset document. Fields a preset omits
// keep their defaults, and every decoded snapshot is sanitized.
// Preset names must be non-empty and unique within the document.
func ParsePresets(data []byte) ([]Preset, error) {
	var doc presetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("shadow: parse presets: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Presets))
	out := make([]Preset, 0, len(doc.Presets))
	for i, rp := range doc.Presets {
		if rp.Name == "" {
			return nil, fmt.Errorf("shadow: preset %d has no name", i)
		}
		if _, dup := seen[rp.Name]; dup {
			return nil, fmt.Errorf("shadow: duplicate preset %q", rp.Name)
		}
		seen[rp.Name] = struct{}{}

		params := DefaultParams()
		if rp.Params != nil {
			params = rp.Params.Sanitize()
		}
		out = append(out, Preset{Name: rp.Name, Params: params})
	}
	return out, nil
}

// LoadPresets reads and parses a preset file from disk.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shadow: load presets: %w", err)
	}
	return ParsePresets(data)
}

// FindPreset returns the preset with the given name, or false.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetNames returns the sorted names of all presets.
func PresetNames(presets []Preset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}
