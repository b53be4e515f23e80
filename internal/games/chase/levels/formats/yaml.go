// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Number int         `yaml:"number"`
	Name   string      `yaml:"name"`
	Theme  string      `yaml:"theme,omitempty"`
	Boss   bool        `yaml:"boss,omitempty"`
	Layout []string    `yaml:"layout"`
	Ghosts []YAMLGhost `yaml:"ghosts,omitempty"`
}

// YAMLGhost describes one ghost spawn.
type YAMLGhost struct {
	Variant   string      `yaml:"variant"`
	At        YAMLPoint   `yaml:"at"`
	Waypoints []YAMLPoint `yaml:"waypoints,omitempty"`
	Speed     float64     `yaml:"speed,omitempty"` // Multiplier, 0 means 1
}

// YAMLPoint is a cell coordinate.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML level file. Structural checks are left to the caller.
func ParseYAML(data []byte) (YAMLLevel, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return YAMLLevel{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl, nil
}

// MarshalYAML encodes a level back to YAML, used by the levels export command.
func MarshalYAML(yl YAMLLevel) ([]byte, error) {
	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
