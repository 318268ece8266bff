package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings lists the selection menus offered by the checklist screen.
type Settings struct {
	Aircraft []string `yaml:"aircraft"`
	Systems  []string `yaml:"systems"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Aircraft: []string{"Boeing 737", "Airbus A320", "Gulfstream G550"},
		Systems:  []string{"Avionics", "Hydraulic", "Mechanical"},
	}
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults; an empty list in the file keeps the default for that list.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if len(file.Aircraft) > 0 {
		s.Aircraft = file.Aircraft
	}
	if len(file.Systems) > 0 {
		s.Systems = file.Systems
	}
	return s, nil
}
