package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"planetkit/internal/planet"
)

// LoadSpec reads a planet.Spec from a YAML file at path and validates it.
func LoadSpec(path string) (planet.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return planet.Spec{}, fmt.Errorf("config: reading spec file: %w", err)
	}

	var s planet.Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return planet.Spec{}, fmt.Errorf("config: parsing spec file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return planet.Spec{}, fmt.Errorf("config: invalid spec: %w", err)
	}

	return s, nil
}

// SaveSpec writes s to path as YAML, creating or truncating the file.
func SaveSpec(path string, s planet.Spec) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: marshaling spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing spec file: %w", err)
	}
	return nil
}
