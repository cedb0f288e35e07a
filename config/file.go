package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadFile reads a YAML config file over base, keys missing from the file
// keep the values from base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file %v: %w", path, err)
	}

	cfg := base

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config file %v: %w", path, err)
	}

	return cfg, nil
}
