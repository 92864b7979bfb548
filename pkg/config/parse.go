package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseConfigYAML parses an ExperimentConfig from YAML bytes and validates it.
// Keys missing from the document keep their DefaultConfig values.
func ParseConfigYAML(data []byte) (*ExperimentConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ParseConfigYAMLString parses an ExperimentConfig from a YAML string and validates it.
func ParseConfigYAMLString(yamlText string) (*ExperimentConfig, error) {
	return ParseConfigYAML([]byte(yamlText))
}
