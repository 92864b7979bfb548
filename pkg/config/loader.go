package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadConfig loads and parses an experiment configuration file
func LoadConfig(path string) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks an experiment configuration. It is also called after CLI
// flags have been applied on top of a loaded file.
func Validate(cfg *ExperimentConfig) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (must be text or json)", cfg.LogFormat)
	}

	if cfg.Iterations < 0 {
		return fmt.Errorf("iterations cannot be negative")
	}
	if cfg.Runs < 0 {
		return fmt.Errorf("runs cannot be negative")
	}
	if cfg.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1")
	}

	if err := validateSearch(&cfg.Search); err != nil {
		return fmt.Errorf("search validation failed: %w", err)
	}

	switch cfg.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output: %s (must be text, json, or yaml)", cfg.Output)
	}

	return nil
}

// validateSearch validates the search tuning block
func validateSearch(sc *SearchConfig) error {
	if sc.MaxStartAttempts < 1 {
		return fmt.Errorf("max_start_attempts must be at least 1")
	}
	return nil
}
