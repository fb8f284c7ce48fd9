package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is where the CLI looks for configuration.
const DefaultFileName = "mintalyze.yaml"

// Config represents the top-level mintalyze.yaml configuration.
type Config struct {
	ExportPath       string `yaml:"export_path"`
	IncludeTransfers bool   `yaml:"include_transfers"`
}

// Load reads a mintalyze.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default(exportPath string) *Config {
	return &Config{
		ExportPath:       exportPath,
		IncludeTransfers: false,
	}
}
