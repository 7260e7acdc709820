package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wakabaloola/visualise-code-structure/core/logger"
)

const FileName = ".codestructure.yaml"

type Config struct {
	// Ignore holds extra glob patterns on top of the built-in defaults.
	Ignore     []string `yaml:"ignore"`
	Docstrings bool     `yaml:"docstrings"`
	Color      bool     `yaml:"color"`
}

func Default() *Config {
	return &Config{
		Color: true,
	}
}

// Load reads .codestructure.yaml from dir. A missing file yields the
// defaults; an unreadable or invalid file is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		logger.Debug("No config file found in %s, using defaults", dir)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

// Write saves cfg to dir as .codestructure.yaml.
func Write(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
