// Package config loads the reconciler's run configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnrichmentConfig holds the AI collaborator settings.
type EnrichmentConfig struct {
	Endpoint  string `yaml:"endpoint"`
	APIKeyEnv string `yaml:"api_key_env"` // environment variable holding the key
	Model     string `yaml:"model"`
	MaxItems  int    `yaml:"max_items"`
}

// Config is the full run configuration. Feed paths given on the command line
// take precedence over the file values.
type Config struct {
	BankFeed   string           `yaml:"bank_feed"`
	BookFeed   string           `yaml:"book_feed"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Enrichment: EnrichmentConfig{
			Endpoint:  "https://generativelanguage.googleapis.com",
			APIKeyEnv: "GEMINI_API_KEY",
			Model:     "gemini-2.5-flash",
			MaxItems:  20,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
