package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds infrastructure config from standard env vars
type AppConfig struct {
	Addr       string
	ConfigPath string // Path to the YAML config file
}

// UIConfig holds the frontend settings (from YAML)
type UIConfig struct {
	RecommenderURL        string `yaml:"recommender_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	PlaceholderImage      string `yaml:"placeholder_image"`
	Locale                string `yaml:"locale"`
	Title                 string `yaml:"title"`
}

// GetAppConfig reads basic infrastructure settings from environment variables.
func GetAppConfig() (AppConfig, error) {
	addr := os.Getenv("ADDR")
	configPath := os.Getenv("CONFIG_PATH")

	// Set defaults if not provided
	if addr == "" {
		addr = ":8080"
	}
	if configPath == "" {
		configPath = "config.yaml"
	}

	return AppConfig{
		Addr:       addr,
		ConfigPath: configPath,
	}, nil
}

// LoadUIConfig reads the YAML file with the frontend settings. A missing
// file is fine as long as RECOMMENDER_URL is set in the environment; the
// env var always wins over the file.
func LoadUIConfig(path string) (*UIConfig, error) {
	var cfg UIConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file at '%s': %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if v := os.Getenv("RECOMMENDER_URL"); v != "" {
		cfg.RecommenderURL = v
	}
	if cfg.RecommenderURL == "" {
		return nil, fmt.Errorf("recommender_url is not set (config file or RECOMMENDER_URL env var)")
	}

	if cfg.PlaceholderImage == "" {
		cfg.PlaceholderImage = "/static/placeholder.svg"
	}
	if cfg.Locale == "" {
		cfg.Locale = "tr"
	}
	if cfg.Title == "" {
		cfg.Title = "Vitrin"
	}

	return &cfg, nil
}

// RequestTimeout converts the configured seconds into a client timeout.
// Zero (the default) disables the timeout: the call waits as long as the
// transport does.
func (c *UIConfig) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
