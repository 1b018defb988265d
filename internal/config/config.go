// Package config loads the swipeshop service configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from a YAML duration string
// (e.g., "2s", "750ms").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Recommender configures the outbound recommendation backend.
type Recommender struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

// Checkout configures the simulated payment processor.
type Checkout struct {
	ProcessingDelay Duration `yaml:"processing_delay"`
}

// Config represents the contents of the service config file.
type Config struct {
	Port        int         `yaml:"port"`
	Recommender Recommender `yaml:"recommender"`
	Checkout    Checkout    `yaml:"checkout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port: 8080,
		Recommender: Recommender{
			BaseURL: "http://localhost:5000",
			Timeout: Duration(10 * time.Second),
		},
		Checkout: Checkout{
			ProcessingDelay: Duration(2 * time.Second),
		},
	}
}

// Load reads the config from the given path. An empty path or a missing file
// yields the defaults. Environment variables RECOMMENDER_URL and PORT
// override the file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if u := os.Getenv("RECOMMENDER_URL"); u != "" {
		cfg.Recommender.BaseURL = u
	}
	if p := os.Getenv("PORT"); p != "" {
		fmt.Sscanf(p, "%d", &cfg.Port)
	}

	return cfg, nil
}
