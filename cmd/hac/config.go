package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/hac"
)

// fileConfig is the optional YAML configuration. Command-line flags override
// any value set here.
type fileConfig struct {
	DateLayout string `yaml:"date_layout"`
	LogLevel   string `yaml:"log_level"`
	CrossCheck bool   `yaml:"cross_check"`
	Format     string `yaml:"format"`
	WarnPoints int    `yaml:"warn_points"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		DateLayout: hac.DefaultDateLayout,
		LogLevel:   "warn",
		Format:     formatJSON,
		WarnPoints: hac.DefaultConfig().WarnPoints,
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Format != formatJSON && cfg.Format != formatCSV {
		return cfg, fmt.Errorf("config %s: format must be %q or %q, got %q", path, formatJSON, formatCSV, cfg.Format)
	}
	return cfg, nil
}
