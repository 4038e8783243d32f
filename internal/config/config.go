// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config file location.
const DefaultPath = "viewpython.yaml"

// Redis configures the optional Redis notebook store.
// When Addr is empty the server falls back to the file store.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config is the server configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8000".
	Addr string `yaml:"addr"`

	// UploadsDir is where uploaded notebooks are persisted by the file store.
	UploadsDir string `yaml:"uploads_dir"`

	// FrontendDir, if set, is served as the static UI.
	FrontendDir string `yaml:"frontend_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Redis Redis `yaml:"redis"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:       ":8000",
		UploadsDir: "uploads",
		LogLevel:   "info",
	}
}

// Load reads the configuration file at path, falling back to defaults when
// the conventional file is absent. An explicit path that does not exist is
// an error; the implicit default is not.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
