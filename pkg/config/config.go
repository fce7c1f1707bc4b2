// Package config loads runtime configuration from the environment and,
// for the server binary, an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by both front-ends.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ServerConfig holds the web server settings read from config.yaml.
type ServerConfig struct {
	Listen  string        `yaml:"listen"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FromEnv loads a .env file if present and reads the environment.
// It fails when the API key is absent; key validity is only checked by
// the remote service on first use.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:   strings.TrimSpace(os.Getenv("OPENAI_MODEL")),
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is not set")
	}
	return cfg, nil
}

// DefaultServerConfig returns the server settings used when no config
// file is present.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Listen: ":8080",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadServerConfig reads a YAML server config file. A missing file is
// not an error; defaults are returned instead.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.Listen) == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}
