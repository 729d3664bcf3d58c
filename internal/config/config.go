// Package config loads command settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/sdf"
)

// Config holds the settings shared by the commands. Every field can be set
// through an SDF_-prefixed environment variable; command-line flags
// override them.
type Config struct {
	Scene    string     `envconfig:"SCENE" default:"heart"`
	Mode     sdf.Mode   `envconfig:"MODE" default:"thermal"`
	Workers  int        `envconfig:"WORKERS" default:"0"`
	Output   string     `envconfig:"OUTPUT" default:"sdf.png"`
	Addr     string     `envconfig:"ADDR" default:":8080"`
	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("sdf", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
