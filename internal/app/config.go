package app

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl file or directory

	Addr           string
	Dev            bool
	ReloadDebounce time.Duration

	LogFormat string
	LogLevel  string

	// PrintMenu, when set, is the request path the menu is rendered for
	// instead of serving.
	PrintMenu string
}

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":3000"

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ReloadDebounce < 0 {
		return nil, fmt.Errorf("ReloadDebounce must not be negative, got %s", cfg.ReloadDebounce)
	}
	return &cfg, nil
}
