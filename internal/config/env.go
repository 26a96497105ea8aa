package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the CLI environment variables. Unset or empty variables leave
// their field zero.
type Env struct {
	ConfigFile     string `env:"ZERO_APP_CONFIG"`
	Region         string `env:"ZERO_APP_REGION"`
	PackageManager string `env:"ZERO_APP_PACKAGE_MANAGER"`
	TemplateDir    string `env:"ZERO_APP_TEMPLATE_DIR"`
	LogTimestamps  *bool  `env:"ZERO_APP_LOG_TIMESTAMPS"`
}

// LoadEnv reads the environment. Call it after LoadDotEnv so .env values
// are visible.
func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &e, nil
}
