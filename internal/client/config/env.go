package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type envConfig struct {
	ServerEndpointAddr string        `env:"SOCIALCLI_ENDPOINT"`
	DatabasePath       string        `env:"SOCIALCLI_DATABASE"`
	SessionTokenPath   string        `env:"SOCIALCLI_SESSION_FILE"`
	RequestTimeout     time.Duration `env:"SOCIALCLI_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with values from SOCIALCLI_* environment variables.
// Unset variables leave cfg untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = ec.ServerEndpointAddr
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.SessionTokenPath != "" {
		cfg.SessionTokenPath = ec.SessionTokenPath
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
