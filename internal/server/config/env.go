package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// loadDotEnv reads .env from the working directory into the process
// environment for local development. A missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseEnv overlays UNIGATE_* variables. Unset variables leave fields as
// they are. A nil environ reads the process environment.
func parseEnv(config *Config, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	return env.ParseWithOptions(config, opts)
}
