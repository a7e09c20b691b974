// Package config loads settings from the environment, with an optional .env
// file for local development.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"LIBRARY_HTTP_ADDR,default=:8080"`
	// DBPath is the SQLite database file. Empty selects the in-memory
	// backend with demo seed data.
	DBPath string `env:"LIBRARY_DB_PATH"`
	// LogLevel is a zerolog level name.
	LogLevel string `env:"LIBRARY_LOG_LEVEL,default=info"`
	// Templates is the glob the HTML renderer loads views from.
	Templates string `env:"LIBRARY_TEMPLATES,default=web/templates/*.html"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
