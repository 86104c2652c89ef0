// Package config reads runtime configuration from the environment and an
// optional .env file in the working directory.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvDB       = "BINOMEN_DB"
	EnvLog      = "BINOMEN_LOG"
	EnvLogLevel = "BINOMEN_LOG_LEVEL"
)

type Config struct {
	// DBPath overrides the XDG database location when set.
	DBPath string
	// LogPath overrides the XDG log location when set.
	LogPath  string
	LogLevel string
}

// Load reads .env if it exists, then the BINOMEN_* variables.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		DBPath:   strings.TrimSpace(os.Getenv(EnvDB)),
		LogPath:  strings.TrimSpace(os.Getenv(EnvLog)),
		LogLevel: getenvDefault(EnvLogLevel, "info"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return fallback
}
