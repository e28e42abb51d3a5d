package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-telegraph/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	Token      string // TELEGRAPH_TOKEN: access token
	ConfigPath string // TELEGRAPH_CONFIG: config file name or path
	AuthorName string // TELEGRAPH_AUTHOR_NAME: default byline name
	AuthorURL  string // TELEGRAPH_AUTHOR_URL: default byline link
	BaseURL    string // TELEGRAPH_BASE_URL: API endpoint override
	Workers    int    // TELEGRAPH_WORKERS: parallel publishes
	Format     string // TELEGRAPH_FORMAT: default page output format
}

// knownEnvVars lists valid TELEGRAPH_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TELEGRAPH_TOKEN":       true,
	"TELEGRAPH_CONFIG":      true,
	"TELEGRAPH_AUTHOR_NAME": true,
	"TELEGRAPH_AUTHOR_URL":  true,
	"TELEGRAPH_BASE_URL":    true,
	"TELEGRAPH_WORKERS":     true,
	"TELEGRAPH_FORMAT":      true,

	// Set by integration tests, not configuration.
	"TELEGRAPH_TEST_TOKEN": true,

	// Container override read by doctor, not configuration.
	"TELEGRAPH_CONTAINER": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized TELEGRAPH_* values.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		Token:      getenv("TELEGRAPH_TOKEN"),
		ConfigPath: getenv("TELEGRAPH_CONFIG"),
		AuthorName: getenv("TELEGRAPH_AUTHOR_NAME"),
		AuthorURL:  getenv("TELEGRAPH_AUTHOR_URL"),
		BaseURL:    getenv("TELEGRAPH_BASE_URL"),
		Format:     getenv("TELEGRAPH_FORMAT"),
	}

	// Parse int for workers; invalid or non-positive values are ignored
	if workers := getenv("TELEGRAPH_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TELEGRAPH_* variables.
// Helps catch typos like TELEGRAPH_AUTOR instead of TELEGRAPH_AUTHOR_NAME.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TELEGRAPH_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment variable values onto config.
// Set env vars replace whatever the config file loaded; CLI flags are
// merged afterwards and override both.
// This ensures: CLI flags > env vars > config file > defaults
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Token != "" {
		cfg.AccessToken = env.Token
	}
	if env.AuthorName != "" {
		cfg.Author.Name = env.AuthorName
	}
	if env.AuthorURL != "" {
		cfg.Author.URL = env.AuthorURL
	}
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.Format != "" {
		cfg.Format = env.Format
	}
}
