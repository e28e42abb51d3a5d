// Package config loads the CLI's YAML configuration: credentials,
// default author, and publishing defaults. Flags and TELEGRAPH_* env
// vars override whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid workers value")
	ErrInvalidFormat   = errors.New("invalid format value")
)

// Field length limits. Author limits mirror the API's own.
const (
	MaxTokenLength = 512  // Access tokens are 60-char hex today; leave headroom
	MaxURLLength   = 2048 // Browser limit
	MaxWorkers     = 32   // Publish concurrency cap
)

// DirName is the directory under the user config root that holds
// config files, i.e. ~/.config/telegraph on Linux.
const DirName = "telegraph"

// DefaultName is the config name tried when none is given.
const DefaultName = "telegraph"

// Config holds all CLI configuration.
type Config struct {
	AccessToken string       `yaml:"access_token"` // Account token; TELEGRAPH_TOKEN overrides
	Author      AuthorConfig `yaml:"author"`
	BaseURL     string       `yaml:"base_url"` // Empty = https://api.telegra.ph
	Workers     int          `yaml:"workers"`  // Publish concurrency (0 = number of CPUs)
	Format      string       `yaml:"format"`   // Default page output: "text", "html", "json"
	Open        bool         `yaml:"open"`     // Open published pages in the browser
}

// AuthorConfig is the default byline applied when a page or account
// call does not set its own.
type AuthorConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Validate checks field lengths and value ranges. Called automatically
// by Load, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("access_token", c.AccessToken, MaxTokenLength); err != nil {
		return err
	}
	if err := validateFieldLength("author.name", c.Author.Name, telegraph.MaxAuthorNameLen); err != nil {
		return err
	}
	if err := validateFieldLength("author.url", c.Author.URL, telegraph.MaxAuthorURLLen); err != nil {
		return err
	}
	if err := validateFieldLength("base_url", c.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}
	switch c.Format {
	case "", "text", "html", "json":
	default:
		return fmt.Errorf("%w: %q (must be text, html, or json)", ErrInvalidFormat, c.Format)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed
// length in runes.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, n, maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no credentials, no
// author, library-default endpoint, auto worker count.
func DefaultConfig() *Config {
	return &Config{
		AccessToken: "",
		Author:      AuthorConfig{},
		BaseURL:     "",
		Workers:     0,
		Format:      "",
		Open:        false,
	}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func Load(nameOrPath string) (*Config, error) {
	configPath, err := ResolvePath(nameOrPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault tries the default config name and falls back to
// DefaultConfig when no file exists anywhere. Parse and validation
// failures still surface: a broken config file should never be
// silently ignored.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultName)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ResolvePath returns the file a config name or path would be loaded
// from, without reading it. Name resolution follows Load: anything
// containing a path separator is a literal path, everything else is
// searched in the standard locations.
func ResolvePath(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", ErrEmptyConfigName
	}
	if isFilePath(nameOrPath) {
		return nameOrPath, nil
	}
	return resolveConfigPath(nameOrPath)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/telegraph/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, DirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
