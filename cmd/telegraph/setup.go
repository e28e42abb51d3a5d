package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/config"
	"github.com/alnah/go-telegraph/internal/hints"
)

// loadCommandConfig loads configuration for a command. An explicit
// --config beats TELEGRAPH_CONFIG, which beats the default search.
// Env values then overlay the file; flag merging happens in each
// command, so the final precedence is flags > env > file > defaults.
func loadCommandConfig(common *commonFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig(env.Getenv)

	var cfg *config.Config
	var err error
	switch {
	case common.config != "":
		cfg, err = config.Load(common.config)
	case envCfg.ConfigPath != "":
		cfg, err = config.Load(envCfg.ConfigPath)
	default:
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths()))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// configSearchPaths returns the locations the default config search
// covers, for hint messages.
func configSearchPaths() []string {
	paths := []string{config.DefaultName + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, config.DirName, config.DefaultName+".yaml"))
	}
	return paths
}

// newClient builds a Telegraph client from config and flags. The token
// may be empty; operations that need one fail with ErrMissingToken.
// A custom base URL carries the upload endpoint with it, so proxies
// and test servers see all traffic.
func newClient(cfg *config.Config, common *commonFlags) *telegraph.Client {
	token := cfg.AccessToken
	if common.token != "" {
		token = common.token
	}

	var opts []telegraph.Option
	if cfg.BaseURL != "" {
		opts = append(opts,
			telegraph.WithBaseURL(cfg.BaseURL),
			telegraph.WithUploadURL(strings.TrimRight(cfg.BaseURL, "/")+"/upload"))
	}
	if cfg.Author.Name != "" || cfg.Author.URL != "" {
		opts = append(opts, telegraph.WithAuthor(cfg.Author.Name, cfg.Author.URL))
	}
	return telegraph.NewClient(token, opts...)
}

// requireToken fails early when no token is configured. The library
// would reject the call anyway; checking here gives the user a better
// message before any network traffic.
func requireToken(c *telegraph.Client) error {
	if c.AccessToken() == "" {
		return fmt.Errorf("%w%s", telegraph.ErrMissingToken, hints.ForMissingToken())
	}
	return nil
}

// withHint decorates API errors that have a known remedy: bad tokens,
// rate limits, and unknown page paths.
func withHint(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *telegraph.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case errors.Is(err, telegraph.ErrInvalidToken):
		return fmt.Errorf("%w%s", err, hints.ForInvalidToken())
	case errors.Is(err, telegraph.ErrFloodWait):
		wait, _ := apiErr.FloodWait()
		return fmt.Errorf("%w%s", err, hints.ForFloodWait(wait))
	case errors.Is(err, telegraph.ErrPageNotFound):
		return fmt.Errorf("%w%s", err, hints.ForPageNotFound())
	}
	return err
}
