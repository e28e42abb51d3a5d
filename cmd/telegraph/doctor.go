package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/config"
	flag "github.com/spf13/pflag"
)

// doctorTimeout bounds the two network probes (API reachability and
// token verification).
const doctorTimeout = 10 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Config   configInfo  `json:"config"`
	Account  accountInfo `json:"account"`
	API      apiInfo     `json:"api"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// configInfo holds config file detection results.
type configInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// accountInfo holds access token verification results. Verified means
// the server gave a definite answer; Valid means that answer was yes.
type accountInfo struct {
	TokenSet  bool   `json:"token_set"`
	Verified  bool   `json:"verified"`
	Valid     bool   `json:"valid"`
	ShortName string `json:"short_name,omitempty"`
}

// apiInfo holds endpoint reachability results.
type apiInfo struct {
	Endpoint  string `json:"endpoint"`
	Reachable bool   `json:"reachable"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	flags, _, err := parseDoctorFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	result := runDoctor(ctx, flags, env)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, flags *doctorFlags, env *Environment) *doctorResult {
	ctx, cancel := context.WithTimeout(ctx, doctorTimeout)
	defer cancel()

	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	cfg := checkConfig(result, flags, env)
	client := newClient(cfg, &flags.common)

	result.API.Endpoint = cfg.BaseURL
	if result.API.Endpoint == "" {
		result.API.Endpoint = telegraph.DefaultBaseURL
	}

	checkAPI(ctx, result, client)
	checkAccount(ctx, result, client)
	checkEnvVars(result)
	checkEnvironment(result, env)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig loads configuration tolerantly: a missing config means
// defaults, a broken one is reported as an error, and either way the
// remaining checks still run.
func checkConfig(result *doctorResult, flags *doctorFlags, env *Environment) *config.Config {
	envCfg := loadEnvConfig(env.Getenv)

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		name = config.DefaultName
	}

	cfg, err := config.Load(name)
	switch {
	case err == nil:
		result.Config.Found = true
		if path, perr := config.ResolvePath(name); perr == nil {
			result.Config.Path = path
		}
	case errors.Is(err, config.ErrConfigNotFound):
		cfg = config.DefaultConfig()
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("Config broken: %v", err))
		cfg = config.DefaultConfig()
	}

	applyEnvConfig(envCfg, cfg)
	return cfg
}

// checkAPI verifies the endpoint answers at all. The probe fetches
// the public API docs page, so it needs no token; an API-level error
// still proves the server is reachable.
func checkAPI(ctx context.Context, result *doctorResult, client *telegraph.Client) {
	_, err := client.GetPage(ctx, "api", false)
	if err == nil {
		result.API.Reachable = true
		return
	}

	var apiErr *telegraph.APIError
	if errors.As(err, &apiErr) {
		result.API.Reachable = true
		return
	}

	result.Errors = append(result.Errors,
		fmt.Sprintf("API unreachable at %s: %v", result.API.Endpoint, err))
}

// checkAccount verifies the access token against the live API.
func checkAccount(ctx context.Context, result *doctorResult, client *telegraph.Client) {
	token := client.AccessToken()
	result.Account.TokenSet = token != ""
	if token == "" {
		result.Warnings = append(result.Warnings,
			"No access token set. Run 'telegraph signup' or set TELEGRAPH_TOKEN")
		return
	}
	if !result.API.Reachable {
		// Nothing to verify against.
		return
	}

	acct, err := client.GetAccountInfo(ctx, telegraph.FieldShortName)
	if err != nil {
		if errors.Is(err, telegraph.ErrInvalidToken) {
			result.Account.Verified = true
			result.Errors = append(result.Errors,
				"Access token rejected. Check your config or run 'telegraph signup'")
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not verify token: %v", err))
		}
		return
	}

	result.Account.Verified = true
	result.Account.Valid = true
	result.Account.ShortName = acct.ShortName
}

// checkEnvVars flags TELEGRAPH_* variables the CLI does not read.
func checkEnvVars(result *doctorResult) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TELEGRAPH_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Unknown environment variable %s (typo?)", name))
			}
		}
	}
}

// checkEnvironment detects container and CI environments. Neither is
// a problem by itself; --open is the only feature they break.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env.Getenv)

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(getenv func(string) string) (bool, string) {
	// Explicit override (highest priority)
	if getenv("TELEGRAPH_CONTAINER") == "1" {
		return true, "TELEGRAPH_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies system requirements. Preview needs a writable
// temp directory for its rendered HTML.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "telegraph-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "telegraph doctor")
	fmt.Fprintln(w)

	// Config section
	fmt.Fprintln(w, "Config")
	if r.Config.Found {
		fmt.Fprintf(w, "  [OK] Loaded from %s\n", r.Config.Path)
	} else {
		fmt.Fprintln(w, "  [OK] No config file (using defaults)")
	}
	fmt.Fprintln(w)

	// Account section
	fmt.Fprintln(w, "Account")
	switch {
	case !r.Account.TokenSet:
		fmt.Fprintln(w, "  [WARN] No access token set")
	case r.Account.Valid:
		fmt.Fprintf(w, "  [OK] Token accepted (account %q)\n", r.Account.ShortName)
	case r.Account.Verified:
		fmt.Fprintln(w, "  [ERROR] Token rejected")
	default:
		fmt.Fprintln(w, "  [WARN] Token not verified")
	}
	fmt.Fprintln(w)

	// API section
	fmt.Fprintln(w, "API")
	if r.API.Reachable {
		fmt.Fprintf(w, "  [OK] Reachable at %s\n", r.API.Endpoint)
	} else {
		fmt.Fprintf(w, "  [ERROR] Unreachable at %s\n", r.API.Endpoint)
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to publish")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
