// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
	"time"

	"github.com/alnah/go-telegraph/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserOpen returns hints for browser open errors.
// CI and container environments have no browser to hand off to.
func ForBrowserOpen() string {
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if inCI || IsInContainer() {
		return format("no browser in CI/containers; drop --open and open the URL or file manually")
	}
	return ""
}

// ForMissingToken returns hints for operations attempted without an access token.
func ForMissingToken() string {
	return format("pass --token, set TELEGRAPH_TOKEN, or run 'telegraph signup' to create an account")
}

// ForInvalidToken returns hints for rejected access tokens.
func ForInvalidToken() string {
	return format("the token may have been revoked; check your config or run 'telegraph signup'")
}

// ForFloodWait returns hints for rate-limit errors. The duration comes from
// the FLOOD_WAIT_N error code when the server provides one.
func ForFloodWait(retryAfter time.Duration) string {
	if retryAfter > 0 {
		return format("rate limited; retry after " + retryAfter.String())
	}
	return format("rate limited; retry in a few seconds")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/telegraph/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/telegraph) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/telegraph") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPageNotFound returns hints for unknown page paths.
func ForPageNotFound() string {
	return format("the page path is the last URL segment, e.g. Sample-Page-12-15")
}

// ForNoSources returns hints for empty source discovery.
func ForNoSources() string {
	return format("publishable files need a .md, .markdown, or .html extension")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
