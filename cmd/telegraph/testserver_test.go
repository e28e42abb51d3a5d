package main

// Notes:
// - This file contains test helpers shared across command tests.
// - newTelegraphServer speaks the wire format the client expects: every
//   reply is an {"ok":true,"result":...} envelope. Calls are recorded so
//   tests can assert which methods were hit and how often.
// - serverEnv pins TELEGRAPH_CONFIG to a throwaway file so a developer's
//   real config can never leak into a test run.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// serverCalls records the API paths a test server received.
// Safe for concurrent use; batch publishes hit the server in parallel.
type serverCalls struct {
	mu    sync.Mutex
	paths []string
}

func (c *serverCalls) record(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

// count returns how many recorded calls start with prefix.
func (c *serverCalls) count(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, p := range c.paths {
		if strings.HasPrefix(p, prefix) {
			n++
		}
	}
	return n
}

// has reports whether any recorded call starts with prefix.
func (c *serverCalls) has(prefix string) bool {
	return c.count(prefix) > 0
}

// newTelegraphServer starts an HTTP server with canned responses for
// every method the CLI calls. The server is closed via t.Cleanup.
func newTelegraphServer(t *testing.T) (*httptest.Server, *serverCalls) {
	t.Helper()

	calls := &serverCalls{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.record(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/createAccount":
			fmt.Fprint(w, `{"ok":true,"result":{"short_name":"tester","author_name":"tester","access_token":"fresh-token-456","auth_url":"https://edit.telegra.ph/auth/abc"}}`)
		case r.URL.Path == "/createPage":
			_ = r.ParseForm()
			fmt.Fprintf(w, `{"ok":true,"result":{"path":"Test-Page-01-01","url":"https://telegra.ph/Test-Page-01-01","title":%q}}`, r.FormValue("title"))
		case strings.HasPrefix(r.URL.Path, "/editPage/"):
			path := strings.TrimPrefix(r.URL.Path, "/editPage/")
			fmt.Fprintf(w, `{"ok":true,"result":{"path":%q,"url":"https://telegra.ph/%s","title":"Edited"}}`, path, path)
		case strings.HasPrefix(r.URL.Path, "/getPage/"):
			fmt.Fprint(w, `{"ok":true,"result":{"path":"Sample-Page-12-15","url":"https://telegra.ph/Sample-Page-12-15","title":"Sample Page","description":"once upon a time","views":42,"content":[{"tag":"p","children":["Hello, ","world"]}]}}`)
		case r.URL.Path == "/getPageList":
			fmt.Fprint(w, `{"ok":true,"result":{"total_count":2,"pages":[{"path":"First-01-01","url":"https://telegra.ph/First-01-01","title":"First","views":10},{"path":"Second-01-02","url":"https://telegra.ph/Second-01-02","title":"Second","views":5}]}}`)
		case strings.HasPrefix(r.URL.Path, "/getViews/"):
			fmt.Fprint(w, `{"ok":true,"result":{"views":40}}`)
		case r.URL.Path == "/getAccountInfo":
			fmt.Fprint(w, `{"ok":true,"result":{"short_name":"tester","author_name":"Anna","author_url":"https://example.com","page_count":2}}`)
		case r.URL.Path == "/editAccountInfo":
			_ = r.ParseForm()
			fmt.Fprintf(w, `{"ok":true,"result":{"short_name":%q,"author_name":%q}}`, r.FormValue("short_name"), r.FormValue("author_name"))
		case r.URL.Path == "/revokeAccessToken":
			fmt.Fprint(w, `{"ok":true,"result":{"access_token":"revoked-token-789","auth_url":"https://edit.telegra.ph/auth/xyz"}}`)
		case r.URL.Path == "/upload":
			// The upload endpoint answers with a bare array, not the
			// ok envelope.
			_ = r.ParseMultipartForm(32 << 20)
			n := 1
			if r.MultipartForm != nil && len(r.MultipartForm.File) > 0 {
				n = len(r.MultipartForm.File)
			}
			var parts []string
			for i := 0; i < n; i++ {
				parts = append(parts, fmt.Sprintf(`{"src":"/file/upload-%d.jpg"}`, i))
			}
			fmt.Fprintf(w, "[%s]", strings.Join(parts, ","))
		default:
			fmt.Fprint(w, `{"ok":false,"error":"UNKNOWN_METHOD"}`)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, calls
}

// writeTestConfig writes YAML to a temp config file and returns its path.
func writeTestConfig(t *testing.T, yaml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test-config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

// writeSource writes a source file into dir and returns its path.
func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing source file: %v", err)
	}
	return path
}

// serverEnv builds an Environment wired to srv through environment
// variables, with a throwaway config file.
func serverEnv(t *testing.T, srv *httptest.Server) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	return envWith(t, map[string]string{
		"TELEGRAPH_TOKEN":    "test-token-123",
		"TELEGRAPH_BASE_URL": srv.URL,
	})
}

// envWith builds an Environment whose Getenv returns the given vars on
// top of a pinned throwaway config.
func envWith(t *testing.T, vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	merged := map[string]string{
		"TELEGRAPH_CONFIG": writeTestConfig(t, "access_token: \"\"\n"),
	}
	for k, v := range vars {
		merged[k] = v
	}

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: fakeGetenv(merged),
	}
	return env, &stdout, &stderr
}
