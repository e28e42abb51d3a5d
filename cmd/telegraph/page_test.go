package main

// Notes:
// - pagePathFromArg, resolveFormat, nodesText: pure functions, table tests.
// - printPage: we test each format against a fixture page; HTML and JSON
//   encoding details belong to the library's own tests.
// - runPage: end-to-end against the canned test server.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/config"
)

// ---------------------------------------------------------------------------
// TestPagePathFromArg - Path extraction from paths and URLs
// ---------------------------------------------------------------------------

func TestPagePathFromArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"bare path", "Sample-Page-12-15", "Sample-Page-12-15"},
		{"leading slash stripped", "/Sample-Page-12-15", "Sample-Page-12-15"},
		{"full URL", "https://telegra.ph/Sample-Page-12-15", "Sample-Page-12-15"},
		{"http URL", "http://telegra.ph/Sample-Page-12-15", "Sample-Page-12-15"},
		{"URL with query", "https://telegra.ph/Sample-Page-12-15?from=feed", "Sample-Page-12-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pagePathFromArg(tt.arg); got != tt.want {
				t.Errorf("pagePathFromArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveFormat - Output format resolution
// ---------------------------------------------------------------------------

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flagFormat string
		cfgFormat  string
		want       string
		wantErr    bool
	}{
		{"flag wins over config", "json", "html", "json", false},
		{"config wins over default", "", "html", "html", false},
		{"default is text", "", "", "text", false},
		{"html flag", "html", "", "html", false},
		{"invalid flag value", "xml", "", "", true},
		{"invalid config value", "", "yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Format = tt.cfgFormat

			got, err := resolveFormat(tt.flagFormat, cfg)

			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidFormat) {
					t.Errorf("err = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFormat(%q, %q) = %q, want %q", tt.flagFormat, tt.cfgFormat, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNodesText - Plain text rendering
// ---------------------------------------------------------------------------

func TestNodesText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		nodes []telegraph.Node
		want  string
	}{
		{
			name: "one line per block",
			nodes: []telegraph.Node{
				telegraph.Elem("p", telegraph.Text("first")),
				telegraph.Elem("p", telegraph.Text("second")),
			},
			want: "first\nsecond",
		},
		{
			name: "inline markup flattened",
			nodes: []telegraph.Node{
				telegraph.Elem("p", telegraph.Text("go "), telegraph.Elem("strong", telegraph.Text("fast"))),
			},
			want: "go fast",
		},
		{
			name: "empty blocks skipped",
			nodes: []telegraph.Node{
				telegraph.Elem("hr"),
				telegraph.Elem("p", telegraph.Text("after the rule")),
			},
			want: "after the rule",
		},
		{
			name:  "no content",
			nodes: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := nodesText(tt.nodes); got != tt.want {
				t.Errorf("nodesText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintPage - Output formats
// ---------------------------------------------------------------------------

func TestPrintPage(t *testing.T) {
	t.Parallel()

	page := &telegraph.Page{
		Path:       "Sample-Page-12-15",
		URL:        "https://telegra.ph/Sample-Page-12-15",
		Title:      "Sample Page",
		AuthorName: "Anna",
		Views:      42,
		Content: []telegraph.Node{
			telegraph.Elem("p", telegraph.Text("Hello, "), telegraph.Elem("strong", telegraph.Text("world"))),
		},
	}

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := printPage(&buf, page, "text"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"Title:  Sample Page",
			"Author: Anna",
			"URL:    https://telegra.ph/Sample-Page-12-15",
			"Views:  42",
			"Hello, world",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("text output missing %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("text format omits empty author", func(t *testing.T) {
		t.Parallel()

		anon := *page
		anon.AuthorName = ""

		var buf bytes.Buffer
		if err := printPage(&buf, &anon, "text"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "Author:") {
			t.Errorf("anonymous page should not print an author line, got:\n%s", buf.String())
		}
	})

	t.Run("html format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := printPage(&buf, page, "html"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "<p>") || !strings.Contains(out, "<strong>") {
			t.Errorf("html output missing markup, got:\n%s", out)
		}
	})

	t.Run("json format round-trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := printPage(&buf, page, "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded telegraph.Page
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output should be valid JSON: %v", err)
		}
		if decoded.Title != "Sample Page" || decoded.Views != 42 {
			t.Errorf("decoded page = %+v, want original fields", decoded)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunPage - Full command flow against a live server
// ---------------------------------------------------------------------------

func TestRunPage(t *testing.T) {
	t.Parallel()

	t.Run("fetches and prints a page", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, stdout, _ := serverEnv(t, srv)

		err := runPage(context.Background(), []string{"Sample-Page-12-15"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !calls.has("/getPage/Sample-Page-12-15") {
			t.Error("server should see a getPage call for the requested path")
		}
		if !strings.Contains(stdout.String(), "Title:  Sample Page") {
			t.Errorf("stdout = %q, want page summary", stdout.String())
		}
		if !strings.Contains(stdout.String(), "Hello, world") {
			t.Errorf("stdout = %q, want page text", stdout.String())
		}
	})

	t.Run("accepts a full URL argument", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, _, _ := serverEnv(t, srv)

		err := runPage(context.Background(), []string{"https://telegra.ph/Sample-Page-12-15"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !calls.has("/getPage/Sample-Page-12-15") {
			t.Error("URL argument should resolve to the page path")
		}
	})

	t.Run("json format prints raw page", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTelegraphServer(t)
		env, stdout, _ := serverEnv(t, srv)

		err := runPage(context.Background(), []string{"-f", "json", "Sample-Page-12-15"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded telegraph.Page
		if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
			t.Fatalf("stdout should be page JSON: %v\n%s", err, stdout.String())
		}
		if decoded.Path != "Sample-Page-12-15" {
			t.Errorf("decoded path = %q, want Sample-Page-12-15", decoded.Path)
		}
	})

	t.Run("missing argument returns ErrNoInput", func(t *testing.T) {
		t.Parallel()

		env, _, _ := envWith(t, nil)

		err := runPage(context.Background(), nil, env)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("err = %v, want ErrNoInput", err)
		}
	})

	t.Run("invalid format is rejected before the request", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, _, _ := serverEnv(t, srv)

		err := runPage(context.Background(), []string{"-f", "xml", "Sample-Page-12-15"}, env)
		if !errors.Is(err, config.ErrInvalidFormat) {
			t.Errorf("err = %v, want ErrInvalidFormat", err)
		}
		if calls.has("/getPage/") {
			t.Error("no request should go out with an invalid format")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunPages - Page listing against a live server
// ---------------------------------------------------------------------------

func TestRunPages(t *testing.T) {
	t.Parallel()

	t.Run("lists pages with a count", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, stdout, _ := serverEnv(t, srv)

		err := runPages(context.Background(), nil, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !calls.has("/getPageList") {
			t.Error("server should see a getPageList call")
		}

		out := stdout.String()
		if !strings.Contains(out, "https://telegra.ph/First-01-01\tFirst") {
			t.Errorf("stdout missing first page line, got:\n%s", out)
		}
		if !strings.Contains(out, "2 of 2 pages") {
			t.Errorf("stdout missing count line, got:\n%s", out)
		}
	})

	t.Run("quiet drops the count line", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTelegraphServer(t)
		env, stdout, _ := serverEnv(t, srv)

		err := runPages(context.Background(), []string{"-q"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stdout.String(), "pages") {
			t.Errorf("quiet output should only hold page lines, got:\n%s", stdout.String())
		}
	})

	t.Run("verbose includes view counts", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTelegraphServer(t)
		env, stdout, _ := serverEnv(t, srv)

		err := runPages(context.Background(), []string{"-v"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "\t10\t") {
			t.Errorf("verbose output should include views, got:\n%s", stdout.String())
		}
	})

	t.Run("missing token fails before the request", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, _, _ := envWith(t, map[string]string{"TELEGRAPH_BASE_URL": srv.URL})

		err := runPages(context.Background(), nil, env)
		if !errors.Is(err, telegraph.ErrMissingToken) {
			t.Fatalf("err = %v, want ErrMissingToken", err)
		}
		if calls.has("/getPageList") {
			t.Error("no request should reach the server without a token")
		}
	})
}
