package main

// Notes:
// - printCredentials: quiet mode must print the bare token so scripts can
//   capture it; full mode explains how to keep the credentials.
// - runSignup: end-to-end against the canned test server. Signup is the one
//   account command that works without a token.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	telegraph "github.com/alnah/go-telegraph"
)

// ---------------------------------------------------------------------------
// TestPrintCredentials - Credential output modes
// ---------------------------------------------------------------------------

func TestPrintCredentials(t *testing.T) {
	t.Parallel()

	acct := &telegraph.Account{
		ShortName:   "my-blog",
		AccessToken: "fresh-token-456",
		AuthURL:     "https://edit.telegra.ph/auth/abc",
	}

	t.Run("quiet prints the bare token", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printCredentials(&buf, acct, true)

		if got := strings.TrimSpace(buf.String()); got != "fresh-token-456" {
			t.Errorf("quiet output = %q, want bare token", got)
		}
	})

	t.Run("full output explains the credentials", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printCredentials(&buf, acct, false)

		out := buf.String()
		for _, want := range []string{
			`Account "my-blog" created.`,
			"Access token: fresh-token-456",
			"Auth URL:     https://edit.telegra.ph/auth/abc",
			"TELEGRAPH_TOKEN",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("auth URL line dropped when absent", func(t *testing.T) {
		t.Parallel()

		bare := *acct
		bare.AuthURL = ""

		var buf bytes.Buffer
		printCredentials(&buf, &bare, false)

		if strings.Contains(buf.String(), "Auth URL") {
			t.Errorf("output should drop the auth URL line, got:\n%s", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunSignup - Full command flow against a live server
// ---------------------------------------------------------------------------

func TestRunSignup(t *testing.T) {
	t.Parallel()

	t.Run("creates an account and prints credentials", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, stdout, _ := serverEnv(t, srv)

		err := runSignup(context.Background(), []string{"-s", "my-blog"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !calls.has("/createAccount") {
			t.Error("server should see a createAccount call")
		}
		if !strings.Contains(stdout.String(), "fresh-token-456") {
			t.Errorf("stdout = %q, want the new token", stdout.String())
		}
	})

	t.Run("works without an existing token", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, stdout, _ := envWith(t, map[string]string{"TELEGRAPH_BASE_URL": srv.URL})

		err := runSignup(context.Background(), []string{"-s", "my-blog", "-q"}, env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !calls.has("/createAccount") {
			t.Error("server should see a createAccount call")
		}
		if got := strings.TrimSpace(stdout.String()); got != "fresh-token-456" {
			t.Errorf("quiet stdout = %q, want bare token", got)
		}
	})

	t.Run("missing short name fails before the request", func(t *testing.T) {
		t.Parallel()

		srv, calls := newTelegraphServer(t)
		env, _, _ := serverEnv(t, srv)

		err := runSignup(context.Background(), nil, env)
		if !errors.Is(err, telegraph.ErrEmptyShortName) {
			t.Errorf("err = %v, want ErrEmptyShortName", err)
		}
		if calls.has("/createAccount") {
			t.Error("no request should go out without a short name")
		}
	})
}
