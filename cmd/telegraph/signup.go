package main

import (
	"context"
	"fmt"
	"io"

	telegraph "github.com/alnah/go-telegraph"
)

// runSignup creates a new Telegraph account and prints its credentials.
func runSignup(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseSignupFlags(args)
	if err != nil {
		return err
	}
	if flags.shortName == "" {
		return fmt.Errorf("%w (use --short-name)", telegraph.ErrEmptyShortName)
	}

	cfg, err := loadCommandConfig(&flags.common, env)
	if err != nil {
		return err
	}

	// Author flags beat the config byline, as everywhere else.
	authorName := cfg.Author.Name
	if flags.author.name != "" {
		authorName = flags.author.name
	}
	authorURL := cfg.Author.URL
	if flags.author.url != "" {
		authorURL = flags.author.url
	}

	client := newClient(cfg, &flags.common)

	acct, err := client.CreateAccount(ctx, telegraph.CreateAccountInput{
		ShortName:  flags.shortName,
		AuthorName: authorName,
		AuthorURL:  authorURL,
	})
	if err != nil {
		return withHint(err)
	}

	printCredentials(env.Stdout, acct, flags.common.quiet)
	return nil
}

// printCredentials prints a fresh access token and how to keep it.
// Quiet mode prints the bare token for scripting.
func printCredentials(w io.Writer, acct *telegraph.Account, quiet bool) {
	if quiet {
		fmt.Fprintln(w, acct.AccessToken)
		return
	}

	fmt.Fprintf(w, "Account %q created.\n", acct.ShortName)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Access token: %s\n", acct.AccessToken)
	if acct.AuthURL != "" {
		fmt.Fprintf(w, "Auth URL:     %s\n", acct.AuthURL)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keep the token: export TELEGRAPH_TOKEN=<token>, or put")
	fmt.Fprintln(w, "access_token in telegraph.yaml. The auth URL logs the")
	fmt.Fprintln(w, "browser into this account and expires after first use.")
}
