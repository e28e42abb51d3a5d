package main

import (
	"context"
	"fmt"
)

// runRevoke revokes the current access token and prints the
// replacement. Published pages stay editable through the new token.
func runRevoke(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseCommonOnlyFlags("revoke", args, printRevokeUsage)
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig(flags, env)
	if err != nil {
		return err
	}

	client := newClient(cfg, flags)
	if err := requireToken(client); err != nil {
		return err
	}

	acct, err := client.RevokeAccessToken(ctx)
	if err != nil {
		return withHint(err)
	}

	if flags.quiet {
		fmt.Fprintln(env.Stdout, acct.AccessToken)
		return nil
	}

	fmt.Fprintln(env.Stdout, "Old token revoked.")
	fmt.Fprintln(env.Stdout)
	fmt.Fprintf(env.Stdout, "New token: %s\n", acct.AccessToken)
	if acct.AuthURL != "" {
		fmt.Fprintf(env.Stdout, "Auth URL:  %s\n", acct.AuthURL)
	}
	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Update TELEGRAPH_TOKEN and any config files that")
	fmt.Fprintln(env.Stdout, "carry the old token; it no longer works.")
	return nil
}
