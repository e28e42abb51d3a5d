package main

import (
	"context"
	"fmt"

	telegraph "github.com/alnah/go-telegraph"
)

// runEditAccount updates account fields. Only explicitly flagged
// values are sent; the config byline never leaks into the account.
func runEditAccount(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseEditAccountFlags(args)
	if err != nil {
		return err
	}
	if flags.shortName == "" && flags.author.name == "" && flags.author.url == "" {
		return fmt.Errorf("%w (set --short-name, --author-name, or --author-url)", ErrNoChanges)
	}

	cfg, err := loadCommandConfig(&flags.common, env)
	if err != nil {
		return err
	}

	client := newClient(cfg, &flags.common)
	if err := requireToken(client); err != nil {
		return err
	}

	acct, err := client.EditAccountInfo(ctx, telegraph.EditAccountInfoInput{
		ShortName:  flags.shortName,
		AuthorName: flags.author.name,
		AuthorURL:  flags.author.url,
	})
	if err != nil {
		return withHint(err)
	}

	if !flags.common.quiet {
		printAccount(env.Stdout, acct, nil)
	}
	return nil
}
