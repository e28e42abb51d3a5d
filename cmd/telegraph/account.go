package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	telegraph "github.com/alnah/go-telegraph"
)

// Sentinel errors for account commands.
var (
	ErrUnknownField = errors.New("unknown account field")
	ErrNoChanges    = errors.New("nothing to change")
)

// accountFieldNames maps --fields names to API fields.
var accountFieldNames = map[string]telegraph.AccountField{
	"short_name":  telegraph.FieldShortName,
	"author_name": telegraph.FieldAuthorName,
	"author_url":  telegraph.FieldAuthorURL,
	"auth_url":    telegraph.FieldAuthURL,
	"page_count":  telegraph.FieldPageCount,
}

// runAccount prints account information.
func runAccount(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseAccountFlags(args)
	if err != nil {
		return err
	}

	fields, err := parseAccountFields(flags.fields)
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig(&flags.common, env)
	if err != nil {
		return err
	}

	client := newClient(cfg, &flags.common)
	if err := requireToken(client); err != nil {
		return err
	}

	acct, err := client.GetAccountInfo(ctx, fields...)
	if err != nil {
		return withHint(err)
	}

	printAccount(env.Stdout, acct, fields)
	return nil
}

// parseAccountFields splits a comma-separated field list.
func parseAccountFields(s string) ([]telegraph.AccountField, error) {
	if s == "" {
		return nil, nil
	}

	var fields []telegraph.AccountField
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		field, ok := accountFieldNames[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (valid: short_name, author_name, author_url, auth_url, page_count)",
				ErrUnknownField, name)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// printAccount writes the returned fields as tab-separated lines. The
// server echoes exactly the requested set, so zero values are printed
// only when explicitly asked for.
func printAccount(w io.Writer, acct *telegraph.Account, fields []telegraph.AccountField) {
	requested := make(map[telegraph.AccountField]bool, len(fields))
	if len(fields) == 0 {
		requested[telegraph.FieldShortName] = true
		requested[telegraph.FieldAuthorName] = true
		requested[telegraph.FieldAuthorURL] = true
	}
	for _, f := range fields {
		requested[f] = true
	}

	if requested[telegraph.FieldShortName] {
		fmt.Fprintf(w, "short_name\t%s\n", acct.ShortName)
	}
	if requested[telegraph.FieldAuthorName] {
		fmt.Fprintf(w, "author_name\t%s\n", acct.AuthorName)
	}
	if requested[telegraph.FieldAuthorURL] {
		fmt.Fprintf(w, "author_url\t%s\n", acct.AuthorURL)
	}
	if requested[telegraph.FieldAuthURL] {
		fmt.Fprintf(w, "auth_url\t%s\n", acct.AuthURL)
	}
	if requested[telegraph.FieldPageCount] {
		fmt.Fprintf(w, "page_count\t%d\n", acct.PageCount)
	}
}
