package main

import (
	"context"
	"fmt"
	"io"

	telegraph "github.com/alnah/go-telegraph"
)

// runPages lists the account's pages, most recently created first.
func runPages(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parsePagesFlags(args)
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

	list, err := client.GetPageList(ctx, flags.offset, flags.limit)
	if err != nil {
		return withHint(err)
	}

	printPageList(env.Stdout, list, flags.common.quiet, flags.common.verbose)
	return nil
}

// printPageList writes one tab-separated line per page plus a count.
// Quiet mode keeps only the lines so stdout stays pipeable.
func printPageList(w io.Writer, list *telegraph.PageList, quiet, verbose bool) {
	for _, p := range list.Pages {
		if verbose {
			fmt.Fprintf(w, "%s\t%d\t%s\n", p.URL, p.Views, p.Title)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", p.URL, p.Title)
		}
	}

	if !quiet {
		fmt.Fprintf(w, "\n%d of %d pages\n", len(list.Pages), list.TotalCount)
	}
}
