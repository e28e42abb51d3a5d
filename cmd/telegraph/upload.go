package main

import (
	"context"
	"fmt"
)

// runUpload sends media files to Telegraph and prints their URLs.
func runUpload(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCommonOnlyFlags("upload", args, printUploadUsage)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: media files required", ErrNoInput)
	}

	cfg, err := loadCommandConfig(flags, env)
	if err != nil {
		return err
	}

	client := newClient(cfg, flags)

	results, err := client.Upload(ctx, positional...)
	if err != nil {
		return withHint(err)
	}

	for i, r := range results {
		if flags.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s\n", positional[i], r.SourceURL())
		} else {
			fmt.Fprintln(env.Stdout, r.SourceURL())
		}
	}
	return nil
}
