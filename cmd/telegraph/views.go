package main

import (
	"context"
	"fmt"

	telegraph "github.com/alnah/go-telegraph"
)

// runViews prints the view counter of a page, optionally narrowed to
// a year, month, day, or hour.
func runViews(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseViewsFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: page path or URL required", ErrNoInput)
	}

	at, err := viewsFilter(flags)
	if err != nil {
		return err
	}

	cfg, err := loadCommandConfig(&flags.common, env)
	if err != nil {
		return err
	}

	client := newClient(cfg, &flags.common)

	views, err := client.GetViews(ctx, pagePathFromArg(positional[0]), at...)
	if err != nil {
		return withHint(err)
	}

	if flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%d\n", views.Views)
	} else {
		fmt.Fprintf(env.Stdout, "%d views\n", views.Views)
	}
	return nil
}

// viewsFilter assembles the coarsest-first time filter, rejecting gaps
// like --day without --month. An unset hour is -1 since hour 0 is
// valid.
func viewsFilter(f *viewsFlags) ([]int, error) {
	type unit struct {
		name string
		set  bool
		val  int
	}
	units := []unit{
		{"--year", f.year != 0, f.year},
		{"--month", f.month != 0, f.month},
		{"--day", f.day != 0, f.day},
		{"--hour", f.hour >= 0, f.hour},
	}

	var at []int
	for i, u := range units {
		if !u.set {
			for _, finer := range units[i+1:] {
				if finer.set {
					return nil, fmt.Errorf("%w: %s requires %s",
						telegraph.ErrInvalidViewsTime, finer.name, u.name)
				}
			}
			break
		}
		at = append(at, u.val)
	}
	return at, nil
}
