package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/config"
	"github.com/alnah/go-telegraph/internal/fileutil"
)

// runPage fetches a single page by path or URL and prints it.
func runPage(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePageFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: page path or URL required", ErrNoInput)
	}

	cfg, err := loadCommandConfig(&flags.common, env)
	if err != nil {
		return err
	}

	format, err := resolveFormat(flags.format, cfg)
	if err != nil {
		return err
	}

	client := newClient(cfg, &flags.common)

	page, err := client.GetPage(ctx, pagePathFromArg(positional[0]), true)
	if err != nil {
		return withHint(err)
	}

	return printPage(env.Stdout, page, format)
}

// resolveFormat determines the output format.
// Priority: flag > config > "text".
func resolveFormat(flagFormat string, cfg *config.Config) (string, error) {
	format := flagFormat
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		format = "text"
	}

	switch format {
	case "text", "html", "json":
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (must be text, html, or json)", config.ErrInvalidFormat, format)
	}
}

// pagePathFromArg accepts a bare page path or a full page URL and
// returns the path, i.e. the last URL segment.
func pagePathFromArg(arg string) string {
	if !fileutil.IsURL(arg) {
		return strings.TrimPrefix(arg, "/")
	}
	u, err := url.Parse(arg)
	if err != nil {
		return arg
	}
	return strings.TrimPrefix(u.Path, "/")
}

// printPage writes the page in the requested format.
func printPage(w io.Writer, page *telegraph.Page, format string) error {
	switch format {
	case "html":
		html, err := telegraph.NodesToHTML(page.Content)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, html)
	case "json":
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding page: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		printPageText(w, page)
	}
	return nil
}

// printPageText writes a human-readable page summary and its content
// as plain text.
func printPageText(w io.Writer, page *telegraph.Page) {
	fmt.Fprintf(w, "Title:  %s\n", page.Title)
	if page.AuthorName != "" {
		fmt.Fprintf(w, "Author: %s\n", page.AuthorName)
	}
	fmt.Fprintf(w, "URL:    %s\n", page.URL)
	fmt.Fprintf(w, "Views:  %d\n", page.Views)

	if text := nodesText(page.Content); text != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, text)
	}
}

// nodesText renders nodes as plain text, one top-level block per line.
func nodesText(nodes []telegraph.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Element == nil {
			b.WriteString(n.Text)
			continue
		}
		text := flattenText(n.Element.Children)
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
