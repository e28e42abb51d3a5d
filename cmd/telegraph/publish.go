package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	telegraph "github.com/alnah/go-telegraph"
	"github.com/alnah/go-telegraph/internal/config"
	"github.com/alnah/go-telegraph/internal/fileutil"
	"github.com/alnah/go-telegraph/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadSource         = errors.New("failed to read source file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrTitleWithBatch     = errors.New("--title requires a single source file")
	ErrEditWithBatch      = errors.New("--edit requires a single source file")
)

// publishParams groups values shared across a publish batch.
type publishParams struct {
	client *telegraph.Client
	title  string // single-file title override
	edit   string // single-file edit path
}

// runPublish converts sources to node trees and creates (or edits)
// Telegraph pages.
func runPublish(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePublishFlags(args)
	if err != nil {
		return err
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadCommandConfig(&flags.common, env)
	if err != nil {
		return err
	}
	mergePublishFlags(flags, cfg)

	sources, err := discoverAll(positional)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no publishable files found%s", hints.ForNoSources())
	}

	// Title and edit path are properties of one page, not a batch.
	if len(sources) > 1 {
		if flags.title != "" {
			return fmt.Errorf("%w: got %d files", ErrTitleWithBatch, len(sources))
		}
		if flags.edit != "" {
			return fmt.Errorf("%w: got %d files", ErrEditWithBatch, len(sources))
		}
	}

	if flags.dryRun {
		return dryRun(sources, flags, env)
	}

	client := newClient(cfg, &flags.common)
	if err := requireToken(client); err != nil {
		return err
	}

	params := &publishParams{
		client: client,
		title:  flags.title,
		edit:   flags.edit,
	}

	results := publishBatch(ctx, params, sources, resolveWorkers(cfg.Workers))

	failed := printPublishResults(results, flags.common.quiet, flags.common.verbose, env)

	if cfg.Open {
		openPublished(results, env)
	}

	if failed > 0 {
		return fmt.Errorf("%d page(s) failed", failed)
	}
	return nil
}

// mergePublishFlags merges CLI flags into config. CLI values override
// config and env values.
func mergePublishFlags(flags *publishFlags, cfg *config.Config) {
	if flags.author.name != "" {
		cfg.Author.Name = flags.author.name
	}
	if flags.author.url != "" {
		cfg.Author.URL = flags.author.url
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.open {
		cfg.Open = true
	}
}

// discoverAll expands files and directories into a flat source list.
func discoverAll(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	var sources []string
	for _, arg := range args {
		found, err := fileutil.DiscoverSources(arg)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
		sources = append(sources, found...)
	}
	return sources, nil
}

// dryRun renders each source and prints its node JSON without touching
// the network. Headers go to stderr so stdout stays pipeable.
func dryRun(sources []string, flags *publishFlags, env *Environment) error {
	for _, src := range sources {
		title, nodes, err := sourceToPage(src, flags.title)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding nodes: %w", err)
		}

		if !flags.common.quiet && len(sources) > 1 {
			fmt.Fprintf(env.Stderr, "%s:\n", src)
		}
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "title: %s\n", title)
		}
		fmt.Fprintln(env.Stdout, string(data))
	}
	return nil
}

// sourceToPage reads one file and converts it into a page title and
// content nodes.
func sourceToPage(src, explicitTitle string) (string, []telegraph.Node, error) {
	data, err := os.ReadFile(src) // #nosec G304 -- discovered path
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	var nodes []telegraph.Node
	if fileutil.IsHTMLFile(src) {
		nodes, err = telegraph.HTMLToNodes(string(data))
	} else {
		nodes, err = telegraph.MarkdownToNodes(string(data))
	}
	if err != nil {
		return "", nil, fmt.Errorf("converting %s: %w", src, err)
	}

	title := explicitTitle
	if title == "" {
		title, nodes = titleFromContent(src, nodes)
	}
	return title, nodes, nil
}

// titleFromContent derives a page title. A document that opens with a
// heading donates it: the heading text becomes the title and the node
// is dropped, since Telegraph renders the title above the content
// anyway. Otherwise the file name stands in.
func titleFromContent(src string, nodes []telegraph.Node) (string, []telegraph.Node) {
	if len(nodes) > 1 && nodes[0].Element != nil {
		if tag := nodes[0].Element.Tag; tag == "h3" || tag == "h4" {
			if text := flattenText(nodes[0].Element.Children); text != "" {
				return text, nodes[1:]
			}
		}
	}
	return titleFromFilename(src), nodes
}

// flattenText concatenates the text content of nodes, depth first.
func flattenText(nodes []telegraph.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Element == nil {
			b.WriteString(n.Text)
			continue
		}
		b.WriteString(flattenText(n.Element.Children))
	}
	return strings.TrimSpace(b.String())
}

// titleFromFilename turns "my-first-post.md" into "my first post".
func titleFromFilename(src string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.TrimSpace(base)
	if base == "" {
		return "Untitled"
	}
	return base
}

// openPublished opens successfully published pages in the browser.
// Open failures are warnings, not errors: the pages are already live.
func openPublished(results []PublishResult, env *Environment) {
	for _, r := range results {
		if r.Err != nil || r.URL == "" {
			continue
		}
		if err := browser.OpenURL(r.URL); err != nil {
			fmt.Fprintf(env.Stderr, "warning: opening %s: %v%s\n", r.URL, err, hints.ForBrowserOpen())
		}
	}
}
