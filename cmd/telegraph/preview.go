package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/alnah/go-telegraph/internal/assets"
	"github.com/alnah/go-telegraph/internal/fileutil"
	"github.com/alnah/go-telegraph/internal/hints"
	"github.com/alnah/go-telegraph/internal/preview"
)

// ErrNotMarkdown is returned when preview is given a non-markdown file.
var ErrNotMarkdown = errors.New("not a markdown file")

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runPreview renders a Markdown draft to a standalone styled HTML file
// so it can be checked locally before publishing.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: markdown file required", ErrNoInput)
	}

	src := positional[0]
	if !fileutil.IsMarkdownFile(src) {
		return fmt.Errorf("%w: %q (preview renders Markdown)", ErrNotMarkdown, filepath.Ext(src))
	}

	data, err := os.ReadFile(src) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	title := flags.title
	if title == "" {
		title = titleFromFilename(src)
	}

	renderer, err := preview.New(flags.style, flags.assets)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.ListStyles()))
		}
		return err
	}

	doc, err := renderer.Render(ctx, title, string(data))
	if err != nil {
		return err
	}

	outPath := flags.output
	if outPath != "" {
		// #nosec G306 -- preview HTML is meant to be readable
		if err := os.WriteFile(outPath, []byte(doc), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	} else {
		// Cleanup discarded: the file must outlive the process so the
		// browser can load it.
		path, _, err := fileutil.WriteTempFile(doc, "html")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		outPath = path
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Preview written to %s\n", outPath)
	}

	if flags.open {
		if err := browser.OpenFile(outPath); err != nil {
			fmt.Fprintf(env.Stderr, "warning: opening %s: %v%s\n", outPath, err, hints.ForBrowserOpen())
		}
	}
	return nil
}
