package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks flag parse failures so they map to ExitUsage.
var ErrUsage = errors.New("invalid usage")

// parseFailed normalizes fs.Parse errors. A --help request already
// printed usage and is not a failure; it passes through unwrapped so
// the dispatcher can exit 0.
func parseFailed(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	token   string
	quiet   bool
	verbose bool
}

// authorFlags holds byline flags.
type authorFlags struct {
	name string
	url  string
}

// publishFlags holds all flags for the publish command.
type publishFlags struct {
	common  commonFlags
	author  authorFlags
	title   string
	edit    string
	workers int
	dryRun  bool
	open    bool
}

// pageFlags holds all flags for the page command.
type pageFlags struct {
	common commonFlags
	format string
}

// pagesFlags holds all flags for the pages command.
type pagesFlags struct {
	common commonFlags
	offset int
	limit  int
}

// viewsFlags holds all flags for the views command.
type viewsFlags struct {
	common commonFlags
	year   int
	month  int
	day    int
	hour   int
}

// accountFlags holds all flags for the account command.
type accountFlags struct {
	common commonFlags
	fields string
}

// signupFlags holds all flags for the signup command.
type signupFlags struct {
	common    commonFlags
	author    authorFlags
	shortName string
}

// editAccountFlags holds all flags for the edit-account command.
type editAccountFlags struct {
	common    commonFlags
	author    authorFlags
	shortName string
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	title  string
	style  string
	assets string
	output string
	open   bool
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.token, "token", "", "access token (overrides TELEGRAPH_TOKEN and config)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addAuthorFlags adds byline flags to a FlagSet.
func addAuthorFlags(fs *flag.FlagSet, f *authorFlags) {
	fs.StringVar(&f.name, "author-name", "", "author name shown below the title")
	fs.StringVar(&f.url, "author-url", "", "link opened when the author name is tapped")
}

// The newXxxFlagSet builders below are the single source of flag
// registration per command: parsing and completion both use them.

// newPublishFlagSet creates the publish command's FlagSet.
func newPublishFlagSet() (*flag.FlagSet, *publishFlags) {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	f := &publishFlags{}

	fs.StringVarP(&f.title, "title", "t", "", "page title (single file only)")
	fs.StringVar(&f.edit, "edit", "", "edit the existing page at this path instead of creating")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel publishes (0 = auto)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print content as node JSON instead of publishing")
	fs.BoolVar(&f.open, "open", false, "open published pages in the browser")

	addCommonFlags(fs, &f.common)
	addAuthorFlags(fs, &f.author)

	return fs, f
}

// newPageFlagSet creates the page command's FlagSet.
func newPageFlagSet() (*flag.FlagSet, *pageFlags) {
	fs := flag.NewFlagSet("page", flag.ContinueOnError)
	f := &pageFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "output format: text, html, json")

	addCommonFlags(fs, &f.common)

	return fs, f
}

// newPagesFlagSet creates the pages command's FlagSet.
func newPagesFlagSet() (*flag.FlagSet, *pagesFlags) {
	fs := flag.NewFlagSet("pages", flag.ContinueOnError)
	f := &pagesFlags{}

	fs.IntVar(&f.offset, "offset", 0, "sequence number of the first page to return")
	fs.IntVarP(&f.limit, "limit", "n", 0, "number of pages to return (0 = server default)")

	addCommonFlags(fs, &f.common)

	return fs, f
}

// newViewsFlagSet creates the views command's FlagSet.
func newViewsFlagSet() (*flag.FlagSet, *viewsFlags) {
	fs := flag.NewFlagSet("views", flag.ContinueOnError)
	f := &viewsFlags{}

	fs.IntVar(&f.year, "year", 0, "count views during this year (2000-2100)")
	fs.IntVar(&f.month, "month", 0, "count views during this month (1-12, requires --year)")
	fs.IntVar(&f.day, "day", 0, "count views during this day (1-31, requires --month)")
	fs.IntVar(&f.hour, "hour", -1, "count views during this hour (0-24, requires --day)")

	addCommonFlags(fs, &f.common)

	return fs, f
}

// newAccountFlagSet creates the account command's FlagSet.
func newAccountFlagSet() (*flag.FlagSet, *accountFlags) {
	fs := flag.NewFlagSet("account", flag.ContinueOnError)
	f := &accountFlags{}

	fs.StringVar(&f.fields, "fields", "", "comma-separated fields (short_name,author_name,author_url,auth_url,page_count)")

	addCommonFlags(fs, &f.common)

	return fs, f
}

// newSignupFlagSet creates the signup command's FlagSet.
func newSignupFlagSet() (*flag.FlagSet, *signupFlags) {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	f := &signupFlags{}

	fs.StringVarP(&f.shortName, "short-name", "s", "", "account name shown in the edit interface (required)")

	addCommonFlags(fs, &f.common)
	addAuthorFlags(fs, &f.author)

	return fs, f
}

// newEditAccountFlagSet creates the edit-account command's FlagSet.
func newEditAccountFlagSet() (*flag.FlagSet, *editAccountFlags) {
	fs := flag.NewFlagSet("edit-account", flag.ContinueOnError)
	f := &editAccountFlags{}

	fs.StringVarP(&f.shortName, "short-name", "s", "", "new account name")

	addCommonFlags(fs, &f.common)
	addAuthorFlags(fs, &f.author)

	return fs, f
}

// newPreviewFlagSet creates the preview command's FlagSet.
func newPreviewFlagSet() (*flag.FlagSet, *previewFlags) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	fs.StringVarP(&f.title, "title", "t", "", "document title (default: derived from the file name)")
	fs.StringVar(&f.style, "style", "", "style name (default: telegraph)")
	fs.StringVar(&f.assets, "assets", "", "directory with custom styles/ and templates/")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (default: a temp file)")
	fs.BoolVar(&f.open, "open", false, "open the rendered preview in the browser")

	addCommonFlags(fs, &f.common)

	return fs, f
}

// newDoctorFlagSet creates the doctor command's FlagSet.
func newDoctorFlagSet() (*flag.FlagSet, *doctorFlags) {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	f := &doctorFlags{}

	fs.BoolVar(&f.json, "json", false, "machine-readable output")

	addCommonFlags(fs, &f.common)

	return fs, f
}

// newCommonOnlyFlagSet creates a FlagSet for commands that take no
// flags of their own (revoke, upload).
func newCommonOnlyFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &commonFlags{}

	addCommonFlags(fs, f)

	return fs, f
}

// parsePublishFlags parses publish command flags and returns positional args.
func parsePublishFlags(args []string) (*publishFlags, []string, error) {
	fs, f := newPublishFlagSet()
	fs.Usage = func() { printPublishUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parsePageFlags parses page command flags and returns positional args.
func parsePageFlags(args []string) (*pageFlags, []string, error) {
	fs, f := newPageFlagSet()
	fs.Usage = func() { printPageUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parsePagesFlags parses pages command flags and returns positional args.
func parsePagesFlags(args []string) (*pagesFlags, []string, error) {
	fs, f := newPagesFlagSet()
	fs.Usage = func() { printPagesUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parseViewsFlags parses views command flags and returns positional args.
func parseViewsFlags(args []string) (*viewsFlags, []string, error) {
	fs, f := newViewsFlagSet()
	fs.Usage = func() { printViewsUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parseAccountFlags parses account command flags and returns positional args.
func parseAccountFlags(args []string) (*accountFlags, []string, error) {
	fs, f := newAccountFlagSet()
	fs.Usage = func() { printAccountUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parseSignupFlags parses signup command flags and returns positional args.
func parseSignupFlags(args []string) (*signupFlags, []string, error) {
	fs, f := newSignupFlagSet()
	fs.Usage = func() { printSignupUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parseEditAccountFlags parses edit-account command flags and returns positional args.
func parseEditAccountFlags(args []string) (*editAccountFlags, []string, error) {
	fs, f := newEditAccountFlagSet()
	fs.Usage = func() { printEditAccountUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parseCommonOnlyFlags parses flags for commands that take no flags of
// their own (revoke, upload).
func parseCommonOnlyFlags(name string, args []string, usage func(io.Writer)) (*commonFlags, []string, error) {
	fs, f := newCommonOnlyFlagSet(name)
	fs.Usage = func() { usage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs, f := newPreviewFlagSet()
	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags and returns positional args.
func parseDoctorFlags(args []string) (*doctorFlags, []string, error) {
	fs, f := newDoctorFlagSet()
	fs.Usage = func() { printDoctorUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseFailed(err)
	}

	return f, fs.Args(), nil
}
