package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  publish         Publish Markdown or HTML files as Telegraph pages")
	fmt.Fprintln(w, "  page            Fetch a page and print it")
	fmt.Fprintln(w, "  pages           List pages owned by the account")
	fmt.Fprintln(w, "  views           Show view counts for a page")
	fmt.Fprintln(w, "  account         Show account information")
	fmt.Fprintln(w, "  signup          Create a Telegraph account")
	fmt.Fprintln(w, "  edit-account    Update account profile fields")
	fmt.Fprintln(w, "  revoke          Revoke and replace the access token")
	fmt.Fprintln(w, "  upload          Upload media files to Telegraph")
	fmt.Fprintln(w, "  preview         Render a local HTML preview of a Markdown file")
	fmt.Fprintln(w, "  doctor          Check configuration and environment")
	fmt.Fprintln(w, "  completion      Generate shell completion scripts")
	fmt.Fprintln(w, "  version         Show version information")
	fmt.Fprintln(w, "  help            Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'telegraph help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --token <s>           Access token (overrides TELEGRAPH_TOKEN and config)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printPublishUsage prints usage for the publish command.
func printPublishUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph publish <files>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publish Markdown or HTML files as Telegraph pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  files    Markdown or HTML files, or directories to scan")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publishing:")
	fmt.Fprintln(w, "  -t, --title <s>           Page title (single file only; default: first heading)")
	fmt.Fprintln(w, "      --edit <path>         Edit the existing page at this path instead of creating")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel publishes (0 = auto)")
	fmt.Fprintln(w, "      --dry-run             Print content as node JSON instead of publishing")
	fmt.Fprintln(w, "      --open                Open published pages in the browser")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Author:")
	fmt.Fprintln(w, "      --author-name <s>     Author name shown below the title")
	fmt.Fprintln(w, "      --author-url <s>      Link opened when the author name is tapped")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPageUsage prints usage for the page command.
func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph page <path-or-url> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch a page and print it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    Page path (e.g. Sample-Page-12-15) or full telegra.ph URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, html, json")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPagesUsage prints usage for the pages command.
func printPagesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph pages [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List pages owned by the account, most recently created first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paging:")
	fmt.Fprintln(w, "      --offset <n>          Sequence number of the first page to return")
	fmt.Fprintln(w, "  -n, --limit <n>           Number of pages to return (0 = server default)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printViewsUsage prints usage for the views command.
func printViewsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph views <path-or-url> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show view counts for a page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    Page path or full telegra.ph URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period:")
	fmt.Fprintln(w, "      --year <n>            Count views during this year (2000-2100)")
	fmt.Fprintln(w, "      --month <n>           Count views during this month (1-12, requires --year)")
	fmt.Fprintln(w, "      --day <n>             Count views during this day (1-31, requires --month)")
	fmt.Fprintln(w, "      --hour <n>            Count views during this hour (0-24, requires --day)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printAccountUsage prints usage for the account command.
func printAccountUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph account [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show account information.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fields:")
	fmt.Fprintln(w, "      --fields <list>       Comma-separated fields to fetch")
	fmt.Fprintln(w, "                            (short_name, author_name, author_url, auth_url, page_count)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printSignupUsage prints usage for the signup command.
func printSignupUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph signup --short-name <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a Telegraph account and print its access token.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account:")
	fmt.Fprintln(w, "  -s, --short-name <s>      Account name shown in the edit interface (required)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Author:")
	fmt.Fprintln(w, "      --author-name <s>     Default author name for new pages")
	fmt.Fprintln(w, "      --author-url <s>      Default author link for new pages")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printEditAccountUsage prints usage for the edit-account command.
func printEditAccountUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph edit-account [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Update account profile fields. Only fields given as flags change.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account:")
	fmt.Fprintln(w, "  -s, --short-name <s>      New account name")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Author:")
	fmt.Fprintln(w, "      --author-name <s>     New author name shown below titles")
	fmt.Fprintln(w, "      --author-url <s>      New link opened when the author name is tapped")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printRevokeUsage prints usage for the revoke command.
func printRevokeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph revoke [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Revoke the access token and print the replacement. Edit URLs issued")
	fmt.Fprintln(w, "for the old token stop working.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printUploadUsage prints usage for the upload command.
func printUploadUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph upload <files>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Upload media files to Telegraph and print their URLs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  files    Image or video files (jpg, png, gif, mp4)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph preview <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a Markdown file to styled HTML for local review.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file    Markdown file to render")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -t, --title <s>           Document title (default: derived from the file name)")
	fmt.Fprintln(w, "      --style <name>        Style name: plain, telegraph (default: telegraph)")
	fmt.Fprintln(w, "      --assets <dir>        Directory with custom styles/ and templates/")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML path (default: a temp file)")
	fmt.Fprintln(w, "      --open                Open the rendered preview in the browser")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check configuration, access token, and API reachability.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --json                Machine-readable output")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "publish":
		printPublishUsage(env.Stdout)
	case "page":
		printPageUsage(env.Stdout)
	case "pages":
		printPagesUsage(env.Stdout)
	case "views":
		printViewsUsage(env.Stdout)
	case "account":
		printAccountUsage(env.Stdout)
	case "signup":
		printSignupUsage(env.Stdout)
	case "edit-account":
		printEditAccountUsage(env.Stdout)
	case "revoke":
		printRevokeUsage(env.Stdout)
	case "upload":
		printUploadUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: telegraph version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: telegraph help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
