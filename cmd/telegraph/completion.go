package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-telegraph/internal/assets"
	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// shellNames lists the supported shells in display order.
var shellNames = []string{
	string(ShellBash),
	string(ShellZsh),
	string(ShellFish),
	string(ShellPowerShell),
}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --format
	Short    string   // -f (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"format": {Values: []string{"text", "html", "json"}},
	"style":  {Values: assets.ListStyles()},
	"fields": {Values: []string{"short_name", "author_name", "author_url", "auth_url", "page_count"}},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {FileGlob: "*.html"},

	// Directory flags
	"assets": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	publishFS, _ := newPublishFlagSet()
	pageFS, _ := newPageFlagSet()
	pagesFS, _ := newPagesFlagSet()
	viewsFS, _ := newViewsFlagSet()
	accountFS, _ := newAccountFlagSet()
	signupFS, _ := newSignupFlagSet()
	editAccountFS, _ := newEditAccountFlagSet()
	revokeFS, _ := newCommonOnlyFlagSet("revoke")
	uploadFS, _ := newCommonOnlyFlagSet("upload")
	previewFS, _ := newPreviewFlagSet()
	doctorFS, _ := newDoctorFlagSet()

	return []commandDef{
		{
			Name:        "publish",
			Desc:        "Publish Markdown or HTML files as Telegraph pages",
			Flags:       extractFlagsFromFlagSet(publishFS),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown,*.html",
		},
		{
			Name:  "page",
			Desc:  "Fetch a page and print it",
			Flags: extractFlagsFromFlagSet(pageFS),
		},
		{
			Name:  "pages",
			Desc:  "List pages owned by the account",
			Flags: extractFlagsFromFlagSet(pagesFS),
		},
		{
			Name:  "views",
			Desc:  "Show view counts for a page",
			Flags: extractFlagsFromFlagSet(viewsFS),
		},
		{
			Name:  "account",
			Desc:  "Show account information",
			Flags: extractFlagsFromFlagSet(accountFS),
		},
		{
			Name:  "signup",
			Desc:  "Create a Telegraph account",
			Flags: extractFlagsFromFlagSet(signupFS),
		},
		{
			Name:  "edit-account",
			Desc:  "Update account profile fields",
			Flags: extractFlagsFromFlagSet(editAccountFS),
		},
		{
			Name:  "revoke",
			Desc:  "Revoke and replace the access token",
			Flags: extractFlagsFromFlagSet(revokeFS),
		},
		{
			Name:        "upload",
			Desc:        "Upload media files to Telegraph",
			Flags:       extractFlagsFromFlagSet(uploadFS),
			TakesFiles:  true,
			FilePattern: "*.jpg,*.jpeg,*.png,*.gif,*.mp4",
		},
		{
			Name:        "preview",
			Desc:        "Render a local HTML preview of a Markdown file",
			Flags:       extractFlagsFromFlagSet(previewFS),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:  "doctor",
			Desc:  "Check configuration and environment",
			Flags: extractFlagsFromFlagSet(doctorFS),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
		},
	}
}

// commandNames returns the registry's command names in order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return names
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// flagWords renders a flag list as the space-separated words a shell
// offers when the user types a dash.
func flagWords(flags []flagDef) string {
	var words []string
	for _, fd := range flags {
		words = append(words, "--"+fd.Long)
		if fd.Short != "" {
			words = append(words, "-"+fd.Short)
		}
	}
	return strings.Join(words, " ")
}

// valueFlags returns the flags that complete to something concrete
// (enum values, files, or directories), deduplicated by long name.
// Flag meanings never differ between commands, so the value rules can
// be shared.
func valueFlags(cmds []commandDef) []flagDef {
	seen := make(map[string]bool)
	var flags []flagDef
	for _, c := range cmds {
		for _, fd := range c.Flags {
			if seen[fd.Long] {
				continue
			}
			switch fd.Type {
			case flagEnum, flagFile, flagDir:
				seen[fd.Long] = true
				flags = append(flags, fd)
			}
		}
	}
	return flags
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer) error {
	cmds := getCommands()
	names := strings.Join(commandNames(cmds), " ")

	var b strings.Builder
	b.WriteString("# bash completion for telegraph\n")
	b.WriteString("_telegraph_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	fmt.Fprintf(&b, "    local commands=\"%s\"\n\n", names)

	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, fd := range valueFlags(cmds) {
		pattern := "--" + fd.Long
		if fd.Short != "" {
			pattern += "|-" + fd.Short
		}
		fmt.Fprintf(&b, "        %s)\n", pattern)
		switch fd.Type {
		case flagEnum:
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(fd.Values, " "))
		case flagFile:
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
		case flagDir:
			b.WriteString("            COMPREPLY=( $(compgen -d -- \"$cur\") )\n")
		}
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    local cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	b.WriteString("        case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", flagWords(c.Flags))
		b.WriteString("            ;;\n")
	}
	b.WriteString("        esac\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "completion":
			b.WriteString("        completion)\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(shellNames, " "))
			b.WriteString("            ;;\n")
		case c.Name == "help":
			b.WriteString("        help)\n")
			b.WriteString("            COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
			b.WriteString("            ;;\n")
		case c.TakesFiles:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
			b.WriteString("            ;;\n")
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _telegraph_completions telegraph\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshGlob converts a comma-separated glob list to one zsh pattern.
func zshGlob(globs string) string {
	parts := strings.Split(globs, ",")
	if len(parts) == 1 {
		return parts[0]
	}
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshFlagSpec renders one flag as a zsh _arguments spec.
func zshFlagSpec(fd flagDef) string {
	var action string
	switch fd.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":value:(" + strings.Join(fd.Values, " ") + ")"
	case flagFile:
		action = `:file:_files -g "` + zshGlob(fd.FileGlob) + `"`
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value:"
	}

	if fd.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'",
			fd.Short, fd.Long, fd.Short, fd.Long, fd.Desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", fd.Long, fd.Desc, action)
}

// zshCommandSpecs renders a command's flag and argument specs.
func zshCommandSpecs(c commandDef, names []string) []string {
	var specs []string
	for _, fd := range c.Flags {
		specs = append(specs, zshFlagSpec(fd))
	}
	switch {
	case c.Name == "completion":
		specs = append(specs, fmt.Sprintf("'1:shell:(%s)'", strings.Join(shellNames, " ")))
	case c.Name == "help":
		specs = append(specs, fmt.Sprintf("'1:command:(%s)'", strings.Join(names, " ")))
	case c.TakesFiles:
		specs = append(specs, fmt.Sprintf(`'*:file:_files -g "%s"'`, zshGlob(c.FilePattern)))
	}
	return specs
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer) error {
	cmds := getCommands()
	names := commandNames(cmds)

	var b strings.Builder
	b.WriteString("#compdef telegraph\n")
	b.WriteString("# zsh completion for telegraph\n\n")
	b.WriteString("_telegraph() {\n")
	b.WriteString("    local context state state_descr line\n")
	b.WriteString("    typeset -A opt_args\n\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")
	b.WriteString("    _arguments -C \\\n")
	b.WriteString("        '1: :->command' \\\n")
	b.WriteString("        '*:: :->args'\n\n")
	b.WriteString("    case \"$state\" in\n")
	b.WriteString("    command)\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    args)\n")
	b.WriteString("        case \"$words[1]\" in\n")
	for _, c := range cmds {
		specs := zshCommandSpecs(c, names)
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments \\\n")
		for i, spec := range specs {
			if i < len(specs)-1 {
				fmt.Fprintf(&b, "                %s \\\n", spec)
			} else {
				fmt.Fprintf(&b, "                %s\n", spec)
			}
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        esac\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_telegraph \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// fishFlagSpec renders one flag as a fish complete invocation.
func fishFlagSpec(cmd string, fd flagDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c telegraph -n '__fish_telegraph_using_command %s'", cmd)
	if fd.Short != "" {
		fmt.Fprintf(&b, " -s %s", fd.Short)
	}
	fmt.Fprintf(&b, " -l %s", fd.Long)
	switch fd.Type {
	case flagBool:
		// No argument.
	case flagEnum:
		fmt.Fprintf(&b, " -x -a '%s'", strings.Join(fd.Values, " "))
	case flagDir:
		b.WriteString(" -r -a '(__fish_complete_directories)'")
	default:
		b.WriteString(" -r")
	}
	fmt.Fprintf(&b, " -d '%s'\n", fd.Desc)
	return b.String()
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	cmds := getCommands()
	names := strings.Join(commandNames(cmds), " ")

	var b strings.Builder
	b.WriteString("# fish completion for telegraph\n\n")
	b.WriteString("function __fish_telegraph_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_telegraph_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c telegraph -f -n __fish_telegraph_needs_command -a %s -d '%s'\n", c.Name, c.Desc)
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_telegraph_using_command %s'", c.Name)
		switch {
		case c.Name == "completion":
			fmt.Fprintf(&b, "complete -c telegraph -f -n %s -a '%s'\n", cond, strings.Join(shellNames, " "))
		case c.Name == "help":
			fmt.Fprintf(&b, "complete -c telegraph -f -n %s -a '%s'\n", cond, names)
		case !c.TakesFiles:
			// Positional arguments are not files; stop fish from
			// offering them.
			fmt.Fprintf(&b, "complete -c telegraph -f -n %s\n", cond)
		}
		for _, fd := range c.Flags {
			b.WriteString(fishFlagSpec(c.Name, fd))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, strings.TrimRight(b.String(), "\n")+"\n")
	return err
}

// generatePowerShell writes a PowerShell completion script. Flags and
// command names only; PowerShell offers files on its own.
func generatePowerShell(w io.Writer) error {
	cmds := getCommands()

	var b strings.Builder
	b.WriteString("# powershell completion for telegraph\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName telegraph -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = @{\n")
	for _, c := range cmds {
		var words []string
		for _, fd := range c.Flags {
			words = append(words, "'--"+fd.Long+"'")
			if fd.Short != "" {
				words = append(words, "'-"+fd.Short+"'")
			}
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(words, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $tokens = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n\n")
	b.WriteString("    if ($tokens.Count -le 1 -or ($tokens.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.Keys | Sort-Object | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = $tokens[1]\n")
	b.WriteString("    if ($commands.ContainsKey($cmd)) {\n")
	b.WriteString("        $commands[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: telegraph completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(telegraph completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(telegraph completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    telegraph completion fish > ~/.config/fish/completions/telegraph.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    telegraph completion powershell | Out-String | Invoke-Expression")
}
