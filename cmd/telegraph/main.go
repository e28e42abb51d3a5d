package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// hasVerboseFlag reports whether args ask for verbose output. Runs
// before any command has parsed its flags, so it scans raw args.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args[1:] {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to the requested command and returns the exit
// code. Commands run under a context cancelled by SIGINT/SIGTERM so
// in-flight requests stop cleanly.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	switch args[1] {
	case "publish":
		return fail(env, runPublish(ctx, args[2:], env))
	case "page":
		return fail(env, runPage(ctx, args[2:], env))
	case "pages":
		return fail(env, runPages(ctx, args[2:], env))
	case "views":
		return fail(env, runViews(ctx, args[2:], env))
	case "account":
		return fail(env, runAccount(ctx, args[2:], env))
	case "signup":
		return fail(env, runSignup(ctx, args[2:], env))
	case "edit-account":
		return fail(env, runEditAccount(ctx, args[2:], env))
	case "revoke":
		return fail(env, runRevoke(ctx, args[2:], env))
	case "upload":
		return fail(env, runUpload(ctx, args[2:], env))
	case "preview":
		return fail(env, runPreview(ctx, args[2:], env))
	case "doctor":
		return runDoctorCmd(ctx, args[2:], env)
	case "completion":
		return fail(env, runCompletion(args[2:], env))
	case "version":
		fmt.Fprintf(env.Stdout, "telegraph %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[2:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// fail prints err and maps it to an exit code; nil is success. A
// --help request is also success: pflag already printed usage.
func fail(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, err)
	return exitCodeFor(err)
}
