// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/invowk/modrun/internal/issue"
	"github.com/invowk/modrun/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// newRootCommand builds the cobra command for one invocation of a. The
// command has no subcommands: the first positional argument is the module
// name and everything after it is passed through.
func newRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "modrun [flags] <module> [args...]",
		Short:         "Run a compiled-in module by name",
		Args:          cobra.ArbitraryArgs,
		Version:       getVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd.Context(), args)
		},
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate("modrun {{.Version}}\n")

	flags := root.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&a.configFile, "config", "", "config file (default is <user config dir>/modrun/config.cue)")
	flags.BoolVarP(&a.verboseFlag, "verbose", "v", false, "enable verbose output")

	// Help output needs the configuration and registry, which may fail; the
	// listing is printed by Run after cobra returns.
	root.SetHelpFunc(func(*cobra.Command, []string) {
		a.helpRequested = true
	})
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{
			Code: types.ExitUsage,
			Err: issue.NewErrorContext().
				WithOperation("parse dispatcher flags").
				WithSuggestion("Dispatcher flags go before the module name: " + usageLine).
				WithSuggestion("Run 'modrun --help' to list the available modules and flags").
				WithIssue(issue.UsageErrorId).
				Wrap(err).
				BuildError(),
		}
	})

	return root
}

// runRoot is the root command's RunE.
func (a *App) runRoot(ctx context.Context, args []string) error {
	if err := a.prepare(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		a.printListing(a.stderr)
		return nil
	}

	code, err := a.Dispatch(ctx, args[0], args[1:])
	if err != nil || !code.IsSuccess() {
		return &ExitError{Code: code, Err: err}
	}
	return nil
}

// Execute runs modrun with the process arguments and exits with the
// resulting status. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	app := NewApp(Dependencies{SetDefaultLogger: true})
	code := app.Run(ctx, os.Args[1:])

	stop()
	os.Exit(int(code))
}
