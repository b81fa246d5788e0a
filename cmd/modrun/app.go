// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invowk/modrun/internal/config"
	"github.com/invowk/modrun/internal/issue"
	"github.com/invowk/modrun/internal/logging"
	"github.com/invowk/modrun/internal/modules/all"
	"github.com/invowk/modrun/pkg/module"
	"github.com/invowk/modrun/pkg/types"
)

// ErrUnknownModule is the sentinel error wrapped by UnknownModuleError.
var ErrUnknownModule = errors.New("unknown module")

type (
	// App is the composition root of one modrun invocation. It owns the
	// streams, the configuration and the registry that dispatch reads from.
	App struct {
		Config   config.Provider
		Registry *module.Registry

		install          func() error
		stdin            io.Reader
		stdout           io.Writer
		stderr           io.Writer
		workDir          string
		setDefaultLogger bool

		// Per-invocation state, filled by flags and setup.
		configFile    string
		verboseFlag   bool
		helpRequested bool
		prepared      bool
		prepareErr    error
		cfg           *config.Config
		verbose       bool
		logger        *slog.Logger
		styles        styles
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		// Config loads the configuration. Defaults to config.NewProvider().
		Config config.Provider
		// Registry is the registry modules are dispatched from. Defaults to
		// module.Default().
		Registry *module.Registry
		// Install runs the registration phase. It defaults to all.Install
		// when Registry is also nil; a caller-supplied Registry is used as is.
		Install func() error
		Stdin   io.Reader
		Stdout  io.Writer
		Stderr  io.Writer
		// WorkDir is where modrun.cue / modrun.toml are looked up.
		WorkDir string
		// SetDefaultLogger installs the invocation logger as slog.Default.
		SetDefaultLogger bool
	}

	// UnknownModuleError is returned when a name resolves to no registered
	// module. Suggestions holds registered names that are close to Name.
	UnknownModuleError struct {
		Name        string
		Suggestions []module.Name
	}
)

// Error implements the error interface.
func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Name)
}

// Unwrap returns ErrUnknownModule so callers can use errors.Is for programmatic detection.
func (e *UnknownModuleError) Unwrap() error { return ErrUnknownModule }

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	proc := module.ProcessStreams()
	if deps.Stdin == nil {
		deps.Stdin = proc.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = proc.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = proc.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		deps.Registry = module.Default()
		if deps.Install == nil {
			deps.Install = all.Install
		}
	}

	return &App{
		Config:           deps.Config,
		Registry:         deps.Registry,
		install:          deps.Install,
		stdin:            deps.Stdin,
		stdout:           deps.Stdout,
		stderr:           deps.Stderr,
		workDir:          deps.WorkDir,
		setDefaultLogger: deps.SetDefaultLogger,
		styles:           newStyles(deps.Stderr, config.ColorSchemeAuto),
		logger:           slog.New(slog.DiscardHandler),
		cfg:              config.DefaultConfig(),
	}
}

// Run executes one invocation. args excludes the program name. The returned
// status is what the process should exit with.
func (a *App) Run(ctx context.Context, args []string) types.ExitCode {
	root := newRootCommand(a)
	root.SetArgs(normalizeArgs(args))

	err := root.ExecuteContext(ctx)
	if err == nil && a.helpRequested {
		err = a.showListing(ctx)
	}
	return a.exitCode(err)
}

// Dispatch resolves name, runs the module with params and returns its exit
// status. An unknown name yields ExitFailure and an *UnknownModuleError
// without constructing any module.
func (a *App) Dispatch(ctx context.Context, name string, params []string) (types.ExitCode, error) {
	entry, ok := a.resolve(name)
	if !ok {
		return types.ExitFailure, &UnknownModuleError{Name: name, Suggestions: suggestNames(name, a.Registry.Names())}
	}

	logger := a.logger.With("module", entry.Name)
	logger.Debug("Dispatching module.", "requested", name, "params", len(params))

	m := entry.New()
	if closer, ok := m.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("Module cleanup failed.", "error", err)
			}
		}()
	}

	ctx = module.WithStreams(ctx, module.Streams{Stdin: a.stdin, Stdout: a.stdout, Stderr: a.stderr})
	code := types.ExitCode(m.Run(ctx, params))
	if err := code.Validate(); err != nil {
		logger.Debug("Module returned a non-portable exit status.", "status", int(code), "error", err)
	}
	logger.Debug("Module finished.", "status", int(code))
	return code, nil
}

// resolve looks name up in the registry and, failing that, follows one
// configured alias.
func (a *App) resolve(name string) (module.Entry, bool) {
	if entry, ok := a.Registry.Lookup(module.Name(name)); ok {
		return entry, true
	}
	target, ok := a.cfg.ResolveAlias(name)
	if !ok {
		return module.Entry{}, false
	}
	a.logger.Debug("Resolved module alias.", "alias", name, "target", target)
	return a.Registry.Lookup(target)
}

// prepare loads the configuration, builds the logger and styles, and runs
// the registration phase. It runs once per App; later calls return the
// first result.
func (a *App) prepare(ctx context.Context) error {
	if a.prepared {
		return a.prepareErr
	}
	a.prepared = true

	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configFile, WorkDir: a.workDir})
	if err != nil {
		// Config problems never block dispatch: warn and continue with defaults.
		fmt.Fprintln(a.stderr, a.styles.warning.Render("Warning: ")+formatErrorForDisplay(err, a.verboseFlag))
		a.renderIssue(err, a.verboseFlag)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg
	a.verbose = a.verboseFlag || cfg.UI.Verbose
	a.styles = newStyles(a.stderr, cfg.UI.ColorScheme)

	attrs := []any{"invocation", uuid.NewString()}
	if a.setDefaultLogger {
		a.logger = logging.Setup(a.stderr, cfg.Log, a.verbose, attrs...)
	} else {
		a.logger = logging.New(a.stderr, cfg.Log, a.verbose, attrs...)
	}

	if a.install != nil {
		if err := a.install(); err != nil {
			a.prepareErr = &ExitError{
				Code: types.ExitSoftware,
				Err: issue.NewErrorContext().
					WithOperation("initialize module registry").
					WithSuggestion("Two modules may share a name, or a module is declared with an invalid name").
					WithIssue(issue.RegistryIntegrityId).
					Wrap(err).
					BuildError(),
			}
			return a.prepareErr
		}
	}
	a.logger.Debug("Module registry ready.", "modules", a.Registry.Len(), "sealed", a.Registry.Sealed())
	return nil
}

// exitCode renders err, if any, and maps it to a process exit status.
func (a *App) exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			a.renderError(exitErr.Err)
		}
		return exitErr.Code
	}
	a.renderError(err)
	return types.ExitFailure
}

// renderError prints err to stderr with any suggestions. Verbose mode adds
// the error chain and the matching issue catalog guidance.
func (a *App) renderError(err error) {
	fmt.Fprintln(a.stderr, a.styles.err.Render("Error: ")+formatErrorForDisplay(err, a.verbose))

	var unknown *UnknownModuleError
	if errors.As(err, &unknown) {
		if len(unknown.Suggestions) > 0 {
			names := make([]string, len(unknown.Suggestions))
			for i, s := range unknown.Suggestions {
				names[i] = a.styles.module.Render(string(s))
			}
			fmt.Fprintf(a.stderr, "Did you mean %s?\n", joinOr(names))
		}
		fmt.Fprintln(a.stderr, a.styles.hint.Render("Run 'modrun --help' to list the available modules."))
		if a.verbose {
			a.renderCatalog(issue.ModuleNotFoundId)
		}
		return
	}
	a.renderIssue(err, a.verbose)
}

// renderIssue prints the catalog guidance linked to an ActionableError.
func (a *App) renderIssue(err error, verbose bool) {
	var ae *issue.ActionableError
	if verbose && errors.As(err, &ae) && ae.Issue != 0 {
		a.renderCatalog(ae.Issue)
	}
}

func (a *App) renderCatalog(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(a.styles.glamourStyle)
	if err != nil {
		a.logger.Warn("Failed to render issue guidance.", "issue", int(id), "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
