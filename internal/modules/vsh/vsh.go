// SPDX-License-Identifier: MPL-2.0

// Package vsh provides a module that runs a POSIX shell snippet in the
// embedded mvdan/sh interpreter, so scripts behave the same on every host.
package vsh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/invowk/modrun/pkg/module"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const (
	exitMissingScript = 1
	exitParseError    = 2
)

// Registrar registers the module as "vsh".
var Registrar = module.For[Module]("vsh", module.Meta{
	Description: "Run a POSIX shell snippet in the embedded interpreter",
	Usage:       "<script> [args...]",
})

// Module runs params[0] as a shell program with params[1:] as $1, $2, ...
type Module struct{}

// Run parses and executes the script and returns its exit status.
func (m *Module) Run(ctx context.Context, params []string) int {
	streams := module.StreamsFromContext(ctx)

	if len(params) == 0 || strings.TrimSpace(params[0]) == "" {
		fmt.Fprintln(streams.Stderr, "usage: vsh <script> [args...]")
		return exitMissingScript
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(params[0]), "vsh")
	if err != nil {
		fmt.Fprintf(streams.Stderr, "vsh: %v\n", err)
		return exitParseError
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(streams.Stdin, streams.Stdout, streams.Stderr),
	}
	// "--" stops interp.Params from reading script arguments such as "-e" as shell options.
	if len(params) > 1 {
		opts = append(opts, interp.Params(append([]string{"--"}, params[1:]...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		fmt.Fprintf(streams.Stderr, "vsh: failed to create interpreter: %v\n", err)
		return 1
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return int(status)
		}
		slog.Debug("vsh script failed", "error", err)
		fmt.Fprintf(streams.Stderr, "vsh: %v\n", err)
		return 1
	}
	return 0
}
