// SPDX-License-Identifier: MPL-2.0

package module

import (
	"context"
	"io"
	"os"
)

type (
	// Module is a unit of dispatchable work. Run receives the arguments that
	// followed the module name on the command line and returns the process
	// exit status.
	//
	// A Module instance is created for a single invocation and released after
	// Run returns. Modules that hold resources may also implement io.Closer;
	// Close is then called once, after Run.
	Module interface {
		Run(ctx context.Context, params []string) int
	}

	// Factory creates a new, independent Module instance.
	Factory func() Module

	// Streams are the standard streams a module should use instead of the
	// os package globals, so that the dispatcher and tests can redirect them.
	Streams struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	streamsContextKey struct{}
)

// ProcessStreams returns the process's standard streams.
func ProcessStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// WithStreams attaches the streams a module should use to ctx.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsContextKey{}, s)
}

// StreamsFromContext returns the streams attached by WithStreams. Missing
// streams fall back to the process's standard streams.
func StreamsFromContext(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsContextKey{}).(Streams)
	proc := ProcessStreams()
	if s.Stdin == nil {
		s.Stdin = proc.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = proc.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = proc.Stderr
	}
	return s
}
