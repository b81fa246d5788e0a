// SPDX-License-Identifier: MPL-2.0

// Package echo provides a module that prints its arguments.
package echo

import (
	"context"
	"fmt"
	"strings"

	"github.com/invowk/modrun/pkg/module"
)

// Registrar registers the module as "echo".
var Registrar = module.For[Module]("echo", module.Meta{
	Description: "Print arguments to standard output",
	Usage:       "[-n] [args...]",
})

// Module writes its arguments separated by single spaces. A leading "-n"
// suppresses the trailing newline.
type Module struct{}

// Run prints params and returns 0, or 1 if the output cannot be written.
func (m *Module) Run(ctx context.Context, params []string) int {
	streams := module.StreamsFromContext(ctx)

	newline := true
	if len(params) > 0 && params[0] == "-n" {
		newline = false
		params = params[1:]
	}

	out := strings.Join(params, " ")
	if newline {
		out += "\n"
	}
	if _, err := fmt.Fprint(streams.Stdout, out); err != nil {
		fmt.Fprintf(streams.Stderr, "echo: %v\n", err)
		return 1
	}
	return 0
}
