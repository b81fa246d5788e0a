// SPDX-License-Identifier: MPL-2.0

// Package mymod is the placeholder module. It does nothing and succeeds.
package mymod

import (
	"context"

	"github.com/invowk/modrun/pkg/module"
)

// Registrar registers the module as "mymod".
var Registrar = module.For[Module]("mymod", module.Meta{
	Description: "My self-registering module",
})

// Module is a no-op module.
type Module struct{}

// Run ignores its arguments and returns 0.
func (m *Module) Run(context.Context, []string) int { return 0 }
