// SPDX-License-Identifier: MPL-2.0

// Package all lists every module compiled into the modrun binary.
//
// To add a module, create a package under internal/modules that exports a
// module.Registrar and append it to Registrars.
package all

import (
	"github.com/invowk/modrun/internal/modules/echo"
	"github.com/invowk/modrun/internal/modules/mymod"
	"github.com/invowk/modrun/internal/modules/vsh"
	"github.com/invowk/modrun/pkg/module"
)

// Registrars returns the registrar of every compiled-in module, in
// registration order.
func Registrars() []module.Registrar {
	return []module.Registrar{
		mymod.Registrar,
		echo.Registrar,
		vsh.Registrar,
	}
}

// Install registers all modules into the process-wide registry and seals it.
func Install() error {
	return module.Install(Registrars()...)
}
