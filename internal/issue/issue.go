// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

const (
	// ModuleNotFoundId is reported when the requested module is not registered.
	ModuleNotFoundId Id = iota + 1
	// RegistryIntegrityId is reported when compiled-in modules fail to register.
	RegistryIntegrityId
	// UsageErrorId is reported for malformed dispatcher invocations.
	UsageErrorId
	// ConfigLoadFailedId is reported when a configuration file cannot be used.
	ConfigLoadFailedId
)

// StyleAuto picks a dark or light glamour style from the terminal background.
const StyleAuto = "auto"

type (
	// Id identifies a catalog issue. The zero value means "no issue".
	Id int

	// MarkdownMsg is Markdown guidance text.
	MarkdownMsg string

	// Issue is one catalog entry.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

// Id returns the issue's identifier.
func (i *Issue) Id() Id { return i.id }

// Render renders the guidance with the named glamour style ("dark",
// "light", "notty", ...) or StyleAuto.
func (i *Issue) Render(style string) (string, error) {
	return render(string(i.mdMsg), style)
}

var (
	render = func(md, style string) (string, error) {
		if style != StyleAuto {
			return glamour.Render(md, style)
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			return "", err
		}
		return r.Render(md)
	}

	moduleNotFoundIssue = &Issue{
		id: ModuleNotFoundId,
		mdMsg: `
# Unknown module

The name you passed is not one of the modules compiled into this binary.

## Things you can try
- List the available modules:
~~~
$ modrun --help
~~~
- Check for typos: module names are lowercase and match exactly.
- If you meant an alias, make sure it is defined under ` + "`aliases`" + ` in your config file.`,
	}

	registryIntegrityIssue = &Issue{
		id: RegistryIntegrityId,
		mdMsg: `
# The module registry is broken

Two modules claim the same name, or a module was declared with an invalid
name or without a factory. This is a build problem, not a usage problem.

## Things you can try
- Rename one of the conflicting modules in its package's ` + "`Registrar`" + `.
- Make sure every module appears only once in ` + "`internal/modules/all`" + `.`,
	}

	usageErrorIssue = &Issue{
		id: UsageErrorId,
		mdMsg: `
# Invalid invocation

Dispatcher flags must come before the module name; everything after the
module name is passed to the module unchanged.

~~~
$ modrun [--config FILE] [-v] <module> [args...]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

modrun continued with its built-in defaults.

## Search locations (in order of precedence)
1. The file passed with ` + "`--config`" + `
2. ` + "`<user config dir>/modrun/config.cue`" + ` or ` + "`config.toml`" + `
3. ` + "`./modrun.cue`" + ` or ` + "`./modrun.toml`" + `

## Things you can try
- Check the file's CUE or TOML syntax.
- Compare the keys with the documented ones: ` + "`ui`, `log`, `aliases`" + `.`,
	}

	issues = map[Id]*Issue{
		moduleNotFoundIssue.Id():    moduleNotFoundIssue,
		registryIntegrityIssue.Id(): registryIntegrityIssue,
		usageErrorIssue.Id():        usageErrorIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

// Get returns the issue for id, or nil if there is none.
func Get(id Id) *Issue {
	return issues[id]
}
