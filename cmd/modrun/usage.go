// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/invowk/modrun/pkg/module"
)

const (
	usageLine = "modrun [--config FILE] [-v] <module> [args...]"

	// maxSuggestionDistance is the largest edit distance offered as "did you mean".
	maxSuggestionDistance = 2
	maxSuggestions        = 3
)

// showListing prepares the App and prints the usage text and module listing.
func (a *App) showListing(ctx context.Context) error {
	if err := a.prepare(ctx); err != nil {
		return err
	}
	a.printListing(a.stderr)
	return nil
}

// printListing writes the usage line followed by one "  - <name>: <description>"
// line per registered module, sorted by name. Verbose mode appends each
// module's argument synopsis.
func (a *App) printListing(w io.Writer) {
	fmt.Fprintln(w, a.styles.title.Render("Usage:")+" "+usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.styles.title.Render("Modules:"))

	entries := a.Registry.List()
	if len(entries) == 0 {
		fmt.Fprintln(w, a.styles.hint.Render("  (no modules registered)"))
	}
	for _, e := range entries {
		line := "  - " + a.styles.module.Render(string(e.Name)) + ": " + a.styles.description.Render(e.Description.Summary())
		if a.verbose && e.Usage != "" {
			line += a.styles.hint.Render(fmt.Sprintf(" (usage: %s %s)", e.Name, e.Usage))
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, a.styles.title.Render("Flags:"))
	fmt.Fprintln(w, "      --config FILE   config file (default is <user config dir>/modrun/config.cue)")
	fmt.Fprintln(w, "  -h, --help          list the available modules")
	fmt.Fprintln(w, "  -v, --verbose       enable verbose output")
	fmt.Fprintln(w, "      --version       print the version")
}

// normalizeArgs rewrites "-?" to "--help" in the dispatcher's own flags and
// inserts "--" before the module name, so cobra never resolves the name to
// one of its built-in subcommands. Arguments after the module name are left
// untouched.
func normalizeArgs(args []string) []string {
	out := slices.Clone(args)
	for i := 0; i < len(out); i++ {
		switch arg := out[i]; {
		case arg == "-?":
			out[i] = "--help"
		case arg == "--config":
			i++
		case arg == "--":
			return out
		case !strings.HasPrefix(arg, "-"):
			return slices.Insert(out, i, "--")
		}
	}
	return out
}

// suggestNames returns up to maxSuggestions candidates within
// maxSuggestionDistance edits of name, closest first.
func suggestNames(name string, candidates []module.Name) []module.Name {
	type scored struct {
		name     module.Name
		distance int
	}

	var matches []scored
	for _, c := range candidates {
		if d := levenshtein.Distance(name, string(c), nil); d <= maxSuggestionDistance {
			matches = append(matches, scored{name: c, distance: d})
		}
	}
	slices.SortFunc(matches, func(a, b scored) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	names := make([]module.Name, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

// joinOr joins quoted items as `"a"`, `"a" or "b"`, `"a", "b" or "c"`.
func joinOr(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = `"` + s + `"`
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
