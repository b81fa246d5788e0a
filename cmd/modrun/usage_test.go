// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"slices"
	"testing"

	"github.com/invowk/modrun/pkg/module"
)

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", nil, nil},
		{"question mark alone", []string{"-?"}, []string{"--help"}},
		{"question mark after flag", []string{"-v", "-?"}, []string{"-v", "--help"}},
		{"config value is skipped", []string{"--config", "-?", "-?"}, []string{"--config", "-?", "--help"}},
		{"module args untouched", []string{"echo", "-?"}, []string{"--", "echo", "-?"}},
		{"double dash before module", []string{"-v", "echo", "x"}, []string{"-v", "--", "echo", "x"}},
		{"double dash after config value", []string{"--config", "a.cue", "echo"}, []string{"--config", "a.cue", "--", "echo"}},
		{"builtin command name is a module", []string{"__complete", "m"}, []string{"--", "__complete", "m"}},
		{"after double dash untouched", []string{"--", "-?"}, []string{"--", "-?"}},
		{"help flags untouched", []string{"-h"}, []string{"-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeArgs(tt.args)
			if !slices.Equal(got, tt.want) {
				t.Errorf("normalizeArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestNormalizeArgs_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	args := []string{"-?"}
	normalizeArgs(args)
	if args[0] != "-?" {
		t.Errorf("input mutated: %q", args)
	}

	args = []string{"echo", "x"}
	normalizeArgs(args)
	if args[0] != "echo" || len(args) != 2 {
		t.Errorf("input mutated: %q", args)
	}
}

func TestSuggestNames(t *testing.T) {
	t.Parallel()

	candidates := []module.Name{"echo", "mymod", "vsh", "vsx", "build", "builds"}

	tests := []struct {
		input string
		want  []module.Name
	}{
		{"ehco", []module.Name{"echo"}},
		{"mymd", []module.Name{"mymod"}},
		{"vs", []module.Name{"vsh", "vsx"}},
		{"buil", []module.Name{"build", "builds"}},
		{"completely-different", []module.Name{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := suggestNames(tt.input, candidates)
			if !slices.Equal(got, tt.want) {
				t.Errorf("suggestNames(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuggestNames_Limit(t *testing.T) {
	t.Parallel()

	got := suggestNames("ab", []module.Name{"aa", "ac", "ad", "ae", "af"})
	if len(got) != maxSuggestions {
		t.Errorf("got %d suggestions, want %d", len(got), maxSuggestions)
	}
}

func TestJoinOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b" or "c"`},
	}
	for _, tt := range tests {
		if got := joinOr(tt.items); got != tt.want {
			t.Errorf("joinOr(%q) = %q, want %q", tt.items, got, tt.want)
		}
	}
}
