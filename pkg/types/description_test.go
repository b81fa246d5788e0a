// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestDescriptionText_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desc    DescriptionText
		wantErr bool
	}{
		{"simple text", DescriptionText("My self-registering module"), false},
		{"multiline", DescriptionText("Line 1\nLine 2"), false},
		{"empty is valid (zero value)", DescriptionText(""), false},
		{"whitespace only is invalid", DescriptionText("   "), true},
		{"tab only is invalid", DescriptionText("\t"), true},
		{"newline only is invalid", DescriptionText("\n"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.desc.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("DescriptionText(%q).Validate() error = %v, wantErr %v", tt.desc, err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !errors.Is(err, ErrInvalidDescriptionText) {
				t.Errorf("error should wrap ErrInvalidDescriptionText, got: %v", err)
			}
			var dtErr *InvalidDescriptionTextError
			if !errors.As(err, &dtErr) {
				t.Errorf("error should be *InvalidDescriptionTextError, got: %T", err)
			}
		})
	}
}

func TestDescriptionText_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc DescriptionText
		want string
	}{
		{"single line", "Print arguments", "Print arguments"},
		{"trims surrounding space", "  Print arguments  ", "Print arguments"},
		{"first line of many", "Print arguments\nSecond line", "Print arguments"},
		{"skips leading blank lines", "\n\n  Run a script\nmore", "Run a script"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.desc.Summary(); got != tt.want {
				t.Errorf("DescriptionText(%q).Summary() = %q, want %q", tt.desc, got, tt.want)
			}
		})
	}
}

func TestDescriptionText_String(t *testing.T) {
	t.Parallel()
	d := DescriptionText("Run the build")
	if d.String() != "Run the build" {
		t.Errorf("DescriptionText.String() = %q, want %q", d.String(), "Run the build")
	}
}
