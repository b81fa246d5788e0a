// SPDX-License-Identifier: MPL-2.0

package module

import (
	"errors"
	"testing"
)

func TestName_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   Name
		wantErr bool
	}{
		{"simple", "mymod", false},
		{"with digits", "mod2", false},
		{"with dash", "my-mod", false},
		{"with underscore", "my_mod", false},
		{"single letter", "m", false},
		{"empty", "", true},
		{"leading dash looks like a flag", "-v", true},
		{"leading digit", "2mod", true},
		{"uppercase", "MyMod", true},
		{"space", "my mod", true},
		{"dot", "my.mod", true},
		{"non-ascii", "modulé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Name(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("error should wrap ErrInvalidName, got: %v", err)
			}
		})
	}
}
