// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	if ModuleNotFoundId != 1 {
		t.Errorf("ModuleNotFoundId = %d, want 1", ModuleNotFoundId)
	}

	seen := make(map[Id]bool)
	for _, id := range []Id{ModuleNotFoundId, RegistryIntegrityId, UsageErrorId, ConfigLoadFailedId} {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(ModuleNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Unknown module") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
	if !strings.Contains(out, "modrun --help") {
		t.Errorf("Render() output missing code block:\n%s", out)
	}
}
