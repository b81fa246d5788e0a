// SPDX-License-Identifier: MPL-2.0

package module

import "sync"

var (
	defaultRegistry = sync.OnceValue(NewRegistry)

	installOnce sync.Once
	installErr  error
)

// Default returns the process-wide registry, creating it on first use.
// It exists before any registration is attempted, whatever the package
// initialization order.
func Default() *Registry {
	return defaultRegistry()
}

// Install applies regs to the Default registry and seals it. Only the first
// call has an effect; every call returns the first call's error. The
// registry is sealed even when a registration fails, so a broken registry
// can be inspected but not patched up afterwards.
func Install(regs ...Registrar) error {
	installOnce.Do(func() {
		r := Default()
		installErr = RegisterAll(r, regs...)
		r.Seal()
	})
	return installErr
}
