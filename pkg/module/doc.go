// SPDX-License-Identifier: MPL-2.0

// Package module defines the dispatchable Module capability and the registry
// that maps module names to factories.
//
// Module packages declare themselves with a Registrar built by For:
//
//	var Registrar = module.For[MyModule]("mymod", module.Meta{
//		Description: "My self-registering module",
//	})
//
// The Registrar is inert until it is applied to a Registry. The binary
// collects every compiled-in Registrar in one ordered list and hands it to
// Install, which applies the list to the process-wide Default registry once
// and then seals it. Sealing ends the registration phase: from then on the
// registry is read-only and further registrations fail with ErrRegistrySealed.
//
// Duplicate names are rejected with ErrDuplicateModule. The first
// registration wins and the registry is left unchanged.
package module
