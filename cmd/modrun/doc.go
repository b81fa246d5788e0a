// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the modrun command line: it resolves a module name
// against the module registry, runs the module with the remaining arguments
// and exits with the module's status.
//
//	modrun                      list the available modules
//	modrun --help | -h | -?     same as above
//	modrun <module> [args...]   run a module
//
// Dispatcher flags (--config, --verbose, --version) are only recognized
// before the module name. Everything after it belongs to the module.
package cmd
