// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a small catalog of
// Markdown-formatted guidance for the failures a modrun user can hit:
// unknown modules, broken registrations, bad invocations and unreadable
// configuration files.
package issue
