// SPDX-License-Identifier: MPL-2.0

// Package config loads modrun's configuration using Viper, with CUE or TOML
// as the file format.
//
// Values are layered: built-in defaults, then the first configuration file
// found, then MODRUN_* environment variables (for example MODRUN_LOG_LEVEL
// overrides log.level). CUE files are validated against the embedded
// config_schema.cue before they are merged; TOML files are checked for
// unknown keys and then validated with the same Go rules.
package config
