// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes user-supplied CUE documents against an embedded
// schema definition:
//
//  1. compile the schema and the user data,
//  2. unify the data with the schema definition,
//  3. validate and decode into a Go value.
//
// Errors carry the file name and the dotted CUE path of the offending field.
//
//	//go:embed config_schema.cue
//	var schema string
//
//	values, err := cueutil.Decode[map[string]any](schema, data, "#Config",
//	    cueutil.WithFilename("config.cue"))
package cueutil
