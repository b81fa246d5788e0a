// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/invowk/modrun/internal/cueutil"
	"github.com/invowk/modrun/pkg/module"
)

// knownKeys lists the accepted keys per section; nil means any valid module
// name is accepted.
var knownKeys = map[string][]string{
	"ui":      {"color_scheme", "verbose"},
	"log":     {"level", "format"},
	"aliases": nil,
}

// decodeCUE validates data against #Config and returns it as a plain map.
func decodeCUE(data []byte, path string) (map[string]any, error) {
	return cueutil.Decode[map[string]any](configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithMaxFileSize(maxFileSize),
	)
}

// decodeTOML parses data and rejects keys the CUE schema would reject.
// Alias names are checked here because viper folds keys to lower case
// before Config.Validate sees them. Other value checks are left to
// Config.Validate.
func decodeTOML(data []byte, path string) (map[string]any, error) {
	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", path, row, col, de.Error())
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for section, value := range values {
		allowed, ok := knownKeys[section]
		if !ok {
			return nil, fmt.Errorf("%s: %s: field not allowed", path, section)
		}
		table, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %s: expected a table", path, section)
		}
		if section == "aliases" {
			if err := checkAliasNames(table); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		for key := range table {
			if !slices.Contains(allowed, key) {
				return nil, fmt.Errorf("%s: %s.%s: field not allowed", path, section, key)
			}
		}
	}
	return values, nil
}

func checkAliasNames(aliases map[string]any) error {
	for alias := range aliases {
		if err := module.Name(alias).Validate(); err != nil {
			return fmt.Errorf("aliases.%s: %w", alias, err)
		}
	}
	return nil
}
