// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/modrun/internal/cueutil"
	"github.com/invowk/modrun/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "modrun"
	// ConfigFileName is the name of the config file inside the config directory (without extension).
	ConfigFileName = "config"
	// LocalFileName is the name of the config file looked up in the working directory (without extension).
	LocalFileName = "modrun"
	// EnvPrefix prefixes the environment variables that override config keys.
	EnvPrefix = "MODRUN"

	extCUE  = ".cue"
	extTOML = ".toml"

	// maxFileSize bounds config files read into memory.
	maxFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ErrUnsupportedFormat is returned for config files that are neither CUE nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// ConfigDir returns the modrun configuration directory inside the
// platform's user configuration directory.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// loadWithOptions returns the merged configuration and the path of the file
// it was read from ("" when only defaults and environment apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("aliases", defaults.Aliases)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		slog.Debug("Loading configuration file.", "path", path)
		if err := mergeFile(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithSuggestion("Check that the file contains valid CUE or TOML syntax").
				WithSuggestion("Only the keys ui, log and aliases are recognized").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Aliases and their targets must be valid module names ([a-z][a-z0-9_-]*)").
			WithSuggestion("Check MODRUN_* environment variables for misspelled values").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

// findConfigFile returns the first existing config file in precedence order.
// An explicit path must exist; implicit locations are optional.
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %w", fs.ErrNotExist)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	var candidates []string

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			slog.Debug("Skipping user config directory.", "error", err)
		}
		cfgDir = dir
	}
	if cfgDir != "" {
		candidates = append(candidates,
			filepath.Join(cfgDir, ConfigFileName+extCUE),
			filepath.Join(cfgDir, ConfigFileName+extTOML),
		)
	}
	candidates = append(candidates,
		filepath.Join(opts.WorkDir, LocalFileName+extCUE),
		filepath.Join(opts.WorkDir, LocalFileName+extTOML),
	)

	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", nil
}

// mergeFile decodes path according to its extension and merges it into v.
func mergeFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, maxFileSize, path); err != nil {
		return err
	}

	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case extCUE:
		values, err = decodeCUE(data, path)
	case extTOML:
		values, err = decodeTOML(data, path)
	default:
		return fmt.Errorf("%s: %w (use %s or %s)", path, ErrUnsupportedFormat, extCUE, extTOML)
	}
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("%s: failed to merge config: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
