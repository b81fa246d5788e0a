// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/invowk/modrun/pkg/module"
)

const (
	// ColorSchemeAuto detects the terminal background automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark-background styles.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light-background styles.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug logs everything, including registry and dispatch details.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs informational messages.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only (the default).
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// LogFormatText is the human-readable charmbracelet/log format.
	LogFormatText LogFormat = "text"
	// LogFormatJSON emits one JSON object per record.
	LogFormatJSON LogFormat = "json"
	// LogFormatLogfmt emits logfmt key=value records.
	LogFormatLogfmt LogFormat = "logfmt"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when a LogFormat value is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidAlias is the sentinel error wrapped by InvalidAliasError.
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// LogLevel is the minimum level of log records written to stderr.
	LogLevel string

	// LogFormat selects the log record encoding.
	LogFormat string

	// InvalidValueError is returned when an enumerated setting has an
	// unrecognized value. Sentinel identifies the setting.
	InvalidValueError struct {
		Sentinel error
		Value    string
	}

	// InvalidAliasError is returned when an alias or its target is not a valid module name.
	InvalidAliasError struct {
		Alias  string
		Target string
		Cause  error
	}

	// InvalidConfigError collects all field-level validation errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UI configures presentation.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures the stderr logger.
		Log LogConfig `json:"log" mapstructure:"log"`
		// Aliases maps alternative names to registered module names.
		Aliases map[string]string `json:"aliases" mapstructure:"aliases"`
	}

	// UIConfig configures presentation.
	UIConfig struct {
		// ColorScheme sets the color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and the usage column in listings.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures the stderr logger.
	LogConfig struct {
		Level  LogLevel  `json:"level" mapstructure:"level"`
		Format LogFormat `json:"format" mapstructure:"format"`
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Log: LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
		Aliases: map[string]string{},
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// Validate returns an error if the ColorScheme is not recognized.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidValueError{Sentinel: ErrInvalidColorScheme, Value: string(c)}
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate returns an error if the LogLevel is not recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidValueError{Sentinel: ErrInvalidLogLevel, Value: string(l)}
	}
}

// Slog returns the matching slog level. Unknown levels map to slog.LevelWarn.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// String returns the string representation of the LogFormat.
func (f LogFormat) String() string { return string(f) }

// Validate returns an error if the LogFormat is not recognized.
func (f LogFormat) Validate() error {
	switch f {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
		return nil
	default:
		return &InvalidValueError{Sentinel: ErrInvalidLogFormat, Value: string(f)}
	}
}

// Validate checks every field and returns an *InvalidConfigError listing all problems.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	for alias, target := range c.Aliases {
		if err := module.Name(alias).Validate(); err != nil {
			errs = append(errs, &InvalidAliasError{Alias: alias, Target: target, Cause: err})
			continue
		}
		if err := module.Name(target).Validate(); err != nil {
			errs = append(errs, &InvalidAliasError{Alias: alias, Target: target, Cause: err})
		}
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// ResolveAlias returns the module name an alias points to.
func (c *Config) ResolveAlias(name string) (module.Name, bool) {
	target, ok := c.Aliases[name]
	if !ok {
		return "", false
	}
	return module.Name(target), true
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%v: %q", e.Sentinel, e.Value)
}

// Unwrap returns the setting's sentinel error for errors.Is() compatibility.
func (e *InvalidValueError) Unwrap() error { return e.Sentinel }

// Error implements the error interface.
func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("invalid alias %q -> %q: %v", e.Alias, e.Target, e.Cause)
}

// Unwrap returns ErrInvalidAlias and the underlying name error.
func (e *InvalidAliasError) Unwrap() []error { return []error{ErrInvalidAlias, e.Cause} }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
