// SPDX-License-Identifier: MPL-2.0

package module

import (
	"errors"
	"fmt"
)

// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
var ErrInvalidName = errors.New("invalid module name")

type (
	// Name identifies a module on the command line. A valid name starts with
	// a lowercase ASCII letter and continues with lowercase letters, digits,
	// '-' or '_'. Names can therefore never be mistaken for dispatcher flags.
	Name string

	// InvalidNameError is returned when a Name does not follow the naming rules.
	InvalidNameError struct {
		Value Name
	}
)

// String returns the string representation of the Name.
func (n Name) String() string { return string(n) }

// Validate returns nil if the name follows the naming rules.
func (n Name) Validate() error {
	if n == "" {
		return &InvalidNameError{Value: n}
	}
	for i, c := range n {
		switch {
		case c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return &InvalidNameError{Value: n}
		}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid module name %q (must match [a-z][a-z0-9_-]*)", e.Value)
}

// Unwrap returns ErrInvalidName so callers can use errors.Is for programmatic detection.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }
