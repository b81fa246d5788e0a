// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is returned when the dispatcher or a module completes normally.
	ExitSuccess ExitCode = 0
	// ExitFailure is the generic failure status, also used for unknown modules.
	ExitFailure ExitCode = 1
	// ExitUsage reports a malformed dispatcher invocation (bad flag).
	ExitUsage ExitCode = 2
	// ExitSoftware reports an internal integrity failure such as a duplicate
	// module registration (EX_SOFTWARE from sysexits.h).
	ExitSoftware ExitCode = 70
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Portable exit codes are in the range 0-255; the zero value means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// portable range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the portable range (0-255).
// Out-of-range codes are still passed to the OS, which truncates them.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
