// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the toolbox configuration
//              loader and command-line layer. The string helpers themselves
//              never fail and raise no codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set for the toolbox

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input handling
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeMissingArgument Code = "MISSING_ARGUMENT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeMissingArgument,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeMissingArgument:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Input problems map to 2 (usage), everything else to 1.
func (c Code) ExitCode() int {
	if c.Category() == "input" {
		return 2
	}
	return 1
}
