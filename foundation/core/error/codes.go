// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the REPL engine. Each
//              command-line diagnostic kind maps to exactly one code so hosts
//              and tests can branch on the kind instead of the message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: REPL resolution, parsing and dispatch codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeConfigError  Code = "CONFIG_ERROR"

	// Command resolution
	CodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	CodeAmbiguousCommand Code = "AMBIGUOUS_COMMAND"

	// Parameter parsing
	CodeUnknownParameter    Code = "UNKNOWN_PARAMETER"
	CodeAmbiguousParameter  Code = "AMBIGUOUS_PARAMETER"
	CodeUnexpectedParameter Code = "UNEXPECTED_PARAMETER"
	CodeUnknownValue        Code = "UNKNOWN_VALUE"
	CodeAmbiguousValue      Code = "AMBIGUOUS_VALUE"

	// Dispatch
	CodeNoPatternMatched Code = "NO_PATTERN_MATCHED"
	CodeExecutorPanic    Code = "EXECUTOR_PANIC"

	// Loop collaborators
	CodeScriptFileNotFound    Code = "SCRIPT_FILE_NOT_FOUND"
	CodeShellInvocationFailed Code = "SHELL_INVOCATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownCommand, CodeAmbiguousCommand:
		return "resolution"
	case CodeUnknownParameter, CodeAmbiguousParameter, CodeUnexpectedParameter,
		CodeUnknownValue, CodeAmbiguousValue:
		return "parameter"
	case CodeNoPatternMatched, CodeExecutorPanic:
		return "dispatch"
	case CodeScriptFileNotFound, CodeShellInvocationFailed:
		return "io"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
