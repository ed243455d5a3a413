// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level when an error is
//              logged. User input mistakes are low severity; failures of the
//              host (panicking executor, broken shell) rank higher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a user input mistake
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects one operation
	SeverityMedium

	// SeverityHigh indicates a failure of the application or its environment
	SeverityHigh

	// SeverityCritical indicates an error that makes the shell unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeUnknownCommand, CodeAmbiguousCommand,
		CodeUnknownParameter, CodeAmbiguousParameter, CodeUnexpectedParameter,
		CodeUnknownValue, CodeAmbiguousValue, CodeNoPatternMatched, CodeInvalidInput:
		return SeverityLow
	case CodeExecutorPanic, CodeShellInvocationFailed, CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
