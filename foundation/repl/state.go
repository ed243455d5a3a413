// File: state.go
// Title: Loop States
// Description: The states of the REPL control loop.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

// State is a state of the REPL control loop
type State int

const (
	StateInit State = iota
	StateBanner
	StateScript
	StateRead
	StateBlank
	StateInclude
	StateShell
	StateDispatch
	StateReport
	StateExit
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateBanner:
		return "BANNER"
	case StateScript:
		return "SCRIPT_MODE"
	case StateRead:
		return "READ"
	case StateBlank:
		return "BLANK"
	case StateInclude:
		return "INCLUDE_FILE"
	case StateShell:
		return "SHELL"
	case StateDispatch:
		return "DISPATCH"
	case StateReport:
		return "REPORT"
	case StateExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}
