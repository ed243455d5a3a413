// File: detect.go
// Title: Console Detection
// Description: Chooses the terminal console when attached to a terminal and
//              falls back to plain standard streams otherwise.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package console

import (
	"io"

	"github.com/mattn/go-isatty"
)

// NoConsoleWarning is reported when the fallback console is used
const NoConsoleWarning = "No console in the system"

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file attached to a terminal
func IsTerminal(v interface{}) bool {
	f, ok := v.(fileDescriptor)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Detect returns the console to use for in and out, together with the
// warnings to show once the REPL starts.
func Detect(in io.Reader, out io.Writer, completer Completer) (Console, []string) {
	if IsTerminal(in) && IsTerminal(out) {
		return NewStyled(NewTerminal(in, out, completer)), nil
	}
	return NewStdio(in, out), []string{NoConsoleWarning}
}
