// File: doc.go
// Title: Error Package Documentation
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

/*
Package error provides the structured error type of the REPL engine.

Resolution, parsing and dispatch failures are returned as *Error values with
a Code identifying the kind (UNKNOWN_COMMAND, AMBIGUOUS_PARAMETER, ...). They
flow as ordinary return values up to the dispatch boundary, where the shell
renders the message as a single [ERROR] line.

	err := mdwerror.New("command 'x' is not defined").
		WithCode(mdwerror.CodeUnknownCommand).
		WithDetail("keyword", "x")

	if mdwerror.HasCode(err, mdwerror.CodeUnknownCommand) {
		...
	}
*/
package error
