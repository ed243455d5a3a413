// File: environment.go
// Title: Execution Environment
// Description: The per-invocation bundle handed to a command executor: the
//              keyword as typed, the line remainder, parsed parameters, the
//              selected regex variant and the console and message sink.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package executor

import (
	"context"

	"github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/console"
	"github.com/msto63/mrepl/foundation/repl/message"
	"github.com/msto63/mrepl/foundation/repl/parser"
)

// Func is the executor of a command. It reports through the environment's
// console and message sink and has no return value; a panic is caught at
// the dispatch boundary.
type Func func(env *Environment)

// Invocation carries the values an Environment is built from
type Invocation struct {
	Context context.Context
	Keyword string
	Line    string
	Params  *parser.Parameters
	Match   *Match
	Console console.Console
	Message *message.Sink
	Logger  *log.Logger
	Session string
	WorkDir string
}

// Environment is read-only for the duration of one invocation
type Environment struct {
	inv Invocation
}

// NewEnvironment creates the environment of one invocation
func NewEnvironment(inv Invocation) *Environment {
	if inv.Context == nil {
		inv.Context = context.Background()
	}
	if inv.Message == nil {
		inv.Message = message.New()
	}
	if inv.Logger == nil {
		inv.Logger = log.NewNop()
	}
	return &Environment{inv: inv}
}

// Context returns the context of the dispatch
func (e *Environment) Context() context.Context { return e.inv.Context }

// Keyword returns the command keyword as typed, before alias substitution
func (e *Environment) Keyword() string { return e.inv.Keyword }

// Line returns the line remainder after the keyword
func (e *Environment) Line() string { return e.inv.Line }

// Params returns the parsed parameters; nil when parsing did not happen
func (e *Environment) Params() *parser.Parameters { return e.inv.Params }

// Match returns the selected regex variant, nil when the command has no patterns
func (e *Environment) Match() *Match { return e.inv.Match }

// MatchName returns the name of the selected regex variant or ""
func (e *Environment) MatchName() string {
	if e.inv.Match == nil {
		return ""
	}
	return e.inv.Match.Name
}

// Console returns the console of the REPL
func (e *Environment) Console() console.Console { return e.inv.Console }

// Message returns the message sink of the REPL
func (e *Environment) Message() *message.Sink { return e.inv.Message }

// Logger returns the logger of the REPL
func (e *Environment) Logger() *log.Logger { return e.inv.Logger }

// Session returns the id of the REPL session
func (e *Environment) Session() string { return e.inv.Session }

// WorkDir returns the working directory of the REPL
func (e *Environment) WorkDir() string { return e.inv.WorkDir }
