// Package repl is an engine for line-oriented interactive command shells.
//
// Package: repl
// Title: REPL Engine
// Description: A Repl reads lines from a console, resolves the first word
//              to a registered command (abbreviations and aliases allowed),
//              parses the remaining words into parameters, selects a regex
//              variant when the command defines any and runs the command's
//              executor. Diagnostics collected during a command are printed
//              after it. Lines starting with "." include a script file,
//              lines starting with "!" run in the operating system shell.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Usage:
//
//	r := repl.New(repl.Options{Title: "demo", Logger: logger})
//	r.Register(&registry.Definition{
//		Keyword:    "echo",
//		Parameters: parser.Names(),
//		Usage:      "echo text ...",
//		Executor: func(env *executor.Environment) {
//			env.Console().Write(strings.Join(env.Params().Values(), " ") + "\n")
//		},
//	})
//	err := r.Run(ctx, os.Args[1:])
//
// The loop is single threaded: one line is read, dispatched and reported
// before the next read. Built-in commands are help, alias and exit; exit
// must be typed in full.
package repl
