// Package registry stores the commands of a REPL and resolves keywords.
//
// Package: registry
// Title: Command Registry and Resolver
// Description: Commands are kept in registration order; registering a
//              command with an existing name replaces it. A typed keyword
//              resolves through at most one alias substitution and then by
//              unambiguous case-insensitive prefix. Keywords registered with
//              a leading "*" must be typed in full.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Usage:
//
//	reg := registry.New(registry.Options{Logger: logger})
//	reg.Register(&registry.Definition{Keyword: "echo", Executor: echo})
//	reg.Register(&registry.Definition{Keyword: "*exit", Executor: exit})
//
//	def, err := reg.Resolve("ec") // echo
//	_, err = reg.Resolve("ex")    // UNKNOWN_COMMAND, exit is exact-only
package registry
