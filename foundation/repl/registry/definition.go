// File: definition.go
// Title: Command Definition
// Description: Describes one command of the REPL: keyword, allowed
//              parameters, regex variants, usage, help and executor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package registry

import (
	"strings"

	"github.com/msto63/mrepl/foundation/repl/executor"
	"github.com/msto63/mrepl/foundation/repl/parser"
)

// ExactMarker prefixes a keyword that must be typed in full
const ExactMarker = "*"

// Definition describes a command
type Definition struct {
	// Keyword identifies the command. A leading ExactMarker makes the
	// command exact-only: it is not matched by abbreviations.
	Keyword string

	// Parameters is the allowed-parameter specification; the zero value
	// accepts any key
	Parameters parser.Spec

	// Patterns are the optional regex variants of the command
	Patterns *executor.Patterns

	Usage    string
	Help     string
	Executor executor.Func
}

// Name returns the keyword without the exact marker
func (d *Definition) Name() string {
	return strings.TrimPrefix(d.Keyword, ExactMarker)
}

// ExactOnly reports whether the keyword must be typed in full
func (d *Definition) ExactOnly() bool {
	return strings.HasPrefix(d.Keyword, ExactMarker)
}

// UsageOrName returns the usage text, falling back to the bare name
func (d *Definition) UsageOrName() string {
	if d.Usage != "" {
		return d.Usage
	}
	return d.Name()
}
