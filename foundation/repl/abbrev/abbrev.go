// File: abbrev.go
// Title: Unambiguous Prefix Resolution
// Description: Resolves an abbreviated word against a candidate set. The same
//              primitive resolves command keywords, parameter names and
//              enumerated parameter values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package abbrev

import (
	"fmt"
	"strings"

	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

// NoMatchError reports that no candidate starts with the typed text
type NoMatchError struct {
	Typed string
}

// Error implements the error interface
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s matches nothing", e.Typed)
}

// AmbiguousError reports that more than one candidate starts with the typed text
type AmbiguousError struct {
	Typed      string
	Candidates []string
}

// Error implements the error interface
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s is ambiguous. It matches %s.", e.Typed, strings.Join(e.Candidates, ","))
}

// Matches returns every candidate that starts with typed, ignoring case,
// in candidate order. An empty typed string matches nothing.
func Matches(typed string, candidates []string) []string {
	if typed == "" {
		return nil
	}
	var out []string
	for _, c := range candidates {
		if mdwstringx.HasPrefixFold(c, typed) {
			out = append(out, c)
		}
	}
	return out
}

// Resolve returns the single candidate that typed abbreviates. It fails with
// *NoMatchError or *AmbiguousError otherwise.
func Resolve(typed string, candidates []string) (string, error) {
	matches := Matches(typed, candidates)
	switch len(matches) {
	case 0:
		return "", &NoMatchError{Typed: typed}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{Typed: typed, Candidates: matches}
	}
}
