// File: parameters.go
// Title: Parsed Parameters
// Description: The positional and keyed values of one command invocation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"sort"
	"strings"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
	"github.com/msto63/mrepl/foundation/repl/abbrev"
)

// Parameters holds the values parsed from one command line. Keys are the
// canonical parameter names.
type Parameters struct {
	positional []string
	keyed      map[string]string
}

func newParameters() *Parameters {
	return &Parameters{keyed: make(map[string]string)}
}

// Get returns the value stored under the canonical key
func (p *Parameters) Get(key string) (string, bool) {
	v, ok := p.keyed[key]
	return v, ok
}

// GetOrDefault returns the value stored under key, or def when absent
func (p *Parameters) GetOrDefault(key, def string) string {
	if v, ok := p.keyed[key]; ok {
		return v
	}
	return def
}

// GetFrom returns the value stored under key resolved against allowed, so
// the value itself may be abbreviated. The bool is false when no value is
// stored. A value abbreviating several allowed values fails with
// AMBIGUOUS_VALUE, one abbreviating none fails with UNKNOWN_VALUE.
func (p *Parameters) GetFrom(key string, allowed ...string) (string, bool, error) {
	v, ok := p.keyed[key]
	if !ok {
		return "", false, nil
	}

	resolved, err := abbrev.Resolve(v, allowed)
	if err == nil {
		return resolved, true, nil
	}

	var ambiguous *abbrev.AmbiguousError
	if errors.As(err, &ambiguous) {
		return "", true, mdwerror.Newf("Value %s of parameter %s is ambiguous. It matches %s.",
			v, key, strings.Join(ambiguous.Candidates, ",")).
			WithCode(mdwerror.CodeAmbiguousValue).
			WithDetail("parameter", key).
			WithDetail("value", v).
			WithDetail("candidates", ambiguous.Candidates)
	}
	return "", true, mdwerror.Newf("%s is not an allowed value for parameter %s", v, key).
		WithCode(mdwerror.CodeUnknownValue).
		WithDetail("parameter", key).
		WithDetail("value", v)
}

// GetFromOrDefault is GetFrom returning def when no value is stored
func (p *Parameters) GetFromOrDefault(key, def string, allowed ...string) (string, error) {
	v, ok, err := p.GetFrom(key, allowed...)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Positional returns the positional value at the zero-based index
func (p *Parameters) Positional(index int) (string, bool) {
	if index < 0 || index >= len(p.positional) {
		return "", false
	}
	return p.positional[index], true
}

// PositionalOrDefault returns the positional value at index, or def when out of range
func (p *Parameters) PositionalOrDefault(index int, def string) string {
	if v, ok := p.Positional(index); ok {
		return v
	}
	return def
}

// Len returns the number of positional values
func (p *Parameters) Len() int {
	return len(p.positional)
}

// Values returns a copy of the positional values in order of appearance
func (p *Parameters) Values() []string {
	return append([]string(nil), p.positional...)
}

// Keys returns the canonical keys that carry a value, sorted
func (p *Parameters) Keys() []string {
	keys := make([]string, 0, len(p.keyed))
	for k := range p.keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Keyed returns a copy of the keyed values
func (p *Parameters) Keyed() map[string]string {
	out := make(map[string]string, len(p.keyed))
	for k, v := range p.keyed {
		out[k] = v
	}
	return out
}
