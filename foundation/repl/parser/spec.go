// File: spec.go
// Title: Parameter Specifications
// Description: Describes which keyed parameters a command accepts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package parser

// Kind classifies a parameter specification
type Kind int

const (
	// KindUnrestricted accepts any key verbatim
	KindUnrestricted Kind = iota

	// KindNone accepts neither keyed nor positional parameters
	KindNone

	// KindNames accepts keys that abbreviate one of an explicit set of names
	KindNames
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindUnrestricted:
		return "unrestricted"
	case KindNone:
		return "none"
	case KindNames:
		return "names"
	default:
		return "unknown"
	}
}

// Spec is the allowed-parameter specification of a command.
// The zero value is unrestricted.
type Spec struct {
	kind  Kind
	names []string
}

// Unrestricted accepts every key as typed
func Unrestricted() Spec {
	return Spec{kind: KindUnrestricted}
}

// NoParameters accepts no parameters at all
func NoParameters() Spec {
	return Spec{kind: KindNone}
}

// Names accepts keys abbreviating one of names. Order is kept so ambiguity
// messages list candidates deterministically. Duplicates (ignoring case)
// are dropped. Names() with no arguments rejects every key but still
// accepts positional values.
func Names(names ...string) Spec {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		key := foldKey(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return Spec{kind: KindNames, names: out}
}

// Kind returns the kind of the specification
func (s Spec) Kind() Kind {
	return s.kind
}

// Names returns a copy of the allowed names; nil unless Kind is KindNames
func (s Spec) Names() []string {
	if s.kind != KindNames {
		return nil
	}
	return append([]string(nil), s.names...)
}
