// File: registry.go
// Title: Command Registry
// Description: Stores command definitions in registration order together
//              with the alias table, and resolves typed keywords to
//              definitions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package registry

import (
	"errors"
	"iter"
	"sort"
	"strings"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
	"github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/abbrev"
	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

// Options configures the registry
type Options struct {
	Logger *log.Logger
}

// Registry holds the commands and aliases of one REPL instance.
// It is mutated only between reads by the single control loop and is
// therefore not synchronized.
type Registry struct {
	definitions []*Definition
	aliases     map[string]string
	logger      *log.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Registry{
		aliases: make(map[string]string),
		logger:  opts.Logger.WithField("component", "repl-registry"),
	}
}

// Register adds def, replacing a definition with the same name (ignoring
// case and the exact marker). The new definition is placed last.
func (r *Registry) Register(def *Definition) {
	if def == nil {
		return
	}

	name := def.Name()
	kept := r.definitions[:0]
	replaced := false
	for _, existing := range r.definitions {
		if strings.EqualFold(existing.Name(), name) {
			replaced = true
			continue
		}
		kept = append(kept, existing)
	}
	r.definitions = append(kept, def)

	r.logger.Debug("command registered", log.Fields{
		"keyword":   name,
		"exactOnly": def.ExactOnly(),
		"replaced":  replaced,
		"patterns":  def.Patterns.Len(),
	})
}

// SetAlias makes name an alias of target. An empty target removes the alias.
func (r *Registry) SetAlias(name, target string) {
	if mdwstringx.IsBlank(target) {
		r.RemoveAlias(name)
		return
	}

	r.aliases[strings.ToLower(name)] = target
	r.logger.Debug("alias registered", log.Fields{
		"alias":   name,
		"command": target,
	})
}

// RemoveAlias removes the alias name; removing an unknown alias is a no-op
func (r *Registry) RemoveAlias(name string) {
	delete(r.aliases, strings.ToLower(name))
	r.logger.Debug("alias removed", log.Fields{"alias": name})
}

// Alias returns the target of the alias name
func (r *Registry) Alias(name string) (string, bool) {
	target, ok := r.aliases[strings.ToLower(name)]
	return target, ok
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	aliases := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		aliases[k] = v
	}
	return aliases
}

// AliasNames returns the alias names, sorted
func (r *Registry) AliasNames() []string {
	names := make([]string, 0, len(r.aliases))
	for k := range r.aliases {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// All yields the definitions in registration order. The sequence can be
// ranged over any number of times.
func (r *Registry) All() iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		for _, def := range r.definitions {
			if !yield(def) {
				return
			}
		}
	}
}

// Len returns the number of definitions
func (r *Registry) Len() int {
	return len(r.definitions)
}

// Lookup returns the definition whose name equals name, ignoring case
func (r *Registry) Lookup(name string) (*Definition, bool) {
	name = strings.TrimPrefix(name, ExactMarker)
	for _, def := range r.definitions {
		if strings.EqualFold(def.Name(), name) {
			return def, true
		}
	}
	return nil, false
}

// Resolve selects the definition for a typed keyword. An alias is
// substituted once and the result is never looked up as an alias again.
// Exact-only commands match full names only, others any unambiguous prefix.
func (r *Registry) Resolve(typed string) (*Definition, error) {
	keyword := strings.ToLower(typed)
	shown := typed
	if target, ok := r.aliases[keyword]; ok {
		keyword = strings.ToLower(target)
		shown = target
	}

	var matches []*Definition
	var prefixNames []string
	var prefixDefs []*Definition
	for _, def := range r.definitions {
		if def.ExactOnly() {
			if strings.EqualFold(def.Name(), keyword) {
				matches = append(matches, def)
			}
			continue
		}
		prefixNames = append(prefixNames, def.Name())
		prefixDefs = append(prefixDefs, def)
	}

	for _, name := range abbrev.Matches(keyword, prefixNames) {
		for _, def := range prefixDefs {
			if def.Name() == name {
				matches = append(matches, def)
				break
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		// an alias reports the command it stands for
		return nil, mdwerror.Newf("command '%s' is not defined", shown).
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation("registry.Resolve").
			WithDetail("keyword", typed).
			WithDetail("command", shown)
	default:
		names := make([]string, 0, len(matches))
		for _, def := range matches {
			names = append(names, def.Name())
		}
		return nil, mdwerror.Newf("command '%s' is ambiguous. It matches %s.",
			shown, strings.Join(names, ",")).
			WithCode(mdwerror.CodeAmbiguousCommand).
			WithOperation("registry.Resolve").
			WithDetail("keyword", typed).
			WithDetail("command", shown).
			WithDetail("candidates", names)
	}
}

// IsUnresolved reports whether err is a resolution failure of Resolve
func IsUnresolved(err error) bool {
	var e *mdwerror.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code() == mdwerror.CodeUnknownCommand || e.Code() == mdwerror.CodeAmbiguousCommand
}

// Completions returns the sorted, de-duplicated completion candidates:
// command names, allowed parameter names and alias names
func (r *Registry) Completions() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for def := range r.All() {
		add(def.Name())
		for _, p := range def.Parameters.Names() {
			add(p)
		}
	}
	for name := range r.aliases {
		add(name)
	}

	sort.Strings(out)
	return out
}
