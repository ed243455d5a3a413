// File: patterns.go
// Title: Regex Dispatcher
// Description: Named regular expression variants of a command. The first
//              variant, in registration order, that matches the whole line
//              remainder is selected.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package executor

import (
	"fmt"
	"regexp"
	"strings"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
)

type pattern struct {
	name string
	expr string
	re   *regexp.Regexp
}

// Patterns is an ordered set of named regex variants
type Patterns struct {
	list []*pattern
}

// NewPatterns creates an empty pattern set
func NewPatterns() *Patterns {
	return &Patterns{}
}

// Add compiles expr as a variant called name. The expression must match the
// whole remainder; it is anchored on both ends. Adding an existing name
// replaces its expression and keeps its position.
func (p *Patterns) Add(name, expr string) error {
	if strings.TrimSpace(name) == "" {
		return mdwerror.New("pattern name cannot be empty").
			WithCode(mdwerror.CodeInvalidInput)
	}

	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("invalid pattern %s", name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("pattern", name)
	}

	for _, existing := range p.list {
		if existing.name == name {
			existing.expr = expr
			existing.re = re
			return nil
		}
	}
	p.list = append(p.list, &pattern{name: name, expr: expr, re: re})
	return nil
}

// MustAdd is Add panicking on an invalid expression. It returns p for chaining.
func (p *Patterns) MustAdd(name, expr string) *Patterns {
	if err := p.Add(name, expr); err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of variants; a nil set has none
func (p *Patterns) Len() int {
	if p == nil {
		return 0
	}
	return len(p.list)
}

// Names returns the variant names in registration order
func (p *Patterns) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.list))
	for _, pt := range p.list {
		names = append(names, pt.name)
	}
	return names
}

// Select returns the first variant fully matching remainder. With no
// variants it returns (nil, nil); when none matches it fails with
// NO_PATTERN_MATCHED.
func (p *Patterns) Select(remainder string) (*Match, error) {
	if p.Len() == 0 {
		return nil, nil
	}

	for _, pt := range p.list {
		if groups := pt.re.FindStringSubmatch(remainder); groups != nil {
			return &Match{Name: pt.name, Groups: groups, re: pt.re}, nil
		}
	}

	return nil, mdwerror.New("None of the syntax patterns could match the line. See the help of the command.").
		WithCode(mdwerror.CodeNoPatternMatched).
		WithOperation("executor.Select").
		WithDetail("remainder", remainder).
		WithDetail("patterns", p.Names())
}

// Match is the result of a successful Select
type Match struct {
	// Name of the selected variant
	Name string

	// Groups holds the whole match at index 0 followed by the capture groups
	Groups []string

	re *regexp.Regexp
}

// Group returns capture group i, or "" when out of range
func (m *Match) Group(i int) string {
	if m == nil || i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Named returns the capture group called name, or "" when there is none
func (m *Match) Named(name string) string {
	if m == nil || m.re == nil {
		return ""
	}
	return m.Group(m.re.SubexpIndex(name))
}
