// File: message.go
// Title: Message Sink
// Description: Accumulates the errors, warnings and infos raised during one
//              command invocation and renders them as one tagged block.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package message

import (
	"fmt"
	"strings"
)

// Line tags used when a sink is rendered
const (
	TagError     = "[ERROR]"
	TagWarning   = "[WARNING]"
	TagInfo      = "[INFO]"
	TagException = "[EXCEPTION]"
)

// Sink collects diagnostic messages until they are fetched.
// A Sink is owned by a single REPL instance and is not safe for concurrent use.
type Sink struct {
	errors   []string
	warnings []string
	infos    []string
}

// New creates an empty sink
func New() *Sink {
	return &Sink{}
}

// Error records an error message
func (s *Sink) Error(msg string) {
	s.errors = append(s.errors, msg)
}

// Errorf records a formatted error message
func (s *Sink) Errorf(format string, args ...interface{}) {
	s.Error(fmt.Sprintf(format, args...))
}

// Warning records a warning message
func (s *Sink) Warning(msg string) {
	s.warnings = append(s.warnings, msg)
}

// Warningf records a formatted warning message
func (s *Sink) Warningf(format string, args ...interface{}) {
	s.Warning(fmt.Sprintf(format, args...))
}

// Info records an informational message
func (s *Sink) Info(msg string) {
	s.infos = append(s.infos, msg)
}

// Infof records a formatted informational message
func (s *Sink) Infof(format string, args ...interface{}) {
	s.Info(fmt.Sprintf(format, args...))
}

// Fetch renders all messages, errors first, then warnings, then infos,
// one tagged line each, and clears the sink.
func (s *Sink) Fetch() string {
	var b strings.Builder
	writeTagged(&b, TagError, s.errors)
	writeTagged(&b, TagWarning, s.warnings)
	writeTagged(&b, TagInfo, s.infos)
	s.Clear()
	return b.String()
}

// Clear drops all messages without rendering them
func (s *Sink) Clear() {
	s.errors = nil
	s.warnings = nil
	s.infos = nil
}

// Len returns the number of pending messages
func (s *Sink) Len() int {
	return len(s.errors) + len(s.warnings) + len(s.infos)
}

// HasErrors reports whether an error is pending
func (s *Sink) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors returns a copy of the pending errors
func (s *Sink) Errors() []string {
	return append([]string(nil), s.errors...)
}

// Warnings returns a copy of the pending warnings
func (s *Sink) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

// Infos returns a copy of the pending infos
func (s *Sink) Infos() []string {
	return append([]string(nil), s.infos...)
}

func writeTagged(b *strings.Builder, tag string, lines []string) {
	for _, line := range lines {
		b.WriteString(tag)
		b.WriteByte(' ')
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
