// File: styled.go
// Title: Styled Console
// Description: Colours the message tags of the REPL output and the banner
//              title with lipgloss.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	ErrorTagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	WarningTagStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	InfoTagStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	ShellTagStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

var tagStyles = []struct {
	tag   string
	style lipgloss.Style
}{
	{"[ERROR]", ErrorTagStyle},
	{"[EXCEPTION]", ErrorTagStyle},
	{"[WARNING]", WarningTagStyle},
	{"[INFO]", InfoTagStyle},
	{"[SHELL OUTPUT]", ShellTagStyle},
	{"[END SHELL OUTPUT]", ShellTagStyle},
}

// Styled decorates another Console, rendering line tags in colour
type Styled struct {
	inner Console
}

// NewStyled wraps inner
func NewStyled(inner Console) *Styled {
	return &Styled{inner: inner}
}

// ReadLine implements Console
func (s *Styled) ReadLine(prompt string) (string, error) {
	return s.inner.ReadLine(prompt)
}

// Write implements Console
func (s *Styled) Write(text string) {
	s.inner.Write(StyleTags(text))
}

// WriteTitle implements TitleWriter
func (s *Styled) WriteTitle(title string) {
	s.inner.Write(TitleStyle.Render(title) + "\n")
}

// Flush implements Console
func (s *Styled) Flush() error {
	return s.inner.Flush()
}

// StyleTags renders the tag at the start of every line of text
func StyleTags(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		for _, ts := range tagStyles {
			if strings.HasPrefix(line, ts.tag) {
				lines[i] = ts.style.Render(ts.tag) + line[len(ts.tag):]
				break
			}
		}
	}
	return strings.Join(lines, "")
}
