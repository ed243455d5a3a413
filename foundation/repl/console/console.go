// File: console.go
// Title: Console Collaborator
// Description: The line-oriented console the REPL reads from and writes to,
//              plus the plain standard input/output fallback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Console reads lines and writes text for the REPL
type Console interface {
	// ReadLine shows prompt and returns the next line without its line
	// terminator. It returns io.EOF when no more input is available.
	ReadLine(prompt string) (string, error)

	// Write outputs text as is
	Write(text string)

	// Flush makes sure written text reached the user
	Flush() error
}

// Completer returns the current completion candidates
type Completer func() []string

// TitleWriter is implemented by consoles that render the banner title
// apart from ordinary output
type TitleWriter interface {
	WriteTitle(title string)
}

// WriteTitle writes title as one or more lines, through c's TitleWriter
// when it has one
func WriteTitle(c Console, title string) {
	title = strings.TrimSuffix(title, "\n")
	if tw, ok := c.(TitleWriter); ok {
		tw.WriteTitle(title)
		return
	}
	c.Write(title + "\n")
}

// Stdio is a Console on plain reader and writer streams
type Stdio struct {
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewStdio creates a console reading from in and writing to out
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
	}
}

// ReadLine implements Console
func (s *Stdio) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		s.writer.WriteString(prompt)
		if err := s.writer.Flush(); err != nil {
			return "", err
		}
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		// a last line without terminator still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Write implements Console
func (s *Stdio) Write(text string) {
	s.writer.WriteString(text)
}

// Flush implements Console
func (s *Stdio) Flush() error {
	return s.writer.Flush()
}
