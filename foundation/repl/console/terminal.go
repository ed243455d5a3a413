// File: terminal.go
// Title: Terminal Console
// Description: Interactive line editor built on bubbletea and the bubbles
//              text input, offering completion suggestions for the word
//              under the cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package console

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/mrepl/foundation/repl/abbrev"
)

// Terminal is a Console running one bubbletea program per line
type Terminal struct {
	in        io.Reader
	out       io.Writer
	completer Completer
}

// NewTerminal creates a terminal console. completer may be nil.
func NewTerminal(in io.Reader, out io.Writer, completer Completer) *Terminal {
	return &Terminal{in: in, out: out, completer: completer}
}

// ReadLine implements Console. Ctrl+C, and Ctrl+D on an empty line, end
// the input.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	var candidates []string
	if t.completer != nil {
		candidates = t.completer()
	}

	p := tea.NewProgram(newLineModel(prompt, candidates),
		tea.WithInput(t.in),
		tea.WithOutput(t.out))

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(lineModel)
	if m.eof {
		return "", io.EOF
	}
	return m.input.Value(), nil
}

// Write implements Console
func (t *Terminal) Write(text string) {
	fmt.Fprint(t.out, text)
}

// Flush implements Console
func (t *Terminal) Flush() error {
	if f, ok := t.out.(interface{ Sync() error }); ok {
		// terminals report EINVAL on sync
		_ = f.Sync()
	}
	return nil
}

type lineModel struct {
	input      textinput.Model
	candidates []string
	done       bool
	eof        bool
}

func newLineModel(prompt string, candidates []string) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.ShowSuggestions = len(candidates) > 0
	ti.Focus()

	return lineModel{input: ti, candidates: candidates}
}

// Init implements tea.Model
func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.eof = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.ShowSuggestions {
		m.input.SetSuggestions(suggestionsFor(m.input.Value(), m.candidates))
	}
	return m, cmd
}

// View implements tea.Model
func (m lineModel) View() string {
	if m.done {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	if m.eof {
		return m.input.Prompt + "\n"
	}
	return m.input.View()
}

// suggestionsFor completes the last word of value against candidates. Each
// suggestion is the full line so the text input can offer it.
func suggestionsFor(value string, candidates []string) []string {
	idx := strings.LastIndexFunc(value, unicode.IsSpace)
	head, word := value[:idx+1], value[idx+1:]
	if word == "" || strings.Contains(word, "=") {
		return nil
	}

	matches := abbrev.Matches(word, candidates)
	out := make([]string, 0, len(matches))
	for _, c := range matches {
		out = append(out, head+c)
	}
	return out
}
