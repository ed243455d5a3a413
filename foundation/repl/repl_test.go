// File: repl_test.go
// Title: REPL Engine Tests
// Description: Tests for dispatch, the control loop, built-in commands,
//              scripts and shell passthrough using a scripted console.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package repl

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"

	mdwlog "github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/executor"
	"github.com/msto63/mrepl/foundation/repl/parser"
	"github.com/msto63/mrepl/foundation/repl/registry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeConsole replays scripted lines and records everything written
type fakeConsole struct {
	lines   []string
	readErr error
	prompts []string
	out     strings.Builder
	flushes int
}

func (c *fakeConsole) ReadLine(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if len(c.lines) == 0 {
		if c.readErr != nil {
			return "", c.readErr
		}
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *fakeConsole) Write(text string) {
	c.out.WriteString(text)
}

func (c *fakeConsole) Flush() error {
	c.flushes++
	return nil
}

type fakeShell struct {
	output string
	err    error
	calls  []string
}

func (s *fakeShell) Run(_ context.Context, command string) (string, error) {
	s.calls = append(s.calls, command)
	return s.output, s.err
}

func echo(env *executor.Environment) {
	env.Console().Write(strings.Join(env.Params().Values(), " ") + "\n")
}

func newTestRepl(t *testing.T, opts Options, lines ...string) (*Repl, *fakeConsole) {
	t.Helper()
	con := &fakeConsole{lines: lines}
	opts.Console = con
	opts.Logger = mdwlog.NewNop()
	opts.Session = "test-session"
	if opts.WorkDir == "" {
		opts.WorkDir = t.TempDir()
	}
	if opts.Shell == nil {
		opts.Shell = &fakeShell{}
	}

	r := New(opts)
	r.Register(&registry.Definition{
		Keyword:    "echo",
		Parameters: parser.Names(),
		Usage:      "echo text ...",
		Executor:   echo,
	})
	return r, con
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"blank line is a no-op", "   ", ""},
		{"full keyword", "echo hello world", "hello world\n"},
		{"abbreviated keyword", "  EC   hello  ", "hello\n"},
		{"unknown command", "wuff", "[ERROR] command 'wuff' is not defined\n"},
		{"exit is exact only", "exi", "[ERROR] command 'exi' is not defined\n"},
		{"ambiguous command", "e x", "[ERROR] command 'e' is ambiguous. It matches echo,edit.\n"},
		{"parameter error skips executor", "echo a=1", "[ERROR] a is not an allowed parameter\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, con := newTestRepl(t, Options{})
			r.Register(&registry.Definition{Keyword: "edit", Executor: echo})

			r.Dispatch(context.Background(), tt.line)

			if got := con.out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDispatch_RegexVariants(t *testing.T) {
	var seen []string
	r, con := newTestRepl(t, Options{})
	r.Register(&registry.Definition{
		Keyword: "abs",
		Patterns: executor.NewPatterns().
			MustAdd("canonical", `(\d+)\s*\+(\d+)i`).
			MustAdd("polar", `(\d+)\((\d+\.?\d*)\)`),
		Executor: func(env *executor.Environment) {
			seen = append(seen, env.MatchName()+":"+env.Match().Group(1)+","+env.Match().Group(2))
		},
	})

	r.Dispatch(context.Background(), "abs 3+4i")
	r.Dispatch(context.Background(), "abs 5(0.5)")
	r.Dispatch(context.Background(), "abs not-a-number")

	want := []string{"canonical:3,4", "polar:5,0.5"}
	if strings.Join(seen, "|") != strings.Join(want, "|") {
		t.Errorf("executor saw %v, want %v", seen, want)
	}
	wantErr := "[ERROR] None of the syntax patterns could match the line. See the help of the command.\n"
	if con.out.String() != wantErr {
		t.Errorf("output = %q, want %q", con.out.String(), wantErr)
	}
}

func TestDispatch_Panic(t *testing.T) {
	for _, debug := range []bool{false, true} {
		r, con := newTestRepl(t, Options{Debug: debug})
		r.Register(&registry.Definition{
			Keyword:  "boom",
			Executor: func(*executor.Environment) { panic("boom\nsecond line") },
		})

		r.Dispatch(context.Background(), "boom")

		out := con.out.String()
		if !strings.HasPrefix(out, "[EXCEPTION] boom\n") {
			t.Errorf("debug=%v output = %q", debug, out)
		}
		if strings.Contains(out, "second line") {
			t.Errorf("summary should be one line, got %q", out)
		}
		if got := strings.Contains(out, "goroutine"); got != debug {
			t.Errorf("debug=%v stack trace written = %v", debug, got)
		}
	}
}

func TestDispatch_StateReporter(t *testing.T) {
	var keywords []string
	r, _ := newTestRepl(t, Options{
		StateReporter: func(env *executor.Environment) {
			keywords = append(keywords, env.Keyword())
			if env.Session() != "test-session" {
				t.Errorf("Session() = %q", env.Session())
			}
		},
	})

	r.Dispatch(context.Background(), "wuff")
	r.Dispatch(context.Background(), "EC hi")
	r.Dispatch(context.Background(), "")

	if strings.Join(keywords, ",") != "wuff,EC" {
		t.Errorf("reporter saw %v", keywords)
	}
}

func TestRun_Banner(t *testing.T) {
	dir := t.TempDir()
	r, con := newTestRepl(t, Options{
		Title:           "Demo REPL",
		Prompt:          "> ",
		WorkDir:         dir,
		StartupWarnings: []string{"No console in the system"},
	}, "echo hi")

	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "[WARNING] No console in the system\n" +
		"Demo REPL\n" +
		"CWD is " + dir + "\n" +
		"type 'help' for help\n" +
		"hi\n"
	if got := con.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if strings.Join(con.prompts, "") != "> > " {
		t.Errorf("prompts = %q", con.prompts)
	}
	if r.State() != StateExit {
		t.Errorf("State() = %v, want EXIT", r.State())
	}
}

// titleConsole records banner titles apart from ordinary output
type titleConsole struct {
	fakeConsole
	titles []string
}

func (c *titleConsole) WriteTitle(title string) {
	c.titles = append(c.titles, title)
}

func TestRun_BannerTitleWriter(t *testing.T) {
	con := &titleConsole{}
	r := New(Options{
		Title:   "Demo REPL\n",
		Console: con,
		Logger:  mdwlog.NewNop(),
		WorkDir: t.TempDir(),
	})

	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(con.titles) != 1 || con.titles[0] != "Demo REPL" {
		t.Errorf("titles = %q", con.titles)
	}
	if strings.Contains(con.out.String(), "Demo REPL") {
		t.Errorf("title written as plain output: %q", con.out.String())
	}
}

func TestRun_Exit(t *testing.T) {
	tests := []struct {
		name        string
		veto        func(*executor.Environment) bool
		lines       []string
		wantOut     []string
		wantMissing []string
		wantExit    bool
	}{
		{
			name:        "no veto exits after one dispatch",
			lines:       []string{"exit", "echo never"},
			wantMissing: []string{"never"},
			wantExit:    true,
		},
		{
			name:        "veto allowing exit",
			veto:        func(*executor.Environment) bool { return true },
			lines:       []string{"EXIT", "echo never"},
			wantMissing: []string{"never"},
			wantExit:    true,
		},
		{
			name:        "veto refuses until confirmed",
			veto:        func(*executor.Environment) bool { return false },
			lines:       []string{"exit", "echo after", "exit confirm=yes", "echo never"},
			wantOut:     []string{"[WARNING] " + ExitVetoWarning + "\n", "after\n"},
			wantMissing: []string{"never"},
			wantExit:    true,
		},
		{
			name:        "abbreviated confirmation",
			veto:        func(*executor.Environment) bool { return false },
			lines:       []string{"exit conf=y", "echo never"},
			wantMissing: []string{"never", "WARNING"},
			wantExit:    true,
		},
		{
			name:     "confirm=no keeps the veto",
			veto:     func(*executor.Environment) bool { return false },
			lines:    []string{"exit confirm=no", "echo still here"},
			wantOut:  []string{"[WARNING] " + ExitVetoWarning + "\n", "still here\n"},
			wantExit: false,
		},
		{
			name:     "end of input without exit",
			lines:    []string{"echo a"},
			wantOut:  []string{"a\n"},
			wantExit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, con := newTestRepl(t, Options{ExitVeto: tt.veto}, tt.lines...)

			if err := r.Run(context.Background(), nil); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			out := con.out.String()
			for _, s := range tt.wantOut {
				if !strings.Contains(out, s) {
					t.Errorf("output %q does not contain %q", out, s)
				}
			}
			for _, s := range tt.wantMissing {
				if strings.Contains(out, s) {
					t.Errorf("output %q should not contain %q", out, s)
				}
			}
			if r.Exiting() != tt.wantExit {
				t.Errorf("Exiting() = %v, want %v", r.Exiting(), tt.wantExit)
			}
		})
	}
}

func TestRun_ScriptMode(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "script.txt", "echo one\n\n   \necho two\nwuff\necho three\n")

	r, con := newTestRepl(t, Options{Title: "never shown"}, "echo interactive")
	if err := r.Run(context.Background(), []string{script}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "one\n" +
		"[INFO] Executing '" + script + "'\n" +
		"two\n" +
		"[ERROR] command 'wuff' is not defined\n" +
		"three\n"
	if got := con.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if len(con.prompts) != 0 {
		t.Errorf("script mode must not prompt, got %q", con.prompts)
	}
}

func TestRun_ScriptStopsAtExit(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "script.txt", "echo one\nexit\necho two\n")

	r, con := newTestRepl(t, Options{})
	if err := r.Run(context.Background(), []string{script}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if strings.Contains(con.out.String(), "two") {
		t.Errorf("lines after exit ran: %q", con.out.String())
	}
}

func TestRun_Include(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inc.txt", "echo included\nnope\necho also\n")

	r, con := newTestRepl(t, Options{WorkDir: dir},
		".  inc.txt",
		".missing.txt",
		"echo after")
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out := con.out.String()
	for _, s := range []string{
		"included\n",
		"[ERROR] command 'nope' is not defined\n",
		"also\n",
		"[ERROR] can not execute 'missing.txt'",
		"[INFO] Executing 'missing.txt'\n",
		"after\n",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output %q does not contain %q", out, s)
		}
	}
	if strings.Index(out, "after\n") < strings.Index(out, "missing.txt") {
		t.Error("the loop should continue after a failed include")
	}
}

func TestRun_StartupFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "startup.txt", "alias e echo\n")

	r, con := newTestRepl(t, Options{WorkDir: dir, StartupFile: "startup.txt"}, "e from alias")
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out := con.out.String()
	for _, s := range []string{
		"Executing startup file " + filepath.Join(dir, "startup.txt") + "\n",
		"[INFO] e was set to alias echo\n",
		"from alias\n",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output %q does not contain %q", out, s)
		}
	}

	r, con = newTestRepl(t, Options{WorkDir: dir, StartupFile: "nope.txt"})
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(con.out.String(), "Startup file nope.txt was not found\n") {
		t.Errorf("output = %q", con.out.String())
	}
}

func TestRun_Shell(t *testing.T) {
	sh := &fakeShell{output: "file.txt\n"}
	r, con := newTestRepl(t, Options{Shell: sh}, "!ls -l", "! cd /tmp")
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out := con.out.String()
	if !strings.Contains(out, "[SHELL OUTPUT]\nfile.txt\n[END SHELL OUTPUT]\n") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "[ERROR] you can not change the working directory\n") {
		t.Errorf("output = %q", out)
	}
	if len(sh.calls) != 1 || sh.calls[0] != "ls -l" {
		t.Errorf("shell calls = %q", sh.calls)
	}

	failing := &fakeShell{err: errors.New("exit status 2")}
	r, con = newTestRepl(t, Options{Shell: failing}, "!false")
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(con.out.String(), "[EXCEPTION] exit status 2\n") {
		t.Errorf("output = %q", con.out.String())
	}
}

func TestRun_CancelledAndReadError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, con := newTestRepl(t, Options{}, "echo never")
	if err := r.Run(ctx, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(con.prompts) != 0 || strings.Contains(con.out.String(), "never") {
		t.Errorf("cancelled loop read input: %q", con.out.String())
	}

	broken := errors.New("broken terminal")
	r, con = newTestRepl(t, Options{})
	con.readErr = broken
	if err := r.Run(context.Background(), nil); !errors.Is(err, broken) {
		t.Errorf("Run() error = %v, want %v", err, broken)
	}
}

func TestBuiltin_Help(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "list",
			lines: []string{"help"},
			want: "Available commands:\n" +
				"alias myalias command\n" +
				"exit [confirm=yes]\n" +
				"help [command]\n" +
				"echo text ...\n" +
				"! cmd to execute shell commands\n" +
				". filename to execute the content of the file\n",
		},
		{
			name:  "command without help",
			lines: []string{"h ec"},
			want:  "echo text ...\nThere is no help defined for the command echo\n",
		},
		{
			name:  "unknown",
			lines: []string{"help nope"},
			want:  "nope is unknown\n",
		},
		{
			name:  "alias",
			lines: []string{"alias p echo", "help p"},
			want:  "[INFO] p was set to alias echo\np is an alias of echo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, con := newTestRepl(t, Options{})
			for _, line := range tt.lines {
				r.Dispatch(context.Background(), line)
			}
			if got := con.out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}

	r, con := newTestRepl(t, Options{})
	r.Dispatch(context.Background(), "help exit")
	if !strings.Contains(con.out.String(), "exit [confirm=yes]\nUse the command 'exit'") {
		t.Errorf("help exit = %q", con.out.String())
	}
}

func TestBuiltin_Alias(t *testing.T) {
	r, con := newTestRepl(t, Options{})
	ctx := context.Background()

	r.Dispatch(ctx, "alias say echo")
	r.Dispatch(ctx, "say hello")
	r.Dispatch(ctx, "alias say")
	r.Dispatch(ctx, "say again")
	r.Dispatch(ctx, "alias nothing")
	r.Dispatch(ctx, "alias")

	want := "[INFO] say was set to alias echo\n" +
		"hello\n" +
		"[INFO] say alias was removed\n" +
		"[ERROR] command 'say' is not defined\n" +
		"[WARNING] nothing is not an alias\n" +
		"[ERROR] usage: alias myalias command\n"
	if got := con.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestBuiltin_AliasNotChained(t *testing.T) {
	r, con := newTestRepl(t, Options{})
	r.SetAlias("first", "second")
	r.SetAlias("second", "echo")

	r.Dispatch(context.Background(), "first x")

	if got := con.out.String(); got != "[ERROR] command 'second' is not defined\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBuiltin_AliasToUndefinedCommand(t *testing.T) {
	r, con := newTestRepl(t, Options{})
	ctx := context.Background()

	r.Dispatch(ctx, "alias x nothing")
	r.Dispatch(ctx, "x 1")

	want := "[WARNING] command 'nothing' is not defined\n" +
		"[INFO] x was set to alias nothing\n" +
		"[ERROR] command 'nothing' is not defined\n"
	if got := con.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestBuiltin_HelpFullNameWins(t *testing.T) {
	r, con := newTestRepl(t, Options{})
	r.Register(&registry.Definition{Keyword: "ab", Usage: "ab", Help: "short one"})
	r.Register(&registry.Definition{Keyword: "abc", Usage: "abc", Help: "long one"})

	r.Dispatch(context.Background(), "help AB")
	if got := con.out.String(); got != "ab\nshort one\n" {
		t.Errorf("output = %q", got)
	}
}

func TestBuiltin_Override(t *testing.T) {
	r, con := newTestRepl(t, Options{})
	r.Register(&registry.Definition{
		Keyword: "help",
		Executor: func(env *executor.Environment) {
			env.Console().Write("custom help\n")
		},
	})

	r.Dispatch(context.Background(), "help")
	if con.out.String() != "custom help\n" {
		t.Errorf("output = %q", con.out.String())
	}
}

func TestState_String(t *testing.T) {
	if StateInclude.String() != "INCLUDE_FILE" || StateScript.String() != "SCRIPT_MODE" {
		t.Error("unexpected state names")
	}
	if State(99).String() != "UNKNOWN" {
		t.Error("unknown state should render as UNKNOWN")
	}
}
