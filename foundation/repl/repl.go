// File: repl.go
// Title: REPL Instance
// Description: The REPL owns the command registry, the alias table and the
//              message sink of one interactive shell and wires them to the
//              console, the shell runner and the logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"os"

	"github.com/google/uuid"

	"github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/console"
	"github.com/msto63/mrepl/foundation/repl/executor"
	"github.com/msto63/mrepl/foundation/repl/message"
	"github.com/msto63/mrepl/foundation/repl/registry"
	"github.com/msto63/mrepl/foundation/repl/shell"
	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

// DefaultPrompt is shown when Options.Prompt is empty
const DefaultPrompt = "$ "

// Options configures a REPL
type Options struct {
	// Title is printed first when the interactive loop starts
	Title string

	// Prompt is shown before every interactive read
	Prompt string

	// StartupFile is executed once before the first interactive prompt
	StartupFile string

	// Debug adds stack traces to executor and shell failures
	Debug bool

	// Console defaults to console.Detect on the standard streams
	Console console.Console

	// StartupWarnings are reported when the REPL starts, e.g. the
	// warnings returned by console.Detect
	StartupWarnings []string

	// Shell runs "!" lines; defaults to shell.OSRunner in WorkDir
	Shell shell.Runner

	// Logger receives diagnostics; defaults to log.GetDefault()
	Logger *log.Logger

	// ExitVeto is asked before exit; returning false refuses to exit unless
	// the command carries confirm=yes
	ExitVeto func(env *executor.Environment) bool

	// StateReporter runs after every dispatch, whether or not the command
	// executed
	StateReporter executor.Func

	// WorkDir defaults to the current directory
	WorkDir string

	// Session identifies this REPL run; defaults to a random UUID
	Session string
}

// Repl is a line-oriented command shell. All methods must be called from
// the goroutine running the loop.
type Repl struct {
	opts     Options
	registry *registry.Registry
	sink     *message.Sink
	console  console.Console
	shell    shell.Runner
	logger   *log.Logger
	state    State
	exit     bool
}

// New creates a REPL with the built-in commands help, alias and exit
func New(opts Options) *Repl {
	opts.Prompt = mdwstringx.FromBlankDefault(opts.Prompt, DefaultPrompt)
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Session == "" {
		opts.Session = uuid.NewString()
	}
	if opts.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.WorkDir = wd
		}
	}
	if opts.Shell == nil {
		opts.Shell = shell.OSRunner{Dir: opts.WorkDir}
	}

	logger := opts.Logger.WithFields(log.Fields{
		"component": "repl",
		"session":   opts.Session,
	})

	r := &Repl{
		opts:     opts,
		registry: registry.New(registry.Options{Logger: opts.Logger}),
		sink:     message.New(),
		shell:    opts.Shell,
		logger:   logger,
		state:    StateInit,
	}

	for _, w := range opts.StartupWarnings {
		r.sink.Warning(w)
	}

	r.console = opts.Console
	if r.console == nil {
		var warnings []string
		r.console, warnings = console.Detect(os.Stdin, os.Stdout, r.registry.Completions)
		for _, w := range warnings {
			r.sink.Warning(w)
		}
	}

	r.registerBuiltins()
	return r
}

// Register adds or replaces a command
func (r *Repl) Register(def *registry.Definition) *Repl {
	r.registry.Register(def)
	return r
}

// SetAlias makes name an alias of target; an empty target removes it
func (r *Repl) SetAlias(name, target string) *Repl {
	r.registry.SetAlias(name, target)
	return r
}

// RemoveAlias removes the alias name
func (r *Repl) RemoveAlias(name string) *Repl {
	r.registry.RemoveAlias(name)
	return r
}

// Registry returns the command registry
func (r *Repl) Registry() *registry.Registry {
	return r.registry
}

// Message returns the message sink
func (r *Repl) Message() *message.Sink {
	return r.sink
}

// Console returns the console in use
func (r *Repl) Console() console.Console {
	return r.console
}

// Session returns the session id
func (r *Repl) Session() string {
	return r.opts.Session
}

// State returns the current state of the loop
func (r *Repl) State() State {
	return r.state
}

// Exiting reports whether an exit command has been accepted
func (r *Repl) Exiting() bool {
	return r.exit
}

func (r *Repl) setState(s State) {
	if r.state == s {
		return
	}
	r.logger.Trace("state change", log.Fields{
		"from": r.state.String(),
		"to":   s.String(),
	})
	r.state = s
}

// flushMessages writes the pending messages and flushes the console
func (r *Repl) flushMessages() {
	if text := r.sink.Fetch(); text != "" {
		r.console.Write(text)
	}
	if err := r.console.Flush(); err != nil {
		r.logger.WarnWithErr("console flush failed", err)
	}
}
