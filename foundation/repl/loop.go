// File: loop.go
// Title: REPL Control Loop
// Description: The state machine driving the REPL: start-up, banner, script
//              mode and the interactive read loop with its blank, include,
//              shell and dispatch branches.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
	"github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/console"
	"github.com/msto63/mrepl/foundation/repl/shell"
	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

// Run starts the REPL. With a non-empty args[0] the named script is
// executed and Run returns; otherwise the banner is printed, the startup
// file is executed and lines are read until end of input, an accepted exit
// command or cancellation of ctx.
func (r *Repl) Run(ctx context.Context, args []string) error {
	r.setState(StateInit)
	r.flushMessages()

	if len(args) > 0 && mdwstringx.IsNotBlank(args[0]) {
		r.setState(StateScript)
		r.RunFile(ctx, args[0])
		r.setState(StateExit)
		return nil
	}

	r.setState(StateBanner)
	r.banner()
	r.runStartupFile(ctx)

	err := r.interact(ctx)
	r.setState(StateExit)
	return err
}

func (r *Repl) banner() {
	if r.opts.Title != "" {
		console.WriteTitle(r.console, r.opts.Title)
	}
	r.console.Write(fmt.Sprintf("CWD is %s\ntype 'help' for help\n", r.absPath(".")))
	r.flushMessages()
}

func (r *Repl) interact(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("loop cancelled", log.Fields{"reason": err.Error()})
			return nil
		}

		r.setState(StateRead)
		raw, err := r.console.ReadLine(r.opts.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.logger.Debug("end of input")
				return nil
			}
			return err
		}

		r.handleLine(ctx, raw)
		if r.exit {
			r.logger.Debug("exit accepted")
			return nil
		}
	}
}

// handleLine routes one interactive line
func (r *Repl) handleLine(ctx context.Context, raw string) {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		r.setState(StateBlank)

	case strings.HasPrefix(line, "."):
		r.setState(StateInclude)
		r.RunFile(ctx, strings.TrimLeft(line[1:], " \t"))

	case strings.HasPrefix(line, "!"):
		r.setState(StateShell)
		r.runShell(ctx, line[1:])

	default:
		r.Dispatch(ctx, line)
	}
}

func (r *Repl) runShell(ctx context.Context, command string) {
	err := shell.Passthrough(ctx, r.shell, command, r.console)
	if err != nil {
		r.logger.LogError(err)
		var e *mdwerror.Error
		if r.opts.Debug && errors.As(err, &e) {
			r.console.Write(e.FormatStack())
		}
	}
	r.flushMessages()
}

func (r *Repl) absPath(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	base := r.opts.WorkDir
	if base == "" {
		abs, err := filepath.Abs(name)
		if err != nil {
			return name
		}
		return abs
	}
	return filepath.Join(base, name)
}
