// File: dispatch.go
// Title: Command Dispatch
// Description: Runs one command line through resolution, parameter parsing,
//              regex variant selection and the executor, and reports the
//              accumulated messages.
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
	"fmt"
	"runtime/debug"
	"strings"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
	"github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/executor"
	"github.com/msto63/mrepl/foundation/repl/message"
	"github.com/msto63/mrepl/foundation/repl/parser"
	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

const maxExceptionSummary = 200

// Dispatch executes one command line. Failures are recorded as errors in the
// message sink; a panicking executor is reported as an exception. The
// messages are written to the console afterwards.
func (r *Repl) Dispatch(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	r.setState(StateDispatch)
	env := r.execute(ctx, line)

	r.setState(StateReport)
	if r.opts.StateReporter != nil {
		r.call("state reporter", r.opts.StateReporter, env)
	}
	r.flushMessages()
}

func (r *Repl) execute(ctx context.Context, line string) *executor.Environment {
	keyword, remainder := mdwstringx.SplitKeyword(line)
	inv := executor.Invocation{
		Context: ctx,
		Keyword: keyword,
		Line:    remainder,
		Console: r.console,
		Message: r.sink,
		Logger:  r.logger,
		Session: r.opts.Session,
		WorkDir: r.opts.WorkDir,
	}

	def, err := r.registry.Resolve(keyword)
	if err == nil {
		inv.Params, err = parser.Parse(remainder, def.Parameters)
	}
	if err == nil {
		inv.Match, err = def.Patterns.Select(remainder)
	}

	env := executor.NewEnvironment(inv)
	if err != nil {
		r.sink.Error(errorText(err))
		r.logger.Debug("dispatch failed", log.Fields{
			"keyword":    keyword,
			"error_code": mdwerror.GetCode(err).String(),
		})
		return env
	}

	r.logger.Debug("dispatching command", log.Fields{
		"keyword": def.Name(),
		"typed":   keyword,
		"variant": env.MatchName(),
	})
	if def.Executor != nil {
		r.call(def.Name(), def.Executor, env)
	}
	return env
}

// call runs fn, turning a panic into an exception line
func (r *Repl) call(name string, fn executor.Func, env *executor.Environment) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		summary := panicSummary(rec)
		r.console.Write(fmt.Sprintf("%s %s\n", message.TagException, summary))
		if r.opts.Debug {
			r.console.Write(string(debug.Stack()))
		}

		err := mdwerror.New(summary).
			WithCode(mdwerror.CodeExecutorPanic).
			WithOperation(name).
			WithDetail("keyword", env.Keyword())
		r.logger.LogError(err)
	}()

	fn(env)
}

func panicSummary(rec interface{}) string {
	var text string
	switch v := rec.(type) {
	case error:
		text = v.Error()
	case string:
		text = v
	default:
		text = fmt.Sprint(v)
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return mdwstringx.Truncate(text, maxExceptionSummary, "...")
}

func errorText(err error) string {
	if e, ok := err.(*mdwerror.Error); ok {
		return e.Message()
	}
	return err.Error()
}
