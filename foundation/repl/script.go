// File: script.go
// Title: Script Execution
// Description: Executes the lines of a script file through dispatch, used
//              for script mode, "." includes and the startup file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
	"github.com/msto63/mrepl/foundation/core/log"
	mdwstringx "github.com/msto63/mrepl/foundation/utils/stringx"
)

// RunFile dispatches every non-blank line of the named file. A failing line
// is reported and the following lines still run. A file that can not be
// read is reported as an error and RunFile returns.
func (r *Repl) RunFile(ctx context.Context, name string) {
	r.sink.Infof("Executing '%s'", name)

	f, err := os.Open(r.absPath(name))
	if err != nil {
		r.reportFileError(name, err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if ctx.Err() != nil {
			break
		}

		line := scanner.Text()
		if mdwstringx.IsBlank(line) {
			continue
		}

		r.logger.Trace("script line", log.Fields{"file": name, "line": lineNo})
		r.Dispatch(ctx, line)
		if r.exit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		r.reportFileError(name, err)
		return
	}
	r.flushMessages()
}

func (r *Repl) reportFileError(name string, err error) {
	code := mdwerror.CodeInternal
	if errors.Is(err, fs.ErrNotExist) {
		code = mdwerror.CodeScriptFileNotFound
	}

	wrapped := mdwerror.Wrap(err, fmt.Sprintf("can not execute '%s'", name)).
		WithCode(code).
		WithDetail("file", name)
	r.sink.Error(wrapped.Error())
	r.logger.LogError(wrapped)
	r.flushMessages()
}

func (r *Repl) runStartupFile(ctx context.Context) {
	if r.opts.StartupFile == "" {
		return
	}

	path := r.absPath(r.opts.StartupFile)
	if _, err := os.Stat(path); err != nil {
		r.console.Write(fmt.Sprintf("Startup file %s was not found\n", r.opts.StartupFile))
		r.flushMessages()
		return
	}

	r.console.Write(fmt.Sprintf("Executing startup file %s\n", path))
	r.RunFile(ctx, path)
}
