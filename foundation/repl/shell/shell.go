// File: shell.go
// Title: Shell Passthrough
// Description: Runs a command line in the shell of the host operating system
//              and reports its output through the console.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package shell

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	mdwerror "github.com/msto63/mrepl/foundation/core/error"
)

// Markers around captured shell output
const (
	OutputStart = "[SHELL OUTPUT]"
	OutputEnd   = "[END SHELL OUTPUT]"
)

// Runner executes a shell command line and returns its combined output
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// OSRunner runs commands through sh -c, or cmd.exe /c on Windows
type OSRunner struct {
	// Dir is the working directory of the child process; "" uses the current one
	Dir string
}

// Run implements Runner. It blocks until the child has exited and its output
// has been drained.
func (r OSRunner) Run(ctx context.Context, command string) (string, error) {
	name, args := shellCommand(runtime.GOOS, command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), mdwerror.Wrap(err, "shell command failed").
			WithCode(mdwerror.CodeShellInvocationFailed).
			WithDetail("command", command).
			WithDetail("output", strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

func shellCommand(goos, command string) (string, []string) {
	if goos == "windows" {
		return "cmd.exe", []string{"/c", command}
	}
	return "sh", []string{"-c", command}
}

// Writer receives the rendered passthrough result
type Writer interface {
	Write(text string)
}

// Passthrough runs command with runner and writes the tagged result to w.
// Changing the working directory is refused since it cannot outlive the
// child process. The returned error is the runner's failure, already
// reported to w.
func Passthrough(ctx context.Context, runner Runner, command string, w Writer) error {
	command = strings.TrimSpace(command)
	if command == "cd" || strings.HasPrefix(command, "cd ") {
		w.Write("[ERROR] you can not change the working directory\n")
		return nil
	}

	out, err := runner.Run(ctx, command)
	if err != nil {
		w.Write(fmt.Sprintf("[EXCEPTION] %s\n", describe(err)))
		return err
	}

	var b strings.Builder
	b.WriteString(OutputStart)
	b.WriteByte('\n')
	b.WriteString(out)
	if out != "" && !strings.HasSuffix(out, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(OutputEnd)
	b.WriteByte('\n')
	w.Write(b.String())
	return nil
}

func describe(err error) string {
	detail := err.Error()
	if e, ok := err.(*mdwerror.Error); ok {
		if out, found := e.Detail("output"); found && out != "" {
			detail = fmt.Sprintf("%s\n%s", detail, out)
		}
	}
	return detail
}
