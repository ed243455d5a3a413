// File: builtins.go
// Title: Built-in Commands
// Description: The commands every REPL starts with: help, alias and exit.
//              Applications can replace them by registering a command with
//              the same keyword.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package repl

import (
	"fmt"
	"strings"

	"github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl/executor"
	"github.com/msto63/mrepl/foundation/repl/parser"
	"github.com/msto63/mrepl/foundation/repl/registry"
)

// ExitVetoWarning is recorded when the exit veto refuses to exit
const ExitVetoWarning = "exit was vetoed, use 'exit confirm=yes' to force"

func (r *Repl) registerBuiltins() {
	r.registry.Register(&registry.Definition{
		Keyword:    "alias",
		Parameters: parser.Names(),
		Usage:      "alias myalias command",
		Help: "You can freely define aliases for any command.\n" +
			"You cannot define alias to an alias.\n" +
			"Use 'alias myalias' without command to remove the alias.",
		Executor: r.aliasCommand,
	})
	r.registry.Register(&registry.Definition{
		Keyword:    registry.ExactMarker + "exit",
		Parameters: parser.Names("confirm"),
		Usage:      "exit [confirm=yes]",
		Help: "Use the command 'exit' without parameters to exit from the REPL application.\n" +
			"The keyword can not be abbreviated.",
		Executor: r.exitCommand,
	})
	r.registry.Register(&registry.Definition{
		Keyword:    "help",
		Parameters: parser.Names(),
		Usage:      "help [command]",
		Help:       "Lists the available commands, or shows the help of one command.",
		Executor:   r.helpCommand,
	})
}

func (r *Repl) helpCommand(env *executor.Environment) {
	out := env.Console()

	name, ok := env.Params().Positional(0)
	if !ok {
		var b strings.Builder
		b.WriteString("Available commands:\n")
		for def := range r.registry.All() {
			b.WriteString(def.UsageOrName())
			b.WriteByte('\n')
		}
		b.WriteString("! cmd to execute shell commands\n")
		b.WriteString(". filename to execute the content of the file\n")
		out.Write(b.String())
		return
	}

	if target, isAlias := r.registry.Alias(name); isAlias {
		out.Write(fmt.Sprintf("%s is an alias of %s\n", name, target))
		return
	}

	// a full name wins over other commands it is a prefix of
	def, ok := r.registry.Lookup(name)
	if !ok {
		var err error
		if def, err = r.registry.Resolve(name); err != nil {
			out.Write(fmt.Sprintf("%s is unknown\n", name))
			return
		}
	}

	var b strings.Builder
	b.WriteString(def.UsageOrName())
	b.WriteByte('\n')
	if def.Help == "" {
		b.WriteString(fmt.Sprintf("There is no help defined for the command %s\n", def.Name()))
	} else {
		b.WriteString(def.Help)
		b.WriteByte('\n')
	}
	out.Write(b.String())
}

func (r *Repl) aliasCommand(env *executor.Environment) {
	name, ok := env.Params().Positional(0)
	if !ok {
		env.Message().Error("usage: alias myalias command")
		return
	}

	target, ok := env.Params().Positional(1)
	if !ok {
		if _, exists := r.registry.Alias(name); !exists {
			env.Message().Warningf("%s is not an alias", name)
			return
		}
		r.registry.RemoveAlias(name)
		env.Message().Infof("%s alias was removed", name)
		return
	}

	r.registry.SetAlias(name, target)
	env.Message().Infof("%s was set to alias %s", name, target)
	if _, err := r.registry.Resolve(name); registry.IsUnresolved(err) {
		env.Message().Warning(errorText(err))
	}
}

func (r *Repl) exitCommand(env *executor.Environment) {
	force, _, err := env.Params().GetFrom("confirm", "yes", "no")
	if err != nil {
		env.Message().Error(errorText(err))
		return
	}

	if force != "yes" && r.opts.ExitVeto != nil && !r.opts.ExitVeto(env) {
		env.Message().Warning(ExitVetoWarning)
		r.logger.Info("exit vetoed", log.Fields{"keyword": env.Keyword()})
		return
	}

	r.exit = true
}
