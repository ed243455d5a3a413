package cmd

import (
	"math"
	"strconv"

	"github.com/msto63/mrepl/foundation/repl"
	"github.com/msto63/mrepl/foundation/repl/executor"
	"github.com/msto63/mrepl/foundation/repl/parser"
	"github.com/msto63/mrepl/foundation/repl/registry"
)

const defaultTitle = "Sample REPL Application to end-to-end manual test the application"

// application holds the state shared by the sample commands
type application struct {
	// pending is the value a delayed return reports after the next command
	pending  string
	reported bool
}

// newApplication creates a REPL with the sample commands registered
func newApplication(opts repl.Options) *repl.Repl {
	app := &application{}
	opts.StateReporter = app.report

	r := repl.New(opts)
	r.Register(&registry.Definition{
		Keyword:    "echo",
		Parameters: parser.Names(),
		Usage:      "echo parameters",
		Help:       "Use echo to print out to the console the parameters that are given on the line",
		Executor:   app.echo,
	}).SetAlias("e", "echo")

	r.Register(&registry.Definition{
		Keyword:    "return",
		Parameters: parser.Names("immediate", "delayed", "format"),
		Usage:      "return value [format=dec|hex|bin] [delayed=yes]",
		Help:       "Use return to calculate a value and return it to the console.",
		Executor:   app.ret,
	}).SetAlias("ret", "return").SetAlias("a", "alias")

	r.Register(&registry.Definition{
		Keyword: "abs",
		Patterns: executor.NewPatterns().
			MustAdd("canonical", `(\d+)\s*\+(\d+)i`).
			MustAdd("polar", `(\d+)\((\d+\.?\d*)\)`),
		Usage: "abs complexnumber",
		Help: "Print out the absolut value of a complex number\n" +
			"You can specify the complex number in a+bi format or\n" +
			"R(rad) format.",
		Executor: app.abs,
	})
	return r
}

func (a *application) echo(env *executor.Environment) {
	for _, v := range env.Params().Values() {
		env.Message().Info(v)
	}
}

func (a *application) ret(env *executor.Environment) {
	p := env.Params()
	raw := p.GetOrDefault("immediate", p.PositionalOrDefault(0, ""))
	if raw == "" {
		env.Message().Error("usage: return value")
		return
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		env.Message().Errorf("%s is not an integer", raw)
		return
	}

	format, err := p.GetFromOrDefault("format", "dec", "dec", "hex", "bin")
	if err != nil {
		env.Message().Error(err.Error())
		return
	}
	delayed, err := p.GetFromOrDefault("delayed", "no", "yes", "no")
	if err != nil {
		env.Message().Error(err.Error())
		return
	}

	value := formatInt(n, format)
	if delayed == "yes" {
		a.pending = value
		a.reported = false
		env.Message().Info("value is reported after the next command")
		return
	}
	env.Message().Info(value)
}

func (a *application) abs(env *executor.Environment) {
	m := env.Match()
	if env.MatchName() == "polar" {
		env.Message().Info(m.Group(1))
		return
	}
	re, _ := strconv.ParseFloat(m.Group(1), 64)
	im, _ := strconv.ParseFloat(m.Group(2), 64)
	env.Message().Info(strconv.FormatFloat(math.Hypot(re, im), 'g', -1, 64))
}

// report prints a delayed return value once another command has run
func (a *application) report(env *executor.Environment) {
	if a.pending == "" {
		return
	}
	if !a.reported {
		a.reported = true
		return
	}
	env.Message().Infof("delayed value %s", a.pending)
	a.pending = ""
}

func formatInt(n int64, format string) string {
	switch format {
	case "hex":
		return "0x" + strconv.FormatInt(n, 16)
	case "bin":
		return "0b" + strconv.FormatInt(n, 2)
	default:
		return strconv.FormatInt(n, 10)
	}
}
