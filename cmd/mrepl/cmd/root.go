// ============================================================================
// mREPL - Line-oriented command shell engine
// ============================================================================
//
// Package:     cmd
// Description: Root command of the mrepl binary
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/mrepl/foundation/core/log"
	"github.com/msto63/mrepl/foundation/repl"
	"github.com/msto63/mrepl/foundation/repl/console"
	"github.com/msto63/mrepl/pkg/core/config"
	"github.com/msto63/mrepl/pkg/core/logging"
)

var (
	cfgFile     string
	debug       bool
	startupFile string
	prompt      string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "mrepl [script]",
	Short: "mREPL - Line-oriented command shell",
	Long: `mREPL is a line-oriented command shell built on the mREPL engine.

Without arguments it reads commands interactively. With a script argument
it executes the lines of the file and exits.

Commands:
  echo     - print the parameters
  return   - format a value, optionally delayed until the next command
  abs      - absolute value of a complex number (a+bi or R(rad))
  help     - list the commands or show the help of one
  alias    - define an alias for a command
  exit     - leave the shell`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("mrepl", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MREPL_CONFIG or ./mrepl.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print stack traces of failing commands")
	rootCmd.PersistentFlags().StringVar(&startupFile, "startup", "", "file executed before the first prompt")
	rootCmd.PersistentFlags().StringVar(&prompt, "prompt", "", "interactive prompt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()
	defer logger.Sync() //nolint:errcheck

	session := uuid.NewString()
	logger = logger.WithField("session", session)

	ctx, stop := runContext(cmd.Context(), args)
	defer stop()

	var r *repl.Repl
	cons, warnings := console.Detect(cmd.InOrStdin(), cmd.OutOrStdout(), func() []string {
		return r.Registry().Completions()
	})

	wd, _ := os.Getwd()
	r = newApplication(repl.Options{
		Title:           cfg.REPL.Title,
		Prompt:          cfg.REPL.Prompt,
		StartupFile:     cfg.REPL.StartupFile,
		Debug:           cfg.REPL.Debug,
		Console:         cons,
		StartupWarnings: warnings,
		Logger:          logger,
		WorkDir:         wd,
		Session:         session,
	})
	for name, target := range cfg.Aliases {
		r.SetAlias(name, target)
	}

	logger.Debug("starting", mdwlog.Fields{"args": args, "aliases": len(cfg.Aliases)})
	return r.Run(ctx, args)
}

// runContext traps SIGINT and SIGTERM in script mode, where the script stops
// between lines. Interactive mode keeps the default signal behaviour so that
// Ctrl-C ends the process while a line read is blocked.
func runContext(parent context.Context, args []string) (context.Context, context.CancelFunc) {
	if len(args) == 0 {
		return parent, func() {}
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// loadConfig reads --config when given, otherwise MREPL_CONFIG or the
// default locations. A missing default file is not an error.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if errors.Is(err, config.ErrNoConfigFile) {
		return config.Default(), nil
	}
	return cfg, err
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.REPL.Debug = debug
	}
	if flags.Changed("startup") {
		cfg.REPL.StartupFile = startupFile
	}
	if flags.Changed("prompt") {
		cfg.REPL.Prompt = prompt
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if cfg.REPL.Title == "" {
		cfg.REPL.Title = defaultTitle
	}
}

func newLogger(cfg *config.Config, stderr io.Writer) (*mdwlog.Logger, func(), error) {
	lc := logging.LoggerConfig{
		Name:   "mrepl",
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: stderr,
	}
	if cfg.Log.File == "" {
		return logging.NewLogger(lc), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lc.Output = f
	return logging.NewLogger(lc), func() { f.Close() }, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
