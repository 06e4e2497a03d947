// Package cli wires the patterns command tree.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sghaida/docpatterns/internal/config"
	"github.com/sghaida/docpatterns/internal/logger"
	"github.com/sghaida/docpatterns/internal/printer"
)

// Execute runs the CLI against the process streams and exits non-zero on failure.
func Execute() {
	if err := Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Run executes the command tree with args. Every returned error has already
// been printed to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	cmd, a := newRoot(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil && !isReported(err) {
		err = a.fail(err, "Run 'patterns --help' for usage.")
	}
	return err
}

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	stdout io.Writer
	stderr io.Writer

	debug      bool
	noColor    bool
	configPath string

	cfg config.Config
	log *slog.Logger
	out *printer.Printer
}

// reportedError marks an error that was already printed to stderr.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func (a *app) fail(err error, hint string) error {
	return reportedError{err: a.out.Error(err, hint)}
}

func newRoot(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    logger.Discard(),
		out:    printer.New(stdout, stderr, true),
	}

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Factory and Mixin pattern demonstrations",
		Long: `patterns runs the Factory and Mixin demonstrations and prints the
comparison between the two patterns.

Run "patterns factory" or "patterns mixin" to see each sample's output.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.setup(c)
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with demo inputs")

	cmd.AddCommand(
		newFactoryCmd(a),
		newMixinCmd(a),
		newCompareCmd(a),
		newExplainCmd(a),
	)
	return cmd, a
}

// setup resolves config from env, then applies flags set on the command line.
// The demo file is read once, from --config if given, else PATTERNS_CONFIG.
func (a *app) setup(c *cobra.Command) error {
	flags := c.Flags()

	path, hint := "", "Check PATTERNS_CONFIG."
	if flags.Changed("config") {
		path, hint = a.configPath, "Check the --config file."
	}
	cfg, err := config.Load(path)
	if err != nil {
		return a.fail(err, hint)
	}

	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}

	a.cfg = cfg
	a.out = printer.New(a.stdout, a.stderr, cfg.NoColor)
	a.log = logger.Setup(logger.Config{Out: a.stderr, Debug: cfg.Debug})
	a.log.Debug("cli.start", "command", c.CommandPath(), "config", cfg.ConfigPath)
	return nil
}

// isReported reports whether err was already printed.
func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
