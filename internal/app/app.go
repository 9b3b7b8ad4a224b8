// Package app wires configuration, logging and the run modes (one-shot
// comparison, REPL, dashboard and completion) into the decicalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/decicalc/internal/cli"
	"github.com/agbru/decicalc/internal/config"
	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/logging"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/tui"
	"github.com/agbru/decicalc/internal/ui"
)

// Application is one configured decicalc invocation.
type Application struct {
	Config    config.AppConfig
	Factory   multiply.Factory
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory replaces the algorithm registry.
func WithFactory(f multiply.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput replaces the reader used by the REPL.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New parses args (program name first) into an Application.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = multiply.GlobalFactory()
	}

	programName := "decicalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	logging.Setup(level, a.ErrWriter, a.Config.JSONOutput)
	ui.InitTheme(a.Config.NoColor || a.Config.JSONOutput)

	switch {
	case a.Config.Interactive:
		return a.runREPL(out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	}
	return a.runCalculate(ctx, out)
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		Order:       a.Config.ToOptions().Order,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	multipliers := orchestration.SelectMultipliers(a.Config, a.Factory)
	return tui.Run(ctx, multipliers, a.Config, Version)
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps an error returned by New to an exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	default:
		return apperrors.ExitErrorConfig
	}
}
