package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/decicalc/internal/cli"
	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/fixed"
	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/ui"
)

// runCalculate runs the one-shot comparison of every selected algorithm.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	if code := a.validateOperands(); code != apperrors.ExitSuccess {
		return code
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	multipliers := orchestration.SelectMultipliers(a.Config, a.Factory)

	silent := a.Config.Quiet || a.Config.JSONOutput
	if !silent {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(multipliers, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if silent {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	before := metrics.ReadMemory()
	results := orchestration.ExecuteMultiplications(ctx, multipliers, a.Config, reporter, progressOut)
	after := metrics.ReadMemory()

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
	}

	switch {
	case a.Config.JSONOutput:
		return a.reportJSON(results, outputCfg, out)
	case a.Config.Quiet:
		return a.reportQuiet(results, outputCfg, out)
	}

	code := orchestration.AnalyzeComparisonResults(results, a.Config, cli.CLIResultPresenter{}, out)
	if code == apperrors.ExitSuccess {
		if err := a.saveResult(results[0], outputCfg, out); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}
	if a.Config.Details {
		cli.DisplayMemoryStats(before, after, out)
	}
	return code
}

// validateOperands rejects missing or malformed operands before any
// algorithm runs.
func (a *Application) validateOperands() int {
	operands := []struct{ field, value string }{{"a", a.Config.A}, {"b", a.Config.B}}
	for _, op := range operands {
		if op.value == "" {
			err := apperrors.ValidationError{Field: op.field, Message: "two operands are required (e.g. decicalc 12.5 4 or -a 12.5 -b 4)"}
			fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
			return apperrors.ExitErrorConfig
		}
	}
	for _, op := range operands {
		if _, err := fixed.Parse(op.value); err != nil {
			return apperrors.HandleCalculationError(apperrors.WrapError(err, "operand %s", op.field), 0, a.ErrWriter, nil)
		}
	}
	return apperrors.ExitSuccess
}

func (a *Application) reportJSON(results []orchestration.MultiplicationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	code := orchestration.AnalyzeComparisonResults(results, a.Config, quietPresenter{}, io.Discard)
	if err := cli.WriteJSON(out, cli.BuildJSONReport(a.Config.A, a.Config.B, results)); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing JSON: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if code == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(results[0], a.Config.A, a.Config.B, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return code
}

func (a *Application) reportQuiet(results []orchestration.MultiplicationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	code := orchestration.AnalyzeComparisonResults(results, a.Config, quietPresenter{errOut: a.ErrWriter}, io.Discard)
	switch code {
	case apperrors.ExitSuccess:
		if err := cli.DisplayResultWithConfig(out, results[0], a.Config.A, a.Config.B, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	case apperrors.ExitErrorMismatch:
		_, left, right := orchestration.Mismatch(results)
		fmt.Fprintf(a.ErrWriter, "Status: Failure. '%s' and '%s' returned different products.\n", left, right)
	}
	return code
}

func (a *Application) saveResult(best orchestration.MultiplicationResult, outputCfg cli.OutputConfig, out io.Writer) error {
	if outputCfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(best, a.Config.A, a.Config.B, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s %s\n", t.Paint(t.Success, "✓ Result saved to:"), t.Paint(t.Info, outputCfg.OutputFile))
	return nil
}

// quietPresenter suppresses the comparison table and the product. Errors
// go to errOut when it is set.
type quietPresenter struct {
	errOut io.Writer
}

func (quietPresenter) PresentComparisonTable([]orchestration.MultiplicationResult, io.Writer) {}

func (quietPresenter) PresentResult(orchestration.MultiplicationResult, orchestration.PresentationOptions, io.Writer) {
}

func (p quietPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	out := p.errOut
	if out == nil {
		out = io.Discard
	}
	return apperrors.HandleCalculationError(err, duration, out, nil)
}
