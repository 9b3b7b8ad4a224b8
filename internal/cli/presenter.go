package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/format"
	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/ui"
)

// CLIProgressReporter shows the spinner and progress bar of DisplayProgress.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress implements orchestration.ProgressReporter.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, numMultipliers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numMultipliers, out)
}

// CLIResultPresenter renders comparison runs for the terminal.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// themeColors adapts the active theme to apperrors.ColorProvider.
type themeColors struct{}

func (themeColors) Yellow() string { return ui.GetCurrentTheme().Warning }
func (themeColors) Reset() string  { return ui.GetCurrentTheme().Reset }

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// PresentComparisonTable prints one row per algorithm. Padding is computed
// on the plain text so that escape sequences do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.MultiplicationResult, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, durWidth := len("Algorithm"), len("Duration")
	for _, r := range results {
		nameWidth = max(nameWidth, len(r.Name))
		durWidth = max(durWidth, len(displayDuration(r.Duration)))
	}

	fmt.Fprintf(out, "%s%s   %s   %s\n",
		t.Paint(t.Underline, "Algorithm"), pad(nameWidth-len("Algorithm")),
		t.Paint(t.Underline, "Duration")+pad(durWidth-len("Duration")),
		t.Paint(t.Underline, "Status"))

	for _, r := range results {
		var status string
		switch {
		case r.OK():
			status = t.Paint(t.Success, "✅ Success")
		case r.Skipped():
			status = t.Paint(t.Warning, "⏭  Skipped (operands out of range)")
		default:
			status = t.Paint(t.Error, fmt.Sprintf("❌ Failure (%v)", r.Err))
		}
		d := displayDuration(r.Duration)
		fmt.Fprintf(out, "%s%s   %s%s   %s\n",
			t.Paint(t.Primary, r.Name), pad(nameWidth-len(r.Name)),
			t.Paint(t.Warning, d), pad(durWidth-len(d)),
			status)
	}
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// PresentResult prints the agreed product.
func (CLIResultPresenter) PresentResult(result orchestration.MultiplicationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// HandleError maps err to an exit code and prints the status line.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, themeColors{})
}

// DisplayResult prints the product, truncated unless opts.Verbose, and
// with digit statistics when opts.Details is set.
func DisplayResult(result orchestration.MultiplicationResult, opts orchestration.PresentationOptions, out io.Writer) {
	t := ui.GetCurrentTheme()
	product := result.Product

	if opts.Details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Fastest algorithm : %s\n", t.Paint(t.Primary, result.Name))
		fmt.Fprintf(out, "Multiplication time : %s\n", t.Paint(t.Success, displayDuration(result.Duration)))
		fmt.Fprintf(out, "Operand digits    : %s × %s\n",
			format.GroupDigits(fmt.Sprint(format.CountDigits(opts.A)), ','),
			format.GroupDigits(fmt.Sprint(format.CountDigits(opts.B)), ','))
		intPart, frac, _ := strings.Cut(strings.TrimPrefix(product, "-"), ".")
		fmt.Fprintf(out, "Product digits    : %s (%d after the point)\n",
			t.Paint(t.Info, format.GroupDigits(fmt.Sprint(len(intPart)+len(frac)), ',')), len(frac))
	}

	fmt.Fprintf(out, "\n%s--- Product ---%s\n", t.Bold, t.Reset)
	label := fmt.Sprintf("%s × %s", format.TruncateProduct(opts.A, DisplayEdges), format.TruncateProduct(opts.B, DisplayEdges))
	switch {
	case opts.Verbose:
		fmt.Fprintf(out, "%s =\n%s\n", label, t.Paint(t.Success, product))
	case len(product) > TruncationLimit:
		fmt.Fprintf(out, "%s (truncated) = %s\n", label, t.Paint(t.Success, format.TruncateProduct(product, DisplayEdges)))
		fmt.Fprintf(out, "(Tip: use the %s option to display the full product)\n", t.Paint(t.Warning, "-v"))
	default:
		fmt.Fprintf(out, "%s = %s\n", label, t.Paint(t.Success, format.GroupDigits(product, ',')))
	}
}

// DisplayMemoryStats prints the allocation done between two snapshots.
func DisplayMemoryStats(before, after metrics.MemorySnapshot, out io.Writer) {
	allocated, gcs := metrics.AllocatedSince(before, after)
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Allocated during run: %s bytes\n", format.GroupDigits(fmt.Sprint(allocated), ','))
	fmt.Fprintf(out, "  Heap in use:          %s bytes\n", format.GroupDigits(fmt.Sprint(after.HeapAlloc), ','))
	fmt.Fprintf(out, "  GC cycles:            %d\n", gcs)
}
