package tui

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/format"
	"github.com/agbru/decicalc/internal/orchestration"
)

const (
	resultBarWidth   = 24
	productEdgeWidth = 30
)

// ResultsModel tracks per-algorithm progress during a run and the
// comparison table once the run has finished.
type ResultsModel struct {
	names    []string
	progress []float64
	average  float64
	eta      time.Duration
	results  []orchestration.MultiplicationResult
	product  string
	err      error
	exitCode int
	done     bool
	width    int
}

// NewResultsModel returns a panel for the given algorithm names.
func NewResultsModel(names []string) ResultsModel {
	return ResultsModel{names: names, progress: make([]float64, len(names))}
}

// SetWidth updates the available width.
func (r *ResultsModel) SetWidth(w int) { r.width = w }

// Reset clears the panel for a new run.
func (r *ResultsModel) Reset() {
	*r = ResultsModel{names: r.names, progress: make([]float64, len(r.names)), width: r.width}
}

// UpdateProgress records one aggregated progress update.
func (r *ResultsModel) UpdateProgress(msg ProgressMsg) {
	if msg.Index >= 0 && msg.Index < len(r.progress) {
		r.progress[msg.Index] = msg.Value
	}
	r.average = msg.AverageProgress
	r.eta = msg.ETA
}

// SetResults stores the sorted comparison results.
func (r *ResultsModel) SetResults(results []orchestration.MultiplicationResult) {
	r.results = results
}

// SetProduct stores the agreed product.
func (r *ResultsModel) SetProduct(product string) { r.product = product }

// SetError stores the failure of a run.
func (r *ResultsModel) SetError(err error) { r.err = err }

// Finish marks the run as complete.
func (r *ResultsModel) Finish(exitCode int) {
	r.done = true
	r.exitCode = exitCode
	for i := range r.progress {
		r.progress[i] = 1
	}
	r.average = 1
}

// View renders progress while running and the comparison table afterwards.
func (r ResultsModel) View() string {
	var b strings.Builder
	if len(r.results) == 0 {
		r.writeProgress(&b)
	} else {
		r.writeTable(&b)
	}
	r.writeOutcome(&b)

	style := panelStyle
	if r.width > 2 {
		style = style.Width(r.width - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (r ResultsModel) nameWidth() int {
	w := len("Algorithm")
	for _, n := range r.names {
		w = max(w, len(n))
	}
	return w
}

func (r ResultsModel) writeProgress(b *strings.Builder) {
	w := r.nameWidth()
	for i, name := range r.names {
		p := r.progress[i]
		filled := int(min(max(p, 0), 1) * resultBarWidth)
		bar := barStyle.Render(strings.Repeat("█", filled)) + emptyBarStyle.Render(strings.Repeat("░", resultBarWidth-filled))
		fmt.Fprintf(b, "%-*s %s %6.2f%%\n", w, name, bar, p*100)
	}
	if !r.done && r.average > 0 {
		fmt.Fprintf(b, "%s %s\n", labelStyle.Render("Overall:"), format.ProgressLine(r.average, r.eta, resultBarWidth))
	}
}

func (r ResultsModel) writeTable(b *strings.Builder) {
	w := r.nameWidth()
	fmt.Fprintf(b, "%s\n", labelStyle.Render(fmt.Sprintf("%-*s  %-12s  %s", w, "Algorithm", "Duration", "Status")))
	for _, res := range r.results {
		var status string
		switch {
		case res.OK():
			status = successStyle.Render("OK")
		case res.Skipped():
			status = warningStyle.Render("Skipped")
		case apperrors.IsContextError(res.Err):
			status = warningStyle.Render("Cancelled")
		default:
			status = errorStyle.Render("Failure: " + res.Err.Error())
		}
		fmt.Fprintf(b, "%-*s  %-12s  %s\n", w, res.Name, format.FormatExecutionDuration(res.Duration), status)
	}
}

func (r ResultsModel) writeOutcome(b *strings.Builder) {
	if !r.done {
		return
	}
	b.WriteString("\n")
	switch {
	case r.err != nil:
		fmt.Fprintf(b, "%s %v\n", errorStyle.Render("Failure:"), r.err)
	case r.exitCode != 0 && r.product == "":
		fmt.Fprintf(b, "%s algorithms returned different products\n", errorStyle.Render("Mismatch:"))
	case r.product != "":
		fmt.Fprintf(b, "%s %s %s\n", successStyle.Render("Product:"),
			valueStyle.Render(format.TruncateProduct(r.product, productEdgeWidth)),
			dimStyle.Render(fmt.Sprintf("(%d digits)", format.CountDigits(r.product))))
	}
}
