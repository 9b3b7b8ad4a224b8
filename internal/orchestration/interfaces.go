package orchestration

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/agbru/decicalc/internal/multiply"
)

// MultiplicationResult is the outcome of one algorithm in a comparison run.
type MultiplicationResult struct {
	// Name is the registry name of the algorithm (e.g., "grid").
	Name string
	// Product is the canonical decimal rendering; empty when Err is set.
	Product  string
	Duration time.Duration
	Err      error
}

// Skipped reports whether the algorithm declined the operands (for instance
// a fixed-precision reference given operands beyond its range). Skipped
// results neither fail the run nor take part in the comparison.
func (r MultiplicationResult) Skipped() bool {
	return errors.Is(r.Err, multiply.ErrUnsupported)
}

// OK reports whether the algorithm produced a product.
func (r MultiplicationResult) OK() bool { return r.Err == nil }

// PresentationOptions configures how the agreed product is shown.
type PresentationOptions struct {
	A       string
	B       string
	Verbose bool
	Details bool
}

// ProgressReporter displays progress while multipliers run.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, numMultipliers int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, numMultipliers int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, numMultipliers int, out io.Writer) {
	f(wg, progressChan, numMultipliers, out)
}

// NullProgressReporter drains updates silently. Used in quiet and JSON modes.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders the outcome of a comparison run.
type ResultPresenter interface {
	PresentComparisonTable(results []MultiplicationResult, out io.Writer)
	PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer)
	HandleError(err error, duration time.Duration, out io.Writer) int
}
