package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
)

// programRef is a pointer to the running program that survives the model
// copies bubbletea makes on every Update.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram stores the program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter forwards aggregated progress updates to the program.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains progressChan and sends one ProgressMsg per update.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, numMultipliers int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numMultipliers)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			Index:           ap.Index,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter sends results to the program instead of writing them.
type TUIResultPresenter struct {
	ref *programRef
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the sorted results.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.MultiplicationResult, _ io.Writer) {
	cp := make([]orchestration.MultiplicationResult, len(results))
	copy(cp, results)
	t.ref.Send(ComparisonResultsMsg{Results: cp})
}

// PresentResult sends the agreed product.
func (t *TUIResultPresenter) PresentResult(result orchestration.MultiplicationResult, _ orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result})
}

// HandleError sends the failure and returns its exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleCalculationError(err, duration, io.Discard, nil)
}
