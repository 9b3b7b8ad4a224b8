package orchestration

import (
	"time"

	"github.com/agbru/decicalc/internal/format"
	"github.com/agbru/decicalc/internal/multiply"
)

// ProgressAggregator folds per-multiplier updates into an average and an
// ETA. The CLI spinner and the dashboard both consume it.
type ProgressAggregator struct {
	state *format.ProgressState
	n     int
}

// NewProgressAggregator returns nil when there is nothing to track.
func NewProgressAggregator(numMultipliers int) *ProgressAggregator {
	if numMultipliers <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressState(numMultipliers), n: numMultipliers}
}

// AggregatedProgress is the view after one update.
type AggregatedProgress struct {
	Index           int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update records one update.
func (a *ProgressAggregator) Update(update multiply.ProgressUpdate) AggregatedProgress {
	avg := a.state.Update(update.Index, update.Value)
	return AggregatedProgress{
		Index:           update.Index,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             a.state.ETA(),
	}
}

// Average returns the current mean progress.
func (a *ProgressAggregator) Average() float64 { return a.state.Average() }

// ETA returns the current remaining-time estimate.
func (a *ProgressAggregator) ETA() time.Duration { return a.state.ETA() }

// NumMultipliers returns how many multipliers are tracked.
func (a *ProgressAggregator) NumMultipliers() int { return a.n }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan multiply.ProgressUpdate) {
	for range progressChan {
	}
}
