package tui

import (
	"time"

	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/sysmon"
)

// ProgressMsg carries one aggregated progress update from a running
// multiplier.
type ProgressMsg struct {
	Index           int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg is sent once the progress channel has been closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the sorted results of a run.
type ComparisonResultsMsg struct {
	Results []orchestration.MultiplicationResult
}

// FinalResultMsg carries the product the algorithms agreed on.
type FinalResultMsg struct {
	Result orchestration.MultiplicationResult
}

// ErrorMsg reports a run in which no algorithm produced a product.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// CalculationCompleteMsg ends a run. Generation identifies the run so that
// messages from a cancelled run are ignored.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the parent context ends.
type ContextCancelledMsg struct {
	Generation uint64
}

// MemStatsMsg carries a heap sample.
type MemStatsMsg struct {
	Snapshot     metrics.MemorySnapshot
	NumGoroutine int
}

// SysStatsMsg carries a host CPU and memory sample.
type SysStatsMsg struct {
	Stats sysmon.Stats
}

// TickMsg drives the elapsed timer and memory sampling.
type TickMsg time.Time
