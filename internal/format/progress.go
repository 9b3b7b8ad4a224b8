package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ProgressState tracks the progress of several concurrent multipliers and
// exposes their average together with a remaining-time estimate.
type ProgressState struct {
	mu        sync.Mutex
	values    []float64
	startTime time.Time
	now       func() time.Time
}

// NewProgressState returns a tracker for n multipliers, all at zero.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		values:    make([]float64, n),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// Update records the progress of multiplier index and returns the new
// average. Out of range indices are ignored and values are clamped to [0,1].
func (p *ProgressState) Update(index int, value float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index >= 0 && index < len(p.values) {
		p.values[index] = min(max(value, 0), 1)
	}
	return p.averageLocked()
}

// Average returns the mean progress across all multipliers.
func (p *ProgressState) Average() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.averageLocked()
}

func (p *ProgressState) averageLocked() float64 {
	if len(p.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.values {
		sum += v
	}
	return sum / float64(len(p.values))
}

// ETA extrapolates the remaining time from the average rate since start.
// It returns 0 while no progress has been made.
func (p *ProgressState) ETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	avg := p.averageLocked()
	if avg <= 0 || avg >= 1 {
		return 0
	}
	elapsed := p.now().Sub(p.startTime)
	return time.Duration(float64(elapsed) * (1 - avg) / avg)
}

// ProgressBar renders progress (0..1) as a bar of the given width.
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(min(max(progress, 0), 1) * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ProgressLine combines bar, percentage and ETA in one status line.
func ProgressLine(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%s %6.2f%% ETA %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
