package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/decicalc/internal/format"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
)

const (
	// TruncationLimit is the product length above which the standard
	// output shows only the edges of the product.
	TruncationLimit = 100
	// DisplayEdges is the number of characters kept at each end of a
	// truncated product.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner and progress bar refresh period.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in characters.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so tests can replace it.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                    { rs.s.Start() }
func (rs *realSpinner) Stop()                     { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[14], ProgressRefreshRate, options...)}
}

// DisplayProgress shows a spinner followed by the average progress of the
// running multipliers until progressChan is closed, then prints a final
// 100% line that stays on screen.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan multiply.ProgressUpdate, numMultipliers int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numMultipliers)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	label := "Progress"
	if numMultipliers > 1 {
		label = "Avg progress"
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				stopped = true
				fmt.Fprintf(out, "%s: %s\n", label, format.ProgressLine(1, 0, ProgressBarWidth))
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s: %s", label, format.ProgressLine(agg.Average(), agg.ETA(), ProgressBarWidth)))
		}
	}
}
