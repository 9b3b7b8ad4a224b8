package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/decicalc/internal/config"
	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/logging"
	"github.com/agbru/decicalc/internal/multiply"
)

// ProgressBufferMultiplier sizes the progress channel per multiplier so
// that a slow display rarely blocks an algorithm.
const ProgressBufferMultiplier = 5

// ExecuteMultiplications runs every multiplier on cfg.A and cfg.B
// concurrently and returns one result per multiplier, in input order.
//
// Individual failures are recorded in the results and never cancel the
// other algorithms. Each run is tagged with a fresh run id in the logs.
func ExecuteMultiplications(ctx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, progressReporter ProgressReporter, out io.Writer) []MultiplicationResult {
	runLog := logging.NewDefaultLogger().With(logging.RunID(uuid.NewString()))
	runLog.Debug("comparison started",
		logging.Int("multipliers", len(multipliers)),
		logging.Digits("a_len", len(cfg.A)),
		logging.Digits("b_len", len(cfg.B)),
	)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]MultiplicationResult, len(multipliers))
	progressChan := make(chan multiply.ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	opts := cfg.ToOptions()
	for i, m := range multipliers {
		g.Go(func() error {
			start := time.Now()
			product, err := m.Multiply(ctx, progressChan, i, cfg.A, cfg.B, opts)
			results[i] = MultiplicationResult{
				Name: m.Name(), Product: product, Duration: time.Since(start), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	for _, r := range results {
		if r.Err != nil && !r.Skipped() {
			runLog.Warn("multiplier failed", logging.Algorithm(r.Name), logging.Err(r.Err))
		}
	}
	runLog.Debug("comparison finished")
	return results
}

// SortResults orders results as successes, then skipped, then failures,
// each group by ascending duration.
func SortResults(results []MultiplicationResult) {
	rank := func(r MultiplicationResult) int {
		switch {
		case r.OK():
			return 0
		case r.Skipped():
			return 1
		}
		return 2
	}
	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := rank(results[i]), rank(results[j])
		if ri != rj {
			return ri < rj
		}
		return results[i].Duration < results[j].Duration
	})
}

// Mismatch reports whether two successful results disagree, and the names
// of the first disagreeing pair.
func Mismatch(results []MultiplicationResult) (bool, string, string) {
	var ref *MultiplicationResult
	for i := range results {
		if !results[i].OK() {
			continue
		}
		if ref == nil {
			ref = &results[i]
			continue
		}
		if results[i].Product != ref.Product {
			return true, ref.Name, results[i].Name
		}
	}
	return false, "", ""
}

// AnalyzeComparisonResults sorts the results, presents the comparison
// table and the agreed product, and returns the exit code of the run.
//
// The run fails when no algorithm produced a product, and returns
// ExitErrorMismatch when two products differ.
func AnalyzeComparisonResults(results []MultiplicationResult, cfg config.AppConfig, presenter ResultPresenter, out io.Writer) int {
	SortResults(results)
	presenter.PresentComparisonTable(results, out)

	var firstError error
	for _, r := range results {
		if r.Err != nil && firstError == nil && !r.Skipped() {
			firstError = r.Err
		}
	}
	if len(results) == 0 || !results[0].OK() {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		if firstError == nil && len(results) > 0 {
			firstError = results[0].Err
		}
		if firstError == nil {
			firstError = errors.New("no algorithm selected")
		}
		return presenter.HandleError(firstError, 0, out)
	}

	if bad, left, right := Mismatch(results); bad {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! '%s' and '%s' returned different products.\n", left, right)
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid products are consistent.\n")
	presenter.PresentResult(results[0], PresentationOptions{
		A: cfg.A, B: cfg.B, Verbose: cfg.Verbose, Details: cfg.Details,
	}, out)
	return apperrors.ExitSuccess
}
