package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metric family names exported by the multiply package.
const (
	countFamily    = "decicalc_multiplications_total"
	durationFamily = "decicalc_multiplication_duration_seconds"
)

// AlgorithmStats aggregates the counters of one algorithm.
type AlgorithmStats struct {
	Name     string
	Success  uint64
	Errors   uint64
	Skipped  uint64
	Canceled uint64
	// MeanSeconds is the mean duration over every observed call.
	MeanSeconds float64
}

// Calls returns the number of recorded multiplications.
func (s AlgorithmStats) Calls() uint64 {
	return s.Success + s.Errors + s.Skipped + s.Canceled
}

// Summarize gathers the multiplication metrics from g and returns one entry
// per algorithm, sorted by name.
func Summarize(g prometheus.Gatherer) ([]AlgorithmStats, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*AlgorithmStats)
	entry := func(m *dto.Metric) *AlgorithmStats {
		name := label(m, "algorithm")
		s, ok := byName[name]
		if !ok {
			s = &AlgorithmStats{Name: name}
			byName[name] = s
		}
		return s
	}

	for _, mf := range families {
		switch mf.GetName() {
		case countFamily:
			for _, m := range mf.GetMetric() {
				n := uint64(m.GetCounter().GetValue())
				s := entry(m)
				switch label(m, "status") {
				case "success":
					s.Success += n
				case "skipped":
					s.Skipped += n
				case "canceled":
					s.Canceled += n
				default:
					s.Errors += n
				}
			}
		case durationFamily:
			for _, m := range mf.GetMetric() {
				h := m.GetHistogram()
				if h.GetSampleCount() > 0 {
					entry(m).MeanSeconds = h.GetSampleSum() / float64(h.GetSampleCount())
				}
			}
		}
	}

	stats := make([]AlgorithmStats, 0, len(byName))
	for _, s := range byName {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats, nil
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
