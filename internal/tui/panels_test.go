package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/sysmon"
)

func TestRingBuffer(t *testing.T) {
	t.Parallel()
	rb := NewRingBuffer(3)
	if rb.Slice() != nil {
		t.Error("empty buffer should return nil")
	}
	for _, v := range []float64{1, 2, 3, 4} {
		rb.Push(v)
	}
	got := rb.Slice()
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	rb.Reset()
	if rb.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rb.Len())
	}
	if NewRingBuffer(0).data == nil {
		t.Error("zero capacity should be raised to one")
	}
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"zeros", []float64{0, 0}, "▁▁"},
		{"ramp", []float64{0, 50, 100}, "▁▄█"},
		{"negative", []float64{-5, 10}, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderSparkline(tt.values); got != tt.want {
				t.Errorf("RenderSparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestMetricsModel(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()
	m.SetWidth(60)
	m.Update(MemStatsMsg{Snapshot: metrics.MemorySnapshot{HeapAlloc: 3 << 20, Sys: 1 << 30, NumGC: 4}, NumGoroutine: 9})
	m.Update(MemStatsMsg{Snapshot: metrics.MemorySnapshot{HeapAlloc: 6 << 20, Sys: 1 << 30, NumGC: 5}, NumGoroutine: 9})
	m.UpdateHost(SysStatsMsg{Stats: sysmon.Stats{CPUPercent: 37.5, MemPercent: 61.5, LogicalCPUs: 8}})

	if m.heap.Len() != 2 {
		t.Errorf("heap samples = %d, want 2", m.heap.Len())
	}
	view := m.View()
	for _, want := range []string{"6.0 MB", "1.0 GB", "Goroutines:", "▄█", "CPU: 37.5%", "Mem: 61.5%", "Cores: 8"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := map[uint64]string{
		512:     "512 B",
		2048:    "2.0 KB",
		5 << 20: "5.0 MB",
		3 << 30: "3.0 GB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestResultsModel_ProgressAndTable(t *testing.T) {
	t.Parallel()
	r := NewResultsModel([]string{"grid", "dft"})
	r.SetWidth(80)
	r.UpdateProgress(ProgressMsg{Index: 1, Value: 0.5, AverageProgress: 0.25, ETA: 3 * time.Second})
	r.UpdateProgress(ProgressMsg{Index: 9, Value: 1})

	if r.progress[1] != 0.5 {
		t.Errorf("progress[1] = %v, want 0.5", r.progress[1])
	}
	if view := r.View(); !strings.Contains(view, "50.00%") {
		t.Errorf("progress view missing percentage:\n%s", view)
	}

	r.SetResults([]orchestration.MultiplicationResult{
		{Name: "grid", Product: "6", Duration: time.Millisecond},
		{Name: "govalues", Err: multiply.ErrUnsupported},
		{Name: "dft", Err: context.Canceled},
		{Name: "karatsuba", Err: errors.New("precision lost")},
	})
	r.SetProduct("6")
	r.Finish(0)

	view := r.View()
	for _, want := range []string{"Algorithm", "OK", "Skipped", "Cancelled", "precision lost", "Product:", "(1 digits)"} {
		if !strings.Contains(view, want) {
			t.Errorf("table view missing %q:\n%s", want, view)
		}
	}

	r.Reset()
	if r.done || r.product != "" || len(r.results) != 0 {
		t.Error("Reset kept run state")
	}
	if len(r.progress) != 2 || r.width != 80 {
		t.Error("Reset dropped layout state")
	}
}

func TestHeaderModel_Elapsed(t *testing.T) {
	t.Parallel()
	h := NewHeaderModel("v2.0.0")
	if h.Elapsed() != 0 {
		t.Error("idle header should report zero elapsed")
	}
	start := time.Now().Add(-2 * time.Second)
	h.Start(start)
	h.Stop(start.Add(1500 * time.Millisecond))
	if got := h.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", got)
	}
	h.SetWidth(100)
	view := h.View()
	if !strings.Contains(view, "v2.0.0") || !strings.Contains(view, "Elapsed: 1.5s") {
		t.Errorf("header view = %q", view)
	}
}
