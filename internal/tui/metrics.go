package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/sysmon"
)

// heapHistory is the number of heap samples kept for the sparkline.
const heapHistory = 40

// MetricsModel shows heap usage, GC activity, host load and their trends.
type MetricsModel struct {
	snapshot   metrics.MemorySnapshot
	goroutines int
	host       sysmon.Stats
	heap       *RingBuffer
	cpu        *RingBuffer
	width      int
}

// NewMetricsModel returns an empty panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{heap: NewRingBuffer(heapHistory), cpu: NewRingBuffer(heapHistory)}
}

// SetWidth updates the available width.
func (m *MetricsModel) SetWidth(w int) { m.width = w }

// Update records a memory sample.
func (m *MetricsModel) Update(msg MemStatsMsg) {
	m.snapshot = msg.Snapshot
	m.goroutines = msg.NumGoroutine
	m.heap.Push(float64(msg.Snapshot.HeapAlloc))
}

// UpdateHost records a host sample.
func (m *MetricsModel) UpdateHost(msg SysStatsMsg) {
	m.host = msg.Stats
	m.cpu.Push(msg.Stats.CPUPercent)
}

// View renders the panel.
func (m MetricsModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("Heap:"), valueStyle.Render(formatBytes(m.snapshot.HeapAlloc)+" / "+formatBytes(m.snapshot.Sys)),
		labelStyle.Render("GC:"), valueStyle.Render(fmt.Sprintf("%d", m.snapshot.NumGC)),
		labelStyle.Render("Goroutines:"), valueStyle.Render(fmt.Sprintf("%d", m.goroutines)))
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("CPU:"), valueStyle.Render(fmt.Sprintf("%.1f%%", m.host.CPUPercent)),
		labelStyle.Render("Mem:"), valueStyle.Render(fmt.Sprintf("%.1f%%", m.host.MemPercent)),
		labelStyle.Render("Cores:"), valueStyle.Render(fmt.Sprintf("%d", m.host.LogicalCPUs)))
	b.WriteString(labelStyle.Render("Heap trend: "))
	b.WriteString(heapLineStyle.Render(RenderSparkline(m.heap.Slice())))
	b.WriteString("\n" + labelStyle.Render("CPU trend:  "))
	b.WriteString(barStyle.Render(RenderSparkline(m.cpu.Slice())))

	style := panelStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
