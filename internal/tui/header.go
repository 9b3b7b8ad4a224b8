package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/decicalc/internal/format"
)

// HeaderModel renders the title bar with the run state and elapsed time.
type HeaderModel struct {
	version   string
	width     int
	startTime time.Time
	endTime   time.Time
	running   bool
}

// NewHeaderModel returns an idle header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// Start restarts the elapsed timer.
func (h *HeaderModel) Start(now time.Time) {
	h.startTime = now
	h.endTime = time.Time{}
	h.running = true
}

// Stop freezes the elapsed timer.
func (h *HeaderModel) Stop(now time.Time) {
	if h.running {
		h.endTime = now
		h.running = false
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Elapsed returns the duration of the current or last run.
func (h HeaderModel) Elapsed() time.Duration {
	switch {
	case h.startTime.IsZero():
		return 0
	case h.running:
		return time.Since(h.startTime)
	default:
		return h.endTime.Sub(h.startTime)
	}
}

// View renders the header.
func (h HeaderModel) View() string {
	title := "Decimal Multiplication Workbench"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	left := titleStyle.Render(title) + dimStyle.Render(" | ") +
		accentStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	gap := h.width - 2 - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}
	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap))
}
