package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/decicalc/internal/ui"
)

// Dashboard styles, rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	dimStyle          lipgloss.Style
	accentStyle       lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	focusedLabelStyle lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	barStyle          lipgloss.Style
	emptyBarStyle     lipgloss.Style
	heapLineStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the caller has selected the startup theme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	accentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	labelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	valueStyle = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	barStyle = lipgloss.NewStyle().Foreground(t.Accent)
	emptyBarStyle = lipgloss.NewStyle().Foreground(t.Dim)
	heapLineStyle = lipgloss.NewStyle().Foreground(t.Warning)
}
