// Package tui implements the interactive dashboard: two operand inputs, live
// per-algorithm progress, the comparison table and a heap monitor.
package tui

import (
	"context"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/decicalc/internal/config"
	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/fixed"
	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/sysmon"
)

const (
	operandA = iota
	operandB
	numOperands
)

const tickInterval = 500 * time.Millisecond

// startMsg asks the model to start a run with the current operands.
type startMsg struct{}

// ExecutionState holds the state of the current or last run.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	running    bool
	exitCode   int
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	results ResultsModel
	metrics MetricsModel
	help    help.Model
	keymap  KeyMap

	inputs   [numOperands]textinput.Model
	focus    int
	inputErr string

	ExecutionState

	parentCtx   context.Context
	multipliers []multiply.Multiplier
	config      config.AppConfig
	autostart   bool
	ref         *programRef
	width       int
	height      int
}

// NewModel creates the dashboard. When cfg carries both operands the first
// run starts immediately.
func NewModel(parentCtx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, version string) Model {
	names := make([]string, len(multipliers))
	for i, m := range multipliers {
		names[i] = m.Name()
	}

	var inputs [numOperands]textinput.Model
	for i, label := range []string{"A: ", "B: "} {
		in := textinput.New()
		in.Prompt = label
		in.Placeholder = "decimal, e.g. -12.5"
		inputs[i] = in
	}
	inputs[operandA].SetValue(cfg.A)
	inputs[operandB].SetValue(cfg.B)
	inputs[operandA].Focus()

	return Model{
		header:         NewHeaderModel(version),
		results:        NewResultsModel(names),
		metrics:        NewMetricsModel(),
		help:           help.New(),
		keymap:         DefaultKeyMap(),
		inputs:         inputs,
		ExecutionState: ExecutionState{exitCode: apperrors.ExitSuccess},
		parentCtx:      parentCtx,
		multipliers:    multipliers,
		config:         cfg,
		autostart:      cfg.A != "" && cfg.B != "",
		ref:            &programRef{},
	}
}

// Init starts the tickers and, if requested, the first run.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink, tickCmd(), sampleMemStatsCmd(), sampleSysStatsCmd(m.parentCtx), watchContextCmd(m.parentCtx, 0),
	}
	if m.autostart {
		cmds = append(cmds, func() tea.Msg { return startMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles terminal events and run messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case startMsg:
		return m.start()

	case TickMsg:
		return m, tea.Batch(tickCmd(), sampleMemStatsCmd(), sampleSysStatsCmd(m.parentCtx))

	case MemStatsMsg:
		m.metrics.Update(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateHost(msg)
		return m, nil

	case ProgressMsg:
		if m.running {
			m.results.UpdateProgress(msg)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		m.results.SetResults(msg.Results)
		return m, nil

	case FinalResultMsg:
		m.results.SetProduct(msg.Result.Product)
		return m, nil

	case ErrorMsg:
		m.results.SetError(msg.Err)
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.running = false
		m.exitCode = msg.ExitCode
		m.header.Stop(time.Now())
		m.results.Finish(msg.ExitCode)
		return m, nil

	case ContextCancelledMsg:
		if m.cancel != nil {
			m.cancel()
		}
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Run):
		if m.running {
			return m, nil
		}
		return m.start()

	case key.Matches(msg, m.keymap.Cancel):
		if m.running && m.cancel != nil {
			m.cancel()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		m.running = false
		m.inputErr = ""
		m.results.Reset()
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return m, m.setFocus(operandA)

	case key.Matches(msg, m.keymap.NextField):
		return m, m.setFocus((m.focus + 1) % numOperands)

	case key.Matches(msg, m.keymap.PrevField):
		return m, m.setFocus((m.focus + numOperands - 1) % numOperands)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// start validates the operands and launches a new run.
func (m Model) start() (tea.Model, tea.Cmd) {
	a := strings.TrimSpace(m.inputs[operandA].Value())
	b := strings.TrimSpace(m.inputs[operandB].Value())
	for _, op := range []struct{ label, value string }{{"A", a}, {"B", b}} {
		if _, err := fixed.Parse(op.value); err != nil {
			m.inputErr = "operand " + op.label + ": " + err.Error()
			return m, nil
		}
	}
	m.inputErr = ""

	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	if m.config.Timeout > 0 {
		m.ctx, m.cancel = context.WithTimeout(m.parentCtx, m.config.Timeout)
	} else {
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)
	}

	runCfg := m.config
	runCfg.A, runCfg.B = a, b
	m.running = true
	m.results.Reset()
	m.header.Start(time.Now())
	return m, startCalculationCmd(m.ref, m.ctx, m.multipliers, runCfg, m.generation)
}

// Layout constants for the dashboard.
const (
	minPanelWidth       = 40
	ResultsWidthPercent = 65
)

func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	left := max(m.width*ResultsWidthPercent/100, minPanelWidth)
	m.results.SetWidth(left)
	m.metrics.SetWidth(max(m.width-left, minPanelWidth))
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var in strings.Builder
	for i := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		in.WriteString(label.Render("›") + " " + m.inputs[i].View() + "\n")
	}
	if m.inputErr != "" {
		in.WriteString(errorStyle.Render(m.inputErr) + "\n")
	}
	inputs := panelStyle.Width(max(m.width-2, minPanelWidth)).Render(strings.TrimRight(in.String(), "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.results.View(), m.metrics.View())
	footer := m.help.View(m.keymap)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), inputs, body, footer)
}

// ExitCode returns the exit code of the last completed run.
func (m Model) ExitCode() int { return m.exitCode }

// Run starts the dashboard and blocks until the user quits. It returns the
// exit code of the last run.
func Run(ctx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, multipliers, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		if m.cancel != nil {
			m.cancel()
		}
		if err == nil {
			return m.exitCode
		}
	}
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd runs every multiplier and reports through ref.
func startCalculationCmd(ref *programRef, ctx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}
		results := orchestration.ExecuteMultiplications(ctx, multipliers, cfg, reporter, io.Discard)
		code := orchestration.AnalyzeComparisonResults(results, cfg, presenter, io.Discard)
		return CalculationCompleteMsg{ExitCode: code, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{Snapshot: metrics.ReadMemory(), NumGoroutine: runtime.NumGoroutine()}
	}
}

func sampleSysStatsCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Stats: sysmon.Sample(ctx)}
	}
}

// watchContextCmd reports the end of the parent context.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Generation: gen}
	}
}
