package tui

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmod/internal/config"
	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/metrics"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/sysmon"
)

const (
	tickInterval = 250 * time.Millisecond
	// heapSamples is the number of heap samples kept for the sparkline.
	heapSamples = 40

	colName     = 12
	colState    = 9
	colDuration = 10
)

type rowState int

const (
	statePending rowState = iota
	stateRunning
	stateDone
	stateFailed
)

func (s rowState) String() string {
	return [...]string{"pending", "running", "done", "failed"}[s]
}

// strategyRow is the dashboard line of one calculator.
type strategyRow struct {
	name     string
	state    rowState
	duration time.Duration
	result   string
	err      error
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header HeaderModel
	rows   []strategyRow
	heap   *RingBuffer
	numGC  uint32
	system sysmon.Stats
	help   help.Model
	keymap KeyMap

	calculators []fibonacci.Calculator
	config      config.AppConfig
	parentCtx   context.Context
	ctx         context.Context
	cancel      context.CancelFunc
	ref         *programRef
	generation  uint64

	done     bool
	exitCode int
	final    *orchestration.CalculationResult
	failure  error
	width    int
}

// NewModel creates the dashboard of calculators computing F(cfg.N) mod cfg.M.
func NewModel(parentCtx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	domain := cfg.Type
	if len(calculators) > 0 {
		domain = calculators[0].Domain()
	}
	return Model{
		header:      NewHeaderModel(version, cfg.N, cfg.M, domain),
		rows:        newRows(calculators),
		heap:        NewRingBuffer(heapSamples),
		help:        help.New(),
		keymap:      DefaultKeyMap(),
		calculators: calculators,
		config:      cfg,
		parentCtx:   parentCtx,
		ctx:         ctx,
		cancel:      cancel,
		ref:         &programRef{},
		exitCode:    apperrors.ExitSuccess,
	}
}

func newRows(calculators []fibonacci.Calculator) []strategyRow {
	rows := make([]strategyRow, len(calculators))
	for i, c := range calculators {
		rows[i] = strategyRow{name: c.Name()}
	}
	return rows
}

// Init starts the calculation, the ticker and the context watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case ProgressMsg:
		if msg.Generation != m.generation || msg.CalculatorIndex < 0 || msg.CalculatorIndex >= len(m.rows) {
			return m, nil
		}
		row := &m.rows[msg.CalculatorIndex]
		switch {
		case !msg.Done:
			row.state = stateRunning
		case msg.Err != nil:
			row.state, row.duration, row.err = stateFailed, msg.Elapsed, msg.Err
		default:
			row.state, row.duration = stateDone, msg.Elapsed
		}
		return m, nil

	case FinalResultMsg:
		if msg.Generation == m.generation {
			res := msg.Result
			m.final = &res
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation == m.generation {
			m.failure = msg.Err
		}
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		for i, res := range msg.Results {
			if i >= len(m.rows) {
				break
			}
			m.rows[i].duration = res.Duration
			m.rows[i].err = res.Err
			m.rows[i].state = stateDone
			if res.Err != nil {
				m.rows[i].state = stateFailed
			} else {
				m.rows[i].result = res.Result.String()
			}
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.done = true
			m.exitCode = apperrors.ExitErrorCanceled
			m.header.SetDone()
		}
		return m, tea.Quit

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.heap.Push(float64(msg.HeapAlloc))
		m.numGC = msg.NumGC
		m.system = msg.System
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		m.cancel()
		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)
		m.rows = newRows(m.calculators)
		m.header.Reset()
		m.done = false
		m.final = nil
		m.failure = nil
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Batch(
			startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}
	return m, nil
}

// ExitCode returns the exit code of the last run.
func (m Model) ExitCode() int {
	return m.exitCode
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s\n",
		tableHeadStyle.Render(fmt.Sprintf("%-*s", colName, "Strategy")),
		tableHeadStyle.Render(fmt.Sprintf("%-*s", colState, "State")),
		tableHeadStyle.Render(fmt.Sprintf("%-*s", colDuration, "Duration")),
		tableHeadStyle.Render("Result"))
	for _, row := range m.rows {
		b.WriteString(m.renderRow(row))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.statusLine())

	panel := panelStyle
	if m.width > 2 {
		panel = panel.Width(m.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panel.Render(b.String()),
		" "+m.memoryLine(),
		" "+m.help.View(m.keymap),
	)
}

func (m Model) renderRow(row strategyRow) string {
	stateStyle := dimStyle
	switch row.state {
	case stateRunning:
		stateStyle = warningStyle
	case stateDone:
		stateStyle = successStyle
	case stateFailed:
		stateStyle = errorStyle
	}
	duration := ""
	if row.state == stateDone || row.state == stateFailed {
		duration = format.FormatExecutionDuration(row.duration)
	}
	result := row.result
	if row.err != nil {
		result = errorStyle.Render(row.err.Error())
	}
	return fmt.Sprintf("%s %s %s %s",
		accentStyle.Render(fmt.Sprintf("%-*s", colName, row.name)),
		stateStyle.Render(fmt.Sprintf("%-*s", colState, row.state)),
		fmt.Sprintf("%-*s", colDuration, duration),
		result)
}

func (m Model) statusLine() string {
	switch {
	case !m.done:
		return warningStyle.Render(fmt.Sprintf("Running %d strategies...", len(m.rows)))
	case m.exitCode == apperrors.ExitErrorMismatch:
		return errorStyle.Render("✗ The strategies disagree.")
	case m.exitCode == apperrors.ExitErrorCanceled:
		return warningStyle.Render("Canceled.")
	case m.failure != nil:
		return errorStyle.Render("✗ No strategy completed: " + m.failure.Error())
	case m.final != nil:
		return successStyle.Render(fmt.Sprintf("✓ F(%s) mod %s = %s", m.config.N, m.config.M, m.final.Result)) +
			dimStyle.Render(fmt.Sprintf("  fastest: %s in %s", m.final.Name, format.FormatExecutionDuration(m.final.Duration)))
	}
	return dimStyle.Render("Done.")
}

func (m Model) memoryLine() string {
	line := dimStyle.Render("Heap ") + accentStyle.Render(format.FormatBytes(uint64(m.heap.Last()))) + " " +
		accentStyle.Render(RenderSparkline(m.heap.Slice())) +
		dimStyle.Render(fmt.Sprintf("  GC cycles %d", m.numGC))
	if m.system.Available() {
		line += dimStyle.Render(fmt.Sprintf("  CPU %.0f%%  RAM %.0f%%", m.system.CPUPercent, m.system.MemPercent))
	}
	return line
}

// Run runs the dashboard until the user quits and returns the exit code of
// the last run.
func Run(ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, version string) int {
	initStyles()

	model := NewModel(ctx, calculators, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd runs the calculators and reports through ref.
func startCalculationCmd(ref *programRef, ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		opts := orchestration.PresentationOptions{N: cfg.N, M: cfg.M, Details: cfg.Details}
		presenter := &TUIResultPresenter{ref: ref, gen: gen}

		results := orchestration.ExecuteCalculations(ctx, calculators, opts, &TUIProgressReporter{ref: ref, gen: gen}, io.Discard)
		// AnalyzeComparisonResults sorts in place; the rows keep calculator order.
		rows := slices.Clone(results)
		exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, io.Discard)
		return CalculationCompleteMsg{Results: rows, ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		snap := metrics.NewMemoryCollector().Snapshot()
		return MemStatsMsg{HeapAlloc: snap.HeapAlloc, NumGC: snap.NumGC, System: sysmon.Sample()}
	}
}

// watchContextCmd reports the end of ctx.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
