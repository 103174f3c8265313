package tui

import (
	"fmt"
	"math/big"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmod/internal/format"
)

// HeaderModel renders the top bar: title, problem, numeric type and elapsed
// time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	n, m      *big.Int
	domain    string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, n, m *big.Int, domain string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		n:         n,
		m:         m,
		domain:    domain,
	}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the start, frozen once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

func (h HeaderModel) View() string {
	title := "fibmod"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	row := titleStyle.Render(title) +
		pipe + accentStyle.Render(fmt.Sprintf("F(%s) mod %s", h.n, h.m)) +
		pipe + dimStyle.Render("type ") + accentStyle.Render(h.domain) +
		pipe + accentStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed()))
	if h.width > 0 {
		return headerStyle.Width(h.width).Render(row)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(row)
}
