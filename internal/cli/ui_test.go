package cli

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibmod/internal/orchestration"
)

// MockSpinner records the calls DisplayProgress makes.
type MockSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffixes = append(m.suffixes, suffix)
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()

	if s.Suffix != " test" {
		t.Errorf("Suffix = %q, want %q", s.Suffix, " test")
	}
}

func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate)

	go func() {
		progressChan <- orchestration.ProgressUpdate{CalculatorIndex: 0, Name: "Matrix"}
		progressChan <- orchestration.ProgressUpdate{CalculatorIndex: 0, Name: "Matrix", Done: true}
		progressChan <- orchestration.ProgressUpdate{CalculatorIndex: 1, Name: "Mat (rec)", Done: true}
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 2, io.Discard)
	wg.Wait()

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
	last := mockS.suffixes[len(mockS.suffixes)-1]
	if !strings.Contains(last, "2/2 done") {
		t.Errorf("last suffix = %q, want it to report 2/2 done", last)
	}
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan orchestration.ProgressUpdate, 1)
	progressChan <- orchestration.ProgressUpdate{}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}

func TestFormatProgressSuffix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		progress orchestration.AggregatedProgress
		want     string
	}{
		{
			name:     "single named",
			progress: orchestration.AggregatedProgress{Name: "Mat (loop)", Total: 1},
			want:     " Running Mat (loop)... (1ms)",
		},
		{
			name:     "single unnamed",
			progress: orchestration.AggregatedProgress{Total: 1},
			want:     " Running calculation... (1ms)",
		},
		{
			name:     "comparison",
			progress: orchestration.AggregatedProgress{Completed: 2, Total: 4, Fraction: 0.5},
			want:     " Comparing strategies ██████████░░░░░░░░░░ 2/4 done (1ms)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatProgressSuffix(tt.progress, 1500*time.Microsecond); got != tt.want {
				t.Errorf("FormatProgressSuffix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{-1, "░░░░"},
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{2, "████"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.progress, 4); got != tt.want {
			t.Errorf("progressBar(%v, 4) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}
