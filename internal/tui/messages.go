package tui

import (
	"time"

	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/sysmon"
)

// ProgressMsg carries one aggregated progress event.
type ProgressMsg struct {
	orchestration.AggregatedProgress
	Elapsed    time.Duration
	Err        error
	Generation uint64
}

// FinalResultMsg carries the agreed result of a successful run.
type FinalResultMsg struct {
	Result     orchestration.CalculationResult
	Generation uint64
}

// ErrorMsg reports that no strategy completed.
type ErrorMsg struct {
	Err        error
	Duration   time.Duration
	Generation uint64
}

// CalculationCompleteMsg ends a run. Results are in calculator order.
type CalculationCompleteMsg struct {
	Results    []orchestration.CalculationResult
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the run's context ends before the
// calculation completes.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives the elapsed timer and the memory samples.
type TickMsg time.Time

// MemStatsMsg is one memory sample of the process, with the host usage.
type MemStatsMsg struct {
	HeapAlloc uint64
	NumGC     uint32
	System    sysmon.Stats
}
