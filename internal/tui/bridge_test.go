package tui

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/orchestration"
)

// recorder is a sender that keeps every message.
type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) messages() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

func newRecordingRef() (*programRef, *recorder) {
	rec := &recorder{}
	ref := &programRef{}
	ref.SetProgram(rec)
	return ref, rec
}

func TestProgramRef_Send_NilProgram(t *testing.T) {
	t.Parallel()
	ref := &programRef{}
	ref.Send(TickMsg(time.Now()))
}

func TestTUIProgressReporter_ForwardsUpdates(t *testing.T) {
	t.Parallel()
	ref, rec := newRecordingRef()
	reporter := &TUIProgressReporter{ref: ref, gen: 7}

	boom := errors.New("boom")
	ch := make(chan orchestration.ProgressUpdate, 4)
	ch <- orchestration.ProgressUpdate{CalculatorIndex: 0, Name: "Matrix"}
	ch <- orchestration.ProgressUpdate{CalculatorIndex: 1, Name: "Mat (rec)"}
	ch <- orchestration.ProgressUpdate{CalculatorIndex: 1, Name: "Mat (rec)", Done: true, Err: boom, Elapsed: time.Millisecond}
	ch <- orchestration.ProgressUpdate{CalculatorIndex: 0, Name: "Matrix", Done: true, Elapsed: 2 * time.Millisecond}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	reporter.DisplayProgress(&wg, ch, 2, nil)
	wg.Wait()

	msgs := rec.messages()
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	failed := msgs[2].(ProgressMsg)
	if failed.Generation != 7 || !failed.Done || !errors.Is(failed.Err, boom) || failed.Elapsed != time.Millisecond {
		t.Errorf("unexpected failure message %+v", failed)
	}
	last := msgs[3].(ProgressMsg)
	if last.Completed != 2 || last.Failed != 1 || last.Fraction != 1 {
		t.Errorf("unexpected aggregate %+v", last.AggregatedProgress)
	}
}

func TestTUIProgressReporter_ZeroCalculators(t *testing.T) {
	t.Parallel()
	ref, rec := newRecordingRef()
	reporter := &TUIProgressReporter{ref: ref}

	ch := make(chan orchestration.ProgressUpdate, 1)
	ch <- orchestration.ProgressUpdate{}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	reporter.DisplayProgress(&wg, ch, 0, nil)
	wg.Wait()

	if n := len(rec.messages()); n != 0 {
		t.Errorf("got %d messages, want none", n)
	}
}

func TestTUIResultPresenter(t *testing.T) {
	t.Parallel()
	ref, rec := newRecordingRef()
	presenter := &TUIResultPresenter{ref: ref, gen: 3}

	presenter.PresentComparisonTable([]orchestration.CalculationResult{{Name: "Matrix"}}, nil)
	presenter.PresentResult(orchestration.CalculationResult{Name: "Matrix", Result: big.NewInt(40)}, orchestration.PresentationOptions{}, nil)
	code := presenter.HandleError(context.DeadlineExceeded, time.Second, nil)

	if code != apperrors.ExitErrorTimeout {
		t.Errorf("HandleError() = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	msgs := rec.messages()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2 (the table is not forwarded)", len(msgs))
	}
	if final, ok := msgs[0].(FinalResultMsg); !ok || final.Result.Result.Int64() != 40 || final.Generation != 3 {
		t.Errorf("unexpected first message %#v", msgs[0])
	}
	if e, ok := msgs[1].(ErrorMsg); !ok || !errors.Is(e.Err, context.DeadlineExceeded) {
		t.Errorf("unexpected second message %#v", msgs[1])
	}
}
