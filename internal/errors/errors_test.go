package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/agbru/fibmod/internal/algebra"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ConfigError", ConfigError{Message: "invalid flag value"}, "invalid flag value"},
		{"NewConfigError formats", NewConfigError("invalid value %d for flag %s", 42, "-timeout"), "invalid value 42 for flag -timeout"},
		{"CalculationError without strategy", CalculationError{Cause: errors.New("boom")}, "boom"},
		{"CalculationError with strategy", CalculationError{Strategy: "matrix-iter", Cause: errors.New("boom")}, "matrix-iter: boom"},
		{"TimeoutError", TimeoutError{Operation: "fibonacci", Limit: 30 * time.Second}, `operation "fibonacci" timed out after 30s`},
		{"TimeoutError subsecond", TimeoutError{Operation: "matrix power", Limit: 500 * time.Millisecond}, `operation "matrix power" timed out after 500ms`},
		{"ValidationError", ValidationError{Field: "m", Message: "modulus must be non-zero"}, `validation error for "m": modulus must be non-zero`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestErrorChains(t *testing.T) {
	t.Parallel()

	t.Run("CalculationError unwraps to its cause", func(t *testing.T) {
		t.Parallel()
		err := CalculationError{Cause: context.Canceled}
		if !errors.Is(err, context.Canceled) {
			t.Error("errors.Is should find context.Canceled")
		}
		if err.Unwrap() != context.Canceled {
			t.Error("Unwrap should return the original cause")
		}
	})

	t.Run("TimeoutError is a deadline error", func(t *testing.T) {
		t.Parallel()
		var err error = TimeoutError{Operation: "fibonacci", Limit: time.Second}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Error("TimeoutError should match context.DeadlineExceeded")
		}
		var timeoutErr TimeoutError
		if !errors.As(CalculationError{Cause: err}, &timeoutErr) || timeoutErr.Limit != time.Second {
			t.Error("errors.As should find TimeoutError through CalculationError")
		}
	})

	t.Run("ValidationError through WrapError", func(t *testing.T) {
		t.Parallel()
		err := WrapError(ValidationError{Field: "n", Message: "too large"}, "input check failed")
		var validationErr ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "n" {
			t.Error("errors.As should find ValidationError through WrapError")
		}
	})

	t.Run("conversion errors keep their sentinel", func(t *testing.T) {
		t.Parallel()
		_, cause := algebra.U64(0).FromBig(nil)
		err := WrapError(cause, "converting n")
		if !errors.Is(err, algebra.ErrOutOfRange) {
			t.Error("errors.Is should find algebra.ErrOutOfRange")
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		checkIs     error
	}{
		{"wraps error with context", errors.New("file not found"), "failed to load config", nil, "failed to load config: file not found", nil},
		{"preserves error chain", context.DeadlineExceeded, "operation timed out", nil, "operation timed out: context deadline exceeded", context.DeadlineExceeded},
		{"supports format arguments", errors.New("bad digit"), "parsing %s=%q", []any{"n", "12x"}, `parsing n="12x": bad digit`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}

	if WrapError(nil, "some context") != nil {
		t.Error("WrapError(nil, ...) should return nil")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"TimeoutError", TimeoutError{Operation: "x", Limit: time.Second}, true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitErrorGeneric},
		{context.DeadlineExceeded, ExitErrorTimeout},
		{fmt.Errorf("run: %w", context.Canceled), ExitErrorCanceled},
		{NewConfigError("bad flag"), ExitErrorConfig},
		{CalculationError{Cause: ValidationError{Field: "m", Message: "zero"}}, ExitErrorConfig},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestExitCodes_Distinct(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
