package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/fibmod/internal/algebra"
	apperrors "github.com/agbru/fibmod/internal/errors"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibmod_calculations_total",
			Help: "The total number of modular Fibonacci calculations processed",
		},
		[]string{"domain", "strategy", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fibmod_calculation_duration_seconds",
			Help:    "The duration of modular Fibonacci calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 9),
		},
		[]string{"domain", "strategy"},
	)
)

// Calculator is the interface the orchestration layer uses to run one
// strategy over one numeric representation.
type Calculator interface {
	// Calculate returns F(n) mod m. Inputs that the calculator's
	// representation cannot hold, a modulus that is not positive, and an
	// index too large for the recursive strategy are reported as
	// apperrors.ValidationError. If ctx ends first, ctx.Err() is returned.
	Calculate(ctx context.Context, n, m *big.Int) (*big.Int, error)

	// Name returns the display label of the strategy (e.g. "Mat (loop)").
	Name() string

	// Strategy returns the algorithm the calculator runs.
	Strategy() Strategy

	// Domain returns the name of the numeric representation (e.g. "u64").
	Domain() string
}

// FibCalculator runs a strategy over the representation T. It handles the
// conversion from and to *big.Int and adds metrics, tracing and logging
// around the pure computation.
type FibCalculator[T algebra.Number[T]] struct {
	domain   string
	strategy Strategy
	opts     Options
}

// NewCalculator returns a calculator running s over T. It panics if s is not
// a declared strategy.
func NewCalculator[T algebra.Number[T]](domain string, s Strategy, opts Options) *FibCalculator[T] {
	if !s.Valid() {
		panic(fmt.Sprintf("fibonacci: invalid strategy %d", int(s)))
	}
	return &FibCalculator[T]{domain: domain, strategy: s, opts: normalizeOptions(opts)}
}

func (c *FibCalculator[T]) Name() string       { return c.strategy.Label() }
func (c *FibCalculator[T]) Strategy() Strategy { return c.strategy }
func (c *FibCalculator[T]) Domain() string     { return c.domain }

// Calculate implements Calculator.
func (c *FibCalculator[T]) Calculate(ctx context.Context, n, m *big.Int) (result *big.Int, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Calculate")
	defer span.End()
	span.SetAttributes(
		attribute.String("fibmod.domain", c.domain),
		attribute.String("fibmod.strategy", c.strategy.String()),
	)

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := statusSuccess
		switch {
		case apperrors.IsContextError(err):
			status = statusCanceled
		case err != nil:
			status = statusError
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		calculationsTotal.WithLabelValues(c.domain, c.strategy.String(), status).Inc()
		calculationDuration.WithLabelValues(c.domain, c.strategy.String()).Observe(duration)

		log.Debug().
			Str("domain", c.domain).
			Str("strategy", c.strategy.String()).
			Stringer("n", n).
			Stringer("m", m).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	tn, tm, err := c.convert(n, m)
	if err != nil {
		return nil, err
	}

	cc := &canceller{done: ctx.Done()}
	done := make(chan T, 1)
	go func() {
		done <- Extend(funcWith[T](c.strategy, cc))(tn, tm)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.Big(), nil
	}
}

// convert validates the inputs and moves them into T.
func (c *FibCalculator[T]) convert(n, m *big.Int) (tn, tm T, err error) {
	if n == nil {
		return tn, tm, apperrors.ValidationError{Field: "n", Message: "missing index"}
	}
	if m == nil || m.Sign() == 0 {
		return tn, tm, apperrors.ValidationError{Field: "m", Message: "modulus must be non-zero"}
	}
	if m.Sign() < 0 {
		return tn, tm, apperrors.ValidationError{Field: "m", Message: "modulus must be positive"}
	}
	if c.strategy == StrategyRecursive {
		limit := new(big.Int).SetUint64(c.opts.RecursiveLimit)
		if new(big.Int).Abs(n).Cmp(limit) > 0 {
			return tn, tm, apperrors.ValidationError{
				Field:   "n",
				Message: fmt.Sprintf("%s is limited to |n| <= %d", c.strategy, c.opts.RecursiveLimit),
			}
		}
	}

	var zero T
	if tm, err = zero.FromBig(m); err != nil {
		return tn, tm, apperrors.ValidationError{Field: "m", Message: fmt.Sprintf("%v (domain %s)", err, c.domain)}
	}
	if tn, err = zero.FromBig(n); err != nil {
		return tn, tm, apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("%v (domain %s)", err, c.domain)}
	}
	// The negative-index rule evaluates F(|n|), which must fit as well.
	if n.Sign() < 0 {
		if _, err = zero.FromBig(new(big.Int).Abs(n)); err != nil {
			return tn, tm, apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("|n| %v (domain %s)", err, c.domain)}
		}
	}
	return tn, tm, nil
}
