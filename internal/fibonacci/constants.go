package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Strategy Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultRecursiveLimit is the largest |n| accepted by the naive
	// recursive strategy when Options.RecursiveLimit is zero.
	//
	// Recursive makes about 2·F(n) calls: F(35) ≈ 9.2M keeps a machine-word
	// run well under a second, while every step above it multiplies the cost
	// by the golden ratio.
	DefaultRecursiveLimit = 35

	// DefaultDomain is the numeric representation used when none is chosen.
	DefaultDomain = "u64"
)

// ─────────────────────────────────────────────────────────────────────────────
// Metric and Tracing Names
// ─────────────────────────────────────────────────────────────────────────────

const (
	tracerName = "fibonacci"

	statusSuccess  = "success"
	statusError    = "error"
	statusCanceled = "canceled"
)
