package fibonacci

// Options configures a Calculator.
type Options struct {
	// RecursiveLimit is the largest |n| the recursive strategy accepts.
	// If 0, DefaultRecursiveLimit is used.
	RecursiveLimit uint64
}

// normalizeOptions returns a copy of opts with defaults filled in for zero
// values.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.RecursiveLimit == 0 {
		normalized.RecursiveLimit = DefaultRecursiveLimit
	}
	return normalized
}
