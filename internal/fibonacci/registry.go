package fibonacci

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/fibmod/internal/algebra"
)

// CalculatorFactory creates and caches Calculator instances by strategy name.
type CalculatorFactory interface {
	// Create returns a fresh Calculator for name.
	// Returns an error if name is not registered.
	Create(name string) (Calculator, error)

	// Get returns the cached Calculator for name, creating it on first use.
	// Returns an error if name is not registered.
	Get(name string) (Calculator, error)

	// List returns the registered names in strategy order.
	List() []string

	// Register adds or replaces a calculator creator.
	Register(name string, creator func() Calculator) error

	// GetAll returns every registered calculator, keyed by name.
	GetAll() map[string]Calculator

	// Domain returns the numeric representation the calculators share.
	Domain() string
}

// DefaultFactory is the thread-safe CalculatorFactory used by the
// application. All calculators of one factory share a numeric domain.
type DefaultFactory struct {
	mu          sync.RWMutex
	domain      string
	creators    map[string]func() Calculator
	calculators map[string]Calculator
}

var _ CalculatorFactory = (*DefaultFactory)(nil)

// NewDefaultFactory returns a factory over the default u64 domain with every
// strategy registered.
func NewDefaultFactory() *DefaultFactory {
	return NewDomainFactory[algebra.U64](DefaultDomain, Options{})
}

// NewEmptyFactory returns a factory for domain with nothing registered.
func NewEmptyFactory(domain string) *DefaultFactory {
	return &DefaultFactory{
		domain:      domain,
		creators:    make(map[string]func() Calculator),
		calculators: make(map[string]Calculator),
	}
}

// NewDomainFactory returns a factory running every strategy over T.
//
// Pre-registered calculators, by command-line name:
//   - "recursive": Recursive
//   - "sequential": Sequential
//   - "matrix": MatrixSequential
//   - "matrix-rec": MatrixPowRecursive
//   - "matrix-iter": MatrixPowIterative
func NewDomainFactory[T algebra.Number[T]](domain string, opts Options) *DefaultFactory {
	f := NewEmptyFactory(domain)
	for _, s := range Strategies() {
		s := s
		_ = f.Register(s.String(), func() Calculator { return NewCalculator[T](domain, s, opts) })
	}
	return f
}

// Domain implements CalculatorFactory.
func (f *DefaultFactory) Domain() string {
	return f.domain
}

// Register adds a calculator creator. The creator is called lazily when the
// calculator is first requested. An existing registration is replaced.
func (f *DefaultFactory) Register(name string, creator func() Calculator) error {
	if creator == nil {
		return fmt.Errorf("nil creator for calculator %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Drop the cached instance so that Get rebuilds it with the new creator.
	delete(f.calculators, name)
	return nil
}

// Create returns a fresh calculator, bypassing the cache.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	return creator(), nil
}

// Get returns the cached calculator for name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}

	calc := creator()
	f.calculators[name] = calc
	return calc, nil
}

// List returns the registered names. Strategy names come first in strategy
// order, followed by any custom names sorted alphabetically.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, ei := ParseStrategy(names[i])
		sj, ej := ParseStrategy(names[j])
		switch {
		case ei == nil && ej == nil:
			return si < sj
		case ei == nil || ej == nil:
			return ei == nil
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// GetAll returns a copy of the calculator map, creating missing entries.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = creator()
		}
	}

	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

// MustGet is like Get but panics if the calculator is not found.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required calculator not found: %s", name))
	}
	return calc
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}
