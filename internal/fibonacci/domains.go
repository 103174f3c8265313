package fibonacci

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agbru/fibmod/internal/algebra"
)

// DomainBuilder builds the factory of one numeric representation.
type DomainBuilder func(opts Options) *DefaultFactory

var (
	domainsMu sync.RWMutex
	domains   = make(map[string]DomainBuilder)
)

func init() {
	RegisterDomain("u64", domainOf[algebra.U64]("u64"))
	RegisterDomain("i64", domainOf[algebra.I64]("i64"))
	RegisterDomain("nat", domainOf[algebra.Nat]("nat"))
	RegisterDomain("int", domainOf[algebra.Int]("int"))
}

func domainOf[T algebra.Number[T]](name string) DomainBuilder {
	return func(opts Options) *DefaultFactory {
		return NewDomainFactory[T](name, opts)
	}
}

// RegisterDomain makes a numeric representation selectable by name. A second
// registration under the same name replaces the first.
func RegisterDomain(name string, build DomainBuilder) {
	domainsMu.Lock()
	defer domainsMu.Unlock()
	domains[name] = build
}

// NewFactory returns the calculator factory of the named domain.
func NewFactory(domain string, opts Options) (*DefaultFactory, error) {
	domainsMu.RLock()
	build, ok := domains[domain]
	domainsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown numeric type %q (available: %s)", domain, strings.Join(Domains(), ", "))
	}
	return build(opts), nil
}

// Domains returns the registered domain names, sorted.
func Domains() []string {
	domainsMu.RLock()
	defer domainsMu.RUnlock()
	names := make([]string, 0, len(domains))
	for name := range domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
