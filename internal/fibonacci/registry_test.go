package fibonacci

import (
	"context"
	"math/big"
	"reflect"
	"slices"
	"sync"
	"testing"

	"github.com/agbru/fibmod/internal/algebra"
)

func TestDefaultFactory_List(t *testing.T) {
	t.Parallel()

	f := NewDefaultFactory()
	want := []string{"recursive", "sequential", "matrix", "matrix-rec", "matrix-iter"}
	if got := f.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if f.Domain() != DefaultDomain {
		t.Errorf("Domain() = %q, want %q", f.Domain(), DefaultDomain)
	}
}

func TestDefaultFactory_ListPutsCustomNamesLast(t *testing.T) {
	t.Parallel()

	f := NewDomainFactory[algebra.U64]("u64", Options{})
	creator := func() Calculator { return NewCalculator[algebra.U64]("u64", StrategySequential, Options{}) }
	_ = f.Register("zz-custom", creator)
	_ = f.Register("aa-custom", creator)

	got := f.List()
	if got[0] != "recursive" || got[5] != "aa-custom" || got[6] != "zz-custom" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestDefaultFactory_GetCaches(t *testing.T) {
	t.Parallel()

	f := NewDefaultFactory()
	a, err := f.Get("matrix-iter")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := f.Get("matrix-iter")
	if a != b {
		t.Error("Get should return the cached instance")
	}
	c, _ := f.Create("matrix-iter")
	if a == c {
		t.Error("Create should return a fresh instance")
	}
	if _, err := f.Get("unknown"); err == nil {
		t.Error("expected error for unknown calculator")
	}
	if _, err := f.Create("unknown"); err == nil {
		t.Error("expected error for unknown calculator")
	}
}

func TestDefaultFactory_RegisterReplacesCached(t *testing.T) {
	t.Parallel()

	f := NewDefaultFactory()
	before := f.MustGet("matrix")
	if err := f.Register("matrix", func() Calculator {
		return NewCalculator[algebra.Nat]("nat", StrategyMatrixSequential, Options{})
	}); err != nil {
		t.Fatal(err)
	}
	after := f.MustGet("matrix")
	if before == after || after.Domain() != "nat" {
		t.Error("Register should invalidate the cached calculator")
	}
	if err := f.Register("nil", nil); err == nil {
		t.Error("expected error for nil creator")
	}
}

func TestDefaultFactory_GetAllAndHas(t *testing.T) {
	t.Parallel()

	f := NewDefaultFactory()
	all := f.GetAll()
	if len(all) != len(Strategies()) {
		t.Fatalf("GetAll() returned %d calculators", len(all))
	}
	for name, calc := range all {
		if calc.Strategy().String() != name {
			t.Errorf("calculator %q runs %v", name, calc.Strategy())
		}
		if !f.Has(name) {
			t.Errorf("Has(%q) = false", name)
		}
	}
	if f.Has("fft") {
		t.Error("Has(fft) = true")
	}
}

func TestDefaultFactory_MustGetPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewEmptyFactory("u64").MustGet("matrix")
}

func TestDefaultFactory_ConcurrentGet(t *testing.T) {
	t.Parallel()

	f := NewDefaultFactory()
	var wg sync.WaitGroup
	results := make([]Calculator, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.MustGet("sequential")
		}(i)
	}
	wg.Wait()
	for _, r := range results[1:] {
		if r != results[0] {
			t.Fatal("concurrent Get returned different instances")
		}
	}
}

func TestDomains(t *testing.T) {
	t.Parallel()

	registered := Domains()
	for _, name := range []string{"u64", "i64", "nat", "int"} {
		if !slices.Contains(registered, name) {
			t.Errorf("domain %q not registered", name)
			continue
		}
		f, err := NewFactory(name, Options{})
		if err != nil {
			t.Fatalf("NewFactory(%q): %v", name, err)
		}
		if f.Domain() != name {
			t.Errorf("factory domain = %q, want %q", f.Domain(), name)
		}
		got, err := f.MustGet("matrix-iter").Calculate(context.Background(), big.NewInt(1_000_000), big.NewInt(1000))
		if err != nil || got.Int64() != 875 {
			t.Errorf("%s: F(1e6) mod 1000 = %v, %v", name, got, err)
		}
	}
	if _, err := NewFactory("float", Options{}); err == nil {
		t.Error("expected error for unknown domain")
	}
}

func TestNewFactory_PassesOptions(t *testing.T) {
	t.Parallel()

	f, err := NewFactory("i64", Options{RecursiveLimit: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.MustGet("recursive").Calculate(context.Background(), big.NewInt(4), big.NewInt(10)); err == nil {
		t.Error("expected the custom recursive limit to apply")
	}
}
