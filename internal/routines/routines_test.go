package routines

import (
	"context"
	"errors"
	"math/big"
	"slices"
	"testing"

	apperrors "github.com/agbru/speedwatch/internal/errors"
	"github.com/agbru/speedwatch/internal/growth"
)

func TestBuiltinResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tests := []struct {
		name string
		fn   func(context.Context, uint64) (any, error)
		n    uint64
		want any
	}{
		{"sum 10", SumOfSquares, 10, uint64(385)},
		{"sum 0", SumOfSquares, 0, uint64(0)},
		{"pairs 8", CountPairs, 8, uint64(2)},
		{"pairs 0", CountPairs, 0, uint64(0)},
		{"triples 20", CountTriples, 20, uint64(6)},
		{"subsets 3", CountSubsets, 3, uint64(2)},
		{"subsets 4", CountSubsets, 4, uint64(4)},
		// (2^(p-1) + p - 1) / p for prime p = n+1
		{"subsets 6", CountSubsets, 6, uint64(10)},
		{"subsets 0", CountSubsets, 0, uint64(1)},
		{"derangements 0", CountDerangements, 0, uint64(1)},
		{"derangements 1", CountDerangements, 1, uint64(0)},
		{"derangements 4", CountDerangements, 4, uint64(9)},
		{"derangements 7", CountDerangements, 7, uint64(1854)},
		{"fib 0", FibonacciBits, 0, 0},
		{"fib 10", FibonacciBits, 10, 6},
		{"fib 100", FibonacciBits, 100, 69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.fn(ctx, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestFibonacciBitsMatchesIteration(t *testing.T) {
	t.Parallel()
	a, b := big.NewInt(0), big.NewInt(1)
	for n := uint64(0); n <= 300; n++ {
		got, err := FibonacciBits(context.Background(), n)
		if err != nil {
			t.Fatalf("F(%d): %v", n, err)
		}
		if got != a.BitLen() {
			t.Fatalf("F(%d) bit length = %v, want %d", n, got, a.BitLen())
		}
		a.Add(a, b)
		a, b = b, a
	}
}

func TestSortMedianDeterministic(t *testing.T) {
	t.Parallel()
	first, err := SortMedian(context.Background(), 1001)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := SortMedian(context.Background(), 1001)
	if first != second {
		t.Errorf("median differs between runs: %v vs %v", first, second)
	}
	if _, ok := first.(uint32); !ok {
		t.Errorf("median type = %T, want uint32", first)
	}
}

func TestEnumerationLimits(t *testing.T) {
	t.Parallel()
	if _, err := CountSubsets(context.Background(), maxSubsetsN+1); err == nil {
		t.Error("CountSubsets accepted n beyond its limit")
	}
	if _, err := CountDerangements(context.Background(), maxPermutationsN+1); err == nil {
		t.Error("CountDerangements accepted n beyond its limit")
	}
}

func TestRoutinesHonorCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fns := map[string]func(context.Context, uint64) (any, error){
		"sum":          SumOfSquares,
		"sort":         SortMedian,
		"pairs":        CountPairs,
		"triples":      CountTriples,
		"subsets":      CountSubsets,
		"permutations": CountDerangements,
		"fib":          FibonacciBits,
	}
	sizes := map[string]uint64{
		"sum": 1 << 20, "sort": 1000, "pairs": 100, "triples": 10,
		"subsets": 20, "permutations": 10, "fib": 1000,
	}
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := fn(ctx, sizes[name])
			if !errors.Is(err, context.Canceled) {
				t.Errorf("got %v, want context.Canceled", err)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()
	want := []string{"fib", "pairs", "permutations", "sort", "subsets", "sum", "triples"}
	if got := reg.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	models := growth.NewRegistry(growth.Float64Limits)
	for _, name := range reg.List() {
		rt := reg.MustGet(name)
		if rt.Func == nil {
			t.Errorf("%s: nil Func", name)
		}
		if _, err := models.Get(rt.Growth); err != nil {
			t.Errorf("%s: growth %q is not a known model", name, rt.Growth)
		}
		if len(rt.DefaultSizes) < 2 {
			t.Errorf("%s: need at least one sample and a final size", name)
		}
		for i := 1; i < len(rt.DefaultSizes); i++ {
			if rt.DefaultSizes[i] <= rt.DefaultSizes[i-1] {
				t.Errorf("%s: default sizes not increasing: %v", name, rt.DefaultSizes)
			}
		}
		if w := rt.Watch(); w.Name != name || w.Func == nil {
			t.Errorf("%s: Watch() = %+v", name, w)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	_, err := reg.Get("nope")
	var valErr apperrors.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "routine" {
		t.Fatalf("Get(nope) error = %v, want ValidationError on routine", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet did not panic")
		}
	}()
	reg.MustGet("nope")
}

func TestRegistryReplace(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	reg.Register(Routine{Name: "x", Description: "first"})
	reg.Register(Routine{Name: "x", Description: "second"})
	if got := reg.MustGet("x").Description; got != "second" {
		t.Errorf("Description = %q, want second", got)
	}
	if n := len(reg.List()); n != 1 {
		t.Errorf("List() has %d entries, want 1", n)
	}
}
