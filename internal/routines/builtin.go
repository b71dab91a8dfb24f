package routines

import (
	"context"
	"fmt"
	"math/big"
	"math/bits"
	"math/rand/v2"
	"slices"

	"github.com/agbru/speedwatch/internal/growth"
)

// checkEvery is how many inner iterations run between context checks.
const checkEvery = 1 << 16

const (
	maxSubsetsN      = 40
	maxPermutationsN = 13
)

func builtins() []Routine {
	return []Routine{
		{
			Name:         "sum",
			Description:  "sum of squares 1..n modulo 2^64",
			Growth:       growth.LinearName,
			DefaultSizes: []uint64{100_000, 1_000_000, 10_000_000, 100_000_000},
			Func:         SumOfSquares,
		},
		{
			Name:         "sort",
			Description:  "sort n pseudo-random integers, return the median",
			Growth:       growth.NLog2NName,
			DefaultSizes: []uint64{10_000, 100_000, 1_000_000, 10_000_000},
			Func:         SortMedian,
		},
		{
			Name:         "pairs",
			Description:  "count pairs i<j<n with i*j ≡ 1 (mod 7)",
			Growth:       growth.SquareName,
			DefaultSizes: []uint64{1_000, 2_000, 4_000, 8_000, 16_000},
			Func:         CountPairs,
		},
		{
			Name:         "triples",
			Description:  "count Pythagorean triples with hypotenuse up to n",
			Growth:       growth.CubeName,
			DefaultSizes: []uint64{50, 100, 200, 400, 800},
			Func:         CountTriples,
		},
		{
			Name:         "subsets",
			Description:  "count subsets of 1..n whose sum is divisible by n+1",
			Growth:       growth.ExpName,
			DefaultSizes: []uint64{12, 14, 16, 18, 20, 24},
			Func:         CountSubsets,
		},
		{
			Name:         "permutations",
			Description:  "count derangements of n items by enumeration",
			Growth:       growth.FactorialName,
			DefaultSizes: []uint64{6, 7, 8, 9, 10, 11},
			Func:         CountDerangements,
		},
		{
			Name:         "fib",
			Description:  "bit length of F(n) by fast doubling",
			Growth:       growth.NLog2NName,
			DefaultSizes: []uint64{10_000, 100_000, 1_000_000, 10_000_000},
			Func:         FibonacciBits,
		},
	}
}

// SumOfSquares returns the sum of i*i for i in 1..n, wrapping on overflow.
func SumOfSquares(ctx context.Context, n uint64) (any, error) {
	var sum uint64
	for i := uint64(1); i <= n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		sum += i * i
	}
	return sum, nil
}

// SortMedian sorts n pseudo-random values seeded by n and returns the median.
func SortMedian(ctx context.Context, n uint64) (any, error) {
	rng := rand.New(rand.NewPCG(n, 0x5eed))
	values := make([]uint32, n)
	for i := range values {
		values[i] = rng.Uint32()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.Sort(values)
	return values[len(values)/2], nil
}

// CountPairs counts pairs 0<i<j<n with i*j ≡ 1 (mod 7).
func CountPairs(ctx context.Context, n uint64) (any, error) {
	var count uint64
	for i := uint64(1); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			if (i*j)%7 == 1 {
				count++
			}
		}
	}
	return count, nil
}

// CountTriples counts triples a<b<c<=n with a²+b²=c² by exhaustive search.
func CountTriples(ctx context.Context, n uint64) (any, error) {
	var count uint64
	for c := uint64(1); c <= n; c++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cc := c * c
		for b := uint64(1); b < c; b++ {
			for a := uint64(1); a < b; a++ {
				if a*a+b*b == cc {
					count++
				}
			}
		}
	}
	return count, nil
}

// CountSubsets counts the subsets of {1..n}, including the empty set, whose
// sum is divisible by n+1. Subsets are visited in Gray code order so each
// step adds or removes a single element.
func CountSubsets(ctx context.Context, n uint64) (any, error) {
	if n > maxSubsetsN {
		return nil, fmt.Errorf("n=%d exceeds the enumeration limit of %d", n, maxSubsetsN)
	}
	mod := n + 1
	var sum, count uint64
	count = 1 // empty set
	in := make([]bool, n)
	total := uint64(1) << n
	for i := uint64(1); i < total; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		k := bits.TrailingZeros64(i)
		if in[k] {
			sum -= uint64(k + 1)
		} else {
			sum += uint64(k + 1)
		}
		in[k] = !in[k]
		if sum%mod == 0 {
			count++
		}
	}
	return count, nil
}

// CountDerangements enumerates every permutation of n items with Heap's
// algorithm and counts those without a fixed point.
func CountDerangements(ctx context.Context, n uint64) (any, error) {
	if n > maxPermutationsN {
		return nil, fmt.Errorf("n=%d exceeds the enumeration limit of %d", n, maxPermutationsN)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	derangement := func() bool {
		for i, v := range perm {
			if i == v {
				return false
			}
		}
		return true
	}

	var count, visited uint64
	if derangement() {
		count++
	}
	c := make([]int, n)
	for i := 0; i < int(n); {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			visited++
			if visited%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			if derangement() {
				count++
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return count, nil
}

// FibonacciBits computes F(n) with the fast doubling identities
//
//	F(2k)   = F(k)·(2F(k+1) − F(k))
//	F(2k+1) = F(k)² + F(k+1)²
//
// and returns its bit length.
func FibonacciBits(ctx context.Context, n uint64) (any, error) {
	a, b := big.NewInt(0), big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// t1 = F(2k), t2 = F(2k+1)
		t1.Lsh(b, 1).Sub(t1, a).Mul(t1, a)
		t2.Mul(a, a)
		a.Mul(b, b).Add(a, t2)
		t2.Set(a)
		a.Set(t1)
		b.Set(t2)
		if (n>>uint(i))&1 == 1 {
			a, b = b, a.Add(a, b)
		}
	}
	return a.BitLen(), nil
}
