// constructors.go — deterministic topology constructors.
//
// Contract (all constructors):
//   - Validate the vertex-count domain first (fail fast, no work on
//     invalid input).
//   - Emit edges in ascending source order for stable composition.
//   - Return sentinel errors; never panic at runtime.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlrank/digraph"
)

// Minimum vertex counts per topology (no magic numbers).
const (
	minCycleVertices    = 2
	minPathVertices     = 2
	minStarVertices     = 2
	minCompleteVertices = 2
)

// Cycle returns a Constructor that builds the directed ring
// 0→1→…→(n-1)→0. Requires n ≥ 2.
func Cycle() Constructor {
	return func(b *digraph.Builder) error {
		n := b.Order()
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		for v := 0; v < n; v++ {
			if err := b.AddEdge(v, (v+1)%n); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the directed chain
// 0→1→…→(n-1). Requires n ≥ 2.
func Path() Constructor {
	return func(b *digraph.Builder) error {
		n := b.Order()
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		for v := 0; v+1 < n; v++ {
			if err := b.AddEdge(v, v+1); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Star returns a Constructor that links hub vertex 0 to every spoke
// 1..n-1. Requires n ≥ 2.
func Star() Constructor {
	return func(b *digraph.Builder) error {
		n := b.Order()
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
		}
		for v := 1; v < n; v++ {
			if err := b.AddEdge(0, v); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that adds every ordered pair (u, v)
// with u ≠ v. Requires n ≥ 2.
func Complete() Constructor {
	return func(b *digraph.Builder) error {
		n := b.Order()
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := b.AddEdge(u, v); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that adds each ordered pair (u, v),
// u ≠ v, independently with probability p, drawn from a rand.Rand seeded
// with seed. The same (n, p, seed) always yields the same edge set.
func RandomSparse(p float64, seed int64) Constructor {
	return func(b *digraph.Builder) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		rng := rand.New(rand.NewSource(seed))
		n := b.Order()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if rng.Float64() >= p {
					continue
				}
				if err := b.AddEdge(u, v); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}
