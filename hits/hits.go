// Package hits computes hub and authority scores for directed graphs by
// power iteration, with L2 normalization each round and a strict
// convergence contract.
package hits

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlrank/digraph"
)

// solver encapsulates the mutable state of one Solve call: the two
// double-buffered vector pairs and the resolved options. The input graph
// is read-only throughout.
type solver struct {
	g    *digraph.Digraph
	opts Options
	n    int

	hub, hubNext   []float64
	auth, authNext []float64
}

// Solve runs HITS on g, applying any number of functional Options.
//
// On success the returned Result holds the converged hub and authority
// vectors, each rescaled to unit L2 norm (a vector receiving no mass
// from the edge set stays the zero vector). On failure it returns
// ErrNilGraph or ErrBadNStart for invalid input, ErrOptionViolation for
// bad options, or *ConvergenceError once MaxIterations rounds pass
// without the round delta Σ_v |hub'[v]−hub[v]| dropping below
// N·Tolerance.
func Solve(g *digraph.Digraph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	s := &solver{
		g:        g,
		opts:     o,
		n:        n,
		hub:      make([]float64, n),
		hubNext:  make([]float64, n),
		auth:     make([]float64, n),
		authNext: make([]float64, n),
	}
	if err := s.seed(); err != nil {
		return nil, err
	}

	// Power iteration: two half-steps, normalization, convergence test.
	var delta float64
	for iter := 1; iter <= o.MaxIterations; iter++ {
		// Authority half-step: sums of the previous round's hub values
		// over in-neighbors, normalized before the hub half-step reads it.
		s.authorityPhase()
		normalize(s.authNext)

		// Hub half-step: sums of the just-computed authorities over
		// out-neighbors.
		s.hubPhase()
		normalize(s.hubNext)

		// L1 distance on the hub vector is the convergence metric;
		// authority convergence follows from hub convergence.
		delta = floats.Distance(s.hubNext, s.hub, 1)

		// Publish the round by swapping the buffer pairs.
		s.hub, s.hubNext = s.hubNext, s.hub
		s.auth, s.authNext = s.authNext, s.auth

		if delta < float64(n)*o.Tolerance {
			return &Result{
				Hub:        s.hub,
				Authority:  s.auth,
				Iterations: iter,
				Delta:      delta,
			}, nil
		}
	}

	return nil, &ConvergenceError{
		Hub:        s.hub,
		Authority:  s.auth,
		Delta:      delta,
		Iterations: o.MaxIterations,
	}
}

// seed initializes the hub vector: uniform 1/N by default, or the
// validated NStart vector rescaled to unit L2 norm.
func (s *solver) seed() error {
	if s.opts.NStart == nil {
		uniform := 1 / float64(s.n)
		for v := range s.hub {
			s.hub[v] = uniform
		}
		return nil
	}

	if len(s.opts.NStart) != s.n {
		return fmt.Errorf("%w: length %d, want %d", ErrBadNStart, len(s.opts.NStart), s.n)
	}
	for v, x := range s.opts.NStart {
		if x < 0 || math.IsNaN(x) {
			return fmt.Errorf("%w: entry %d is %g, want ≥ 0", ErrBadNStart, v, x)
		}
	}
	copy(s.hub, s.opts.NStart)
	norm := floats.Norm(s.hub, 2)
	if norm == 0 {
		return fmt.Errorf("%w: all entries are zero", ErrBadNStart)
	}
	floats.Scale(1/norm, s.hub)

	return nil
}

// authorityPhase computes authNext[v] = Σ hub[u] over in-neighbors u.
// Vertices with no in-neighbors get 0.
func (s *solver) authorityPhase() {
	s.forEachVertex(func(lo, hi int) {
		for v := lo; v < hi; v++ {
			var sum float64
			for _, u := range s.g.InNeighbors(v) {
				sum += s.hub[u]
			}
			s.authNext[v] = sum
		}
	})
}

// hubPhase computes hubNext[v] = Σ authNext[w] over out-neighbors w,
// using the freshly normalized authority values of this round.
// Vertices with no out-neighbors get 0.
func (s *solver) hubPhase() {
	s.forEachVertex(func(lo, hi int) {
		for v := lo; v < hi; v++ {
			var sum float64
			for _, w := range s.g.OutNeighbors(v) {
				sum += s.authNext[w]
			}
			s.hubNext[v] = sum
		}
	})
}

// forEachVertex runs fn over [0, n) — inline when sequential, or sharded
// into contiguous blocks across Workers goroutines with a full barrier
// before returning. Each vertex is written by exactly one shard and all
// shards read only buffers finalized before the phase started, so the
// parallel path is bit-identical to the sequential one.
func (s *solver) forEachVertex(fn func(lo, hi int)) {
	w := s.opts.Workers
	if w <= 1 || s.n < w {
		fn(0, s.n)
		return
	}

	var wg sync.WaitGroup
	chunk := (s.n + w - 1) / w
	for lo := 0; lo < s.n; lo += chunk {
		hi := lo + chunk
		if hi > s.n {
			hi = s.n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// normalize rescales v to unit L2 norm. A zero vector is left untouched:
// a graph region receiving no mass converges to zero scores by contract,
// not to a division error.
func normalize(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, v)
}
