package digraph

import (
	"fmt"
	"sort"
)

// Builder accumulates directed edges over a fixed vertex count and
// freezes them into an immutable Digraph via Build.
//
// The builder rejects duplicate ordered pairs and out-of-range
// endpoints at insertion time, so a successfully built Digraph is
// structurally valid by construction.
type Builder struct {
	n     int
	edges [][2]int
	seen  map[[2]int]struct{}
}

// NewBuilder returns a Builder for a graph on n vertices, indexed [0, n).
// Returns ErrNoVertices for n < 1.
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got n=%d", ErrNoVertices, n)
	}

	return &Builder{
		n:    n,
		seen: make(map[[2]int]struct{}),
	}, nil
}

// Order returns the vertex count the builder was created with.
func (b *Builder) Order() int { return b.n }

// AddEdge inserts the directed edge src→dst. Self-loops (src == dst) are
// permitted. Returns ErrVertexRange if an endpoint is outside [0, N), or
// ErrDuplicateEdge if the ordered pair was already added.
func (b *Builder) AddEdge(src, dst int) error {
	if src < 0 || src >= b.n {
		return fmt.Errorf("%w: src=%d, n=%d", ErrVertexRange, src, b.n)
	}
	if dst < 0 || dst >= b.n {
		return fmt.Errorf("%w: dst=%d, n=%d", ErrVertexRange, dst, b.n)
	}
	key := [2]int{src, dst}
	if _, dup := b.seen[key]; dup {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, src, dst)
	}
	b.seen[key] = struct{}{}
	b.edges = append(b.edges, key)

	return nil
}

// AddUndirected inserts both u→v and v→u. A self-loop (u == v) inserts a
// single edge. Either direction already present yields ErrDuplicateEdge.
func (b *Builder) AddUndirected(u, v int) error {
	if err := b.AddEdge(u, v); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return b.AddEdge(v, u)
}

// Build freezes the accumulated edges into an immutable Digraph.
// Build may be called more than once; each call snapshots the edges
// added so far into a fresh graph.
//
// Complexity: O(V + E log E) time (row sorting dominates), O(V + E) space.
func (b *Builder) Build() *Digraph {
	g := &Digraph{
		n:          b.n,
		m:          len(b.edges),
		outOffsets: make([]int, b.n+1),
		outTargets: make([]int, len(b.edges)),
		inOffsets:  make([]int, b.n+1),
		inSources:  make([]int, len(b.edges)),
	}

	// Pass 1: degree counts into the offset arrays (shifted by one so the
	// prefix sum below lands each row at its final start position).
	for _, e := range b.edges {
		g.outOffsets[e[0]+1]++
		g.inOffsets[e[1]+1]++
	}
	for v := 0; v < b.n; v++ {
		g.outOffsets[v+1] += g.outOffsets[v]
		g.inOffsets[v+1] += g.inOffsets[v]
	}

	// Pass 2: scatter edges into their rows using per-vertex cursors.
	outNext := make([]int, b.n)
	copy(outNext, g.outOffsets[:b.n])
	inNext := make([]int, b.n)
	copy(inNext, g.inOffsets[:b.n])
	for _, e := range b.edges {
		g.outTargets[outNext[e[0]]] = e[1]
		outNext[e[0]]++
		g.inSources[inNext[e[1]]] = e[0]
		inNext[e[1]]++
	}

	// Pass 3: sort each row so iteration order is insertion-independent.
	for v := 0; v < b.n; v++ {
		sort.Ints(g.outTargets[g.outOffsets[v]:g.outOffsets[v+1]])
		sort.Ints(g.inSources[g.inOffsets[v]:g.inOffsets[v+1]])
	}

	return g
}
