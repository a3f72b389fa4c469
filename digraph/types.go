// Package digraph defines the Digraph and Builder types plus sentinel
// errors for dense directed graph construction.
package digraph

import "errors"

// Sentinel errors for digraph construction.
var (
	// ErrNoVertices indicates a graph with zero (or negative) vertices was requested.
	ErrNoVertices = errors.New("digraph: vertex count must be at least 1")

	// ErrVertexRange indicates an edge endpoint outside the [0, N) namespace.
	ErrVertexRange = errors.New("digraph: vertex index out of range")

	// ErrDuplicateEdge indicates the same ordered pair was added twice.
	ErrDuplicateEdge = errors.New("digraph: duplicate edge")
)

// Digraph is an immutable directed graph over the dense vertex namespace
// [0, N). Both adjacency directions are stored in compressed-sparse-row
// form: offsets[v]..offsets[v+1] bounds vertex v's row in the flat
// neighbor array, and each row is sorted ascending.
//
// A Digraph is never mutated after Build, so it may be read concurrently
// by any number of goroutines without synchronization.
type Digraph struct {
	n int // number of vertices
	m int // number of edges

	// Forward adjacency: outTargets[outOffsets[v]:outOffsets[v+1]]
	// holds the sorted out-neighbors of v.
	outOffsets []int
	outTargets []int

	// Reverse adjacency: inSources[inOffsets[v]:inOffsets[v+1]]
	// holds the sorted in-neighbors of v.
	inOffsets []int
	inSources []int
}

// Order returns the number of vertices N.
func (g *Digraph) Order() int { return g.n }

// Size returns the number of directed edges.
func (g *Digraph) Size() int { return g.m }
