package digraph

import "sort"

// OutNeighbors returns the sorted out-neighbors of v as a subslice of the
// graph's internal CSR storage. Callers must treat the slice as read-only.
// Returns nil if v is outside [0, N).
func (g *Digraph) OutNeighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return g.outTargets[g.outOffsets[v]:g.outOffsets[v+1]]
}

// InNeighbors returns the sorted in-neighbors of v as a subslice of the
// graph's internal CSR storage. Callers must treat the slice as read-only.
// Returns nil if v is outside [0, N).
func (g *Digraph) InNeighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return g.inSources[g.inOffsets[v]:g.inOffsets[v+1]]
}

// OutDegree returns the number of edges leaving v (0 for out-of-range v).
func (g *Digraph) OutDegree(v int) int { return len(g.OutNeighbors(v)) }

// InDegree returns the number of edges entering v (0 for out-of-range v).
func (g *Digraph) InDegree(v int) int { return len(g.InNeighbors(v)) }

// HasEdge reports whether the directed edge src→dst exists.
// Binary search over the sorted CSR row: O(log deg(src)).
func (g *Digraph) HasEdge(src, dst int) bool {
	row := g.OutNeighbors(src)
	i := sort.SearchInts(row, dst)

	return i < len(row) && row[i] == dst
}
