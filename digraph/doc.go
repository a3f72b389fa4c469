// Package digraph provides an immutable dense directed graph with
// forward and reverse adjacency, built once via a Builder and then
// shared freely between readers.
//
// What
//
//   - Vertices live in a contiguous integer namespace [0, N); any label
//     renumbering happens upstream (see package edgelist).
//   - Edges are simple ordered pairs (src, dst): no parallel edges,
//     self-loops permitted.
//   - Both adjacency directions are precomputed in compressed-sparse-row
//     form: OutNeighbors(v) answers "who does v link to", InNeighbors(v)
//     answers "who links to v", each as a sorted subslice with no
//     per-call allocation.
//
// Why
//
//   - Link-analysis algorithms (HITS, PageRank-style iterations) walk
//     both edge directions every round; CSR keeps each phase a tight
//     bounded loop over two flat arrays.
//   - Immutability after Build makes concurrent solver invocations safe
//     without locks: the graph is read-only input by contract.
//
// Determinism
//
//	CSR rows are sorted ascending, so neighbor iteration order is a pure
//	function of the edge set — independent of insertion order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Build:           O(V + E log E) time, O(V + E) space
//   - OutNeighbors:    O(1)
//   - InNeighbors:     O(1)
//   - HasEdge:         O(log deg(src))
//
// Usage
//
//	b, err := digraph.NewBuilder(4)
//	if err != nil { ... }
//	_ = b.AddEdge(0, 1)
//	_ = b.AddEdge(0, 2)
//	_ = b.AddUndirected(1, 3) // inserts 1→3 and 3→1
//	g := b.Build()
//	for _, w := range g.OutNeighbors(0) { ... }
//
// Errors
//
//   - ErrNoVertices     if a Builder is requested for n < 1.
//   - ErrVertexRange    if an edge endpoint falls outside [0, N).
//   - ErrDuplicateEdge  if the same ordered pair is added twice.
package digraph
