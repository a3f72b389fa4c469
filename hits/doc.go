// Package hits implements Hyperlink-Induced Topic Search (HITS) over a
// digraph.Digraph, producing the mutually reinforcing hub and authority
// score vectors via power iteration.
//
// What
//
//   - A vertex is a good hub if it links to good authorities; a good
//     authority if it is linked from good hubs. HITS makes that circular
//     definition precise as the dominant eigenvectors of AᵀA and AAᵀ and
//     finds them by iterating two half-steps per round:
//   - authority[v] ← Σ hub[u] over in-neighbors u of v
//   - hub[v]       ← Σ authority[w] over out-neighbors w of v
//   - Both vectors are rescaled to unit L2 norm every round; a vector
//     whose norm is zero (no edges feeding it) stays the zero vector.
//   - Iteration stops when Σ_v |hub'[v] − hub[v]| < N·Tolerance, or fails
//     with *ConvergenceError once MaxIterations rounds are exhausted.
//
// Why
//
//   - Rank pages, papers, accounts — any directed link structure — along
//     two complementary axes instead of one PageRank-style score.
//   - The failure contract is strict: a run that does not converge is a
//     failed run, but the error still carries the last vectors and delta
//     so callers can inspect the near-fixed point or retry with a larger
//     budget.
//
// Determinism
//
//	Neighbor sums follow the digraph's sorted CSR rows and reductions are
//	single-threaded, so results are bit-identical across runs — including
//	runs sharded across workers with WithWorkers.
//
// Concurrency
//
//	Solve owns all of its working state; the input graph is read-only.
//	Any number of Solve calls may share one Digraph concurrently. With
//	WithWorkers(w), each round shards the per-vertex updates across w
//	goroutines with a barrier between phases; every shard reads only the
//	previous round's finalized buffer.
//
// Complexity (V = |Vertices|, E = |Edges|, K = rounds)
//
//   - Time:   O(K·(V + E))
//   - Memory: O(V) — two reusable buffer pairs, swapped each round
//
// Usage
//
//	res, err := hits.Solve(g)
//	if err != nil {
//	    var conv *hits.ConvergenceError
//	    if errors.As(err, &conv) {
//	        // conv.Hub / conv.Authority hold the last iterate
//	    }
//	    return err
//	}
//	fmt.Println(res.Hub, res.Authority)
//
// Options
//
//   - DefaultOptions(): 100 iterations, tolerance 1e-5, normalized,
//     sequential, uniform start.
//   - WithMaxIterations(k):  iteration cap, k ≥ 1.
//   - WithTolerance(tol):    convergence tolerance, tol > 0.
//   - WithNStart(seed):      replace the uniform hub start (length N,
//     non-negative, not all zero; rescaled to unit L2 norm).
//   - WithNormalized(b):     interface parity with the canonical
//     algorithm; only true is supported, false is rejected.
//   - WithWorkers(w):        shard per-round updates across w goroutines.
//
// Errors
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrOptionViolation   if an invalid option value was supplied.
//   - ErrBadNStart         if the seed vector is malformed.
//   - *ConvergenceError    if MaxIterations rounds pass without meeting
//     the tolerance; matches ErrNotConverged under errors.Is.
package hits
