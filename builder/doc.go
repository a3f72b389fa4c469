// Package builder assembles deterministic digraph fixtures from small
// composable constructors — rings, stars, complete graphs, seeded random
// graphs, and the classic karate-club benchmark.
//
// Design contract (strict):
//   - One orchestrator: Build(n, cons...). Creates a digraph.Builder for
//     n vertices, runs the constructors in order, freezes the result.
//   - Constructors validate their parameter domain early and return
//     sentinel errors; they never panic.
//   - Determinism: the same n, constructor order, and seeds produce an
//     identical graph, edge for edge.
//
// Usage
//
//	g, err := builder.Build(10, builder.Cycle())
//	g, err := builder.Build(50, builder.RandomSparse(0.1, 42))
//	g, err := builder.KarateClub()
//
// Errors
//
//   - ErrTooFewVertices      if a topology needs more vertices than n.
//   - ErrInvalidProbability  if RandomSparse p is outside [0, 1].
//   - ErrNilConstructor      if a nil Constructor is passed to Build.
//   - Wrapped digraph errors if two constructors emit the same edge.
package builder
