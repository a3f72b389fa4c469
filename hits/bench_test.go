package hits_test

import (
	"testing"

	"github.com/katalvlaran/lvlrank/builder"
	"github.com/katalvlaran/lvlrank/digraph"
	"github.com/katalvlaran/lvlrank/hits"
)

// benchmarkSolve runs Solve on g with the given options, failing fast on
// unexpected errors.
func benchmarkSolve(b *testing.B, g *digraph.Digraph, opts ...hits.Option) {
	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		if _, err := hits.Solve(g, opts...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// sparseFixture builds a seeded random graph of n vertices with expected
// degree about 10, shared by the benchmarks below.
func sparseFixture(b *testing.B, n int) *digraph.Digraph {
	const seed = 1
	g, err := builder.Build(n, builder.RandomSparse(10/float64(n), seed))
	if err != nil {
		b.Fatalf("fixture: %v", err)
	}

	return g
}

// BenchmarkSolve_Karate benchmarks the canonical 34-vertex benchmark graph.
func BenchmarkSolve_Karate(b *testing.B) {
	g, err := builder.KarateClub()
	if err != nil {
		b.Fatalf("fixture: %v", err)
	}
	benchmarkSolve(b, g)
}

// BenchmarkSolve_Sparse1k benchmarks a 1000-vertex random sparse graph.
func BenchmarkSolve_Sparse1k(b *testing.B) {
	benchmarkSolve(b, sparseFixture(b, 1000))
}

// BenchmarkSolve_Sparse10k benchmarks a 10000-vertex random sparse graph.
func BenchmarkSolve_Sparse10k(b *testing.B) {
	benchmarkSolve(b, sparseFixture(b, 10000))
}

// BenchmarkSolve_Sparse10kWorkers4 benchmarks the sharded path on the
// same 10000-vertex fixture.
func BenchmarkSolve_Sparse10kWorkers4(b *testing.B) {
	benchmarkSolve(b, sparseFixture(b, 10000), hits.WithWorkers(4))
}
