package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvlrank/builder"
	"github.com/katalvlaran/lvlrank/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_NilConstructor verifies nil constructors are rejected.
func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(3, nil)
	assert.ErrorIs(t, err, builder.ErrNilConstructor)
}

// TestBuild_PropagatesVertexCount verifies Build rejects n < 1 via the
// underlying digraph sentinel.
func TestBuild_PropagatesVertexCount(t *testing.T) {
	_, err := builder.Build(0, builder.Cycle())
	assert.ErrorIs(t, err, digraph.ErrNoVertices)
}

// TestCycle_Shape checks the directed ring 0→1→…→(n-1)→0.
func TestCycle_Shape(t *testing.T) {
	const n = 5
	g, err := builder.Build(n, builder.Cycle())
	require.NoError(t, err)

	assert.Equal(t, n, g.Size())
	for v := 0; v < n; v++ {
		assert.Equal(t, []int{(v + 1) % n}, g.OutNeighbors(v), "vertex %d must link to its successor", v)
	}
}

// TestCycle_TooFew verifies the minimum vertex count.
func TestCycle_TooFew(t *testing.T) {
	_, err := builder.Build(1, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestPath_Shape checks the directed chain, including its endpoints.
func TestPath_Shape(t *testing.T) {
	g, err := builder.Build(4, builder.Path())
	require.NoError(t, err)

	assert.Equal(t, 3, g.Size())
	assert.Empty(t, g.InNeighbors(0), "chain head has no in-neighbors")
	assert.Empty(t, g.OutNeighbors(3), "chain tail has no out-neighbors")
}

// TestStar_Shape checks hub 0 links every spoke and nothing links back.
func TestStar_Shape(t *testing.T) {
	const n = 6
	g, err := builder.Build(n, builder.Star())
	require.NoError(t, err)

	assert.Equal(t, n-1, g.Size())
	assert.Equal(t, n-1, g.OutDegree(0))
	for v := 1; v < n; v++ {
		assert.Equal(t, []int{0}, g.InNeighbors(v))
		assert.Empty(t, g.OutNeighbors(v))
	}
}

// TestComplete_Size verifies all n(n-1) ordered pairs are present.
func TestComplete_Size(t *testing.T) {
	const n = 5
	g, err := builder.Build(n, builder.Complete())
	require.NoError(t, err)
	assert.Equal(t, n*(n-1), g.Size())
	assert.False(t, g.HasEdge(2, 2), "complete graph has no self-loops")
}

// TestRandomSparse_Deterministic verifies the same seed reproduces the
// same edge set, and an invalid probability is rejected.
func TestRandomSparse_Deterministic(t *testing.T) {
	const (
		n    = 30
		p    = 0.1
		seed = 42
	)
	g1, err := builder.Build(n, builder.RandomSparse(p, seed))
	require.NoError(t, err)
	g2, err := builder.Build(n, builder.RandomSparse(p, seed))
	require.NoError(t, err)

	require.Equal(t, g1.Size(), g2.Size())
	for v := 0; v < n; v++ {
		assert.Equal(t, g1.OutNeighbors(v), g2.OutNeighbors(v), "vertex %d differs between runs", v)
	}

	_, err = builder.Build(n, builder.RandomSparse(1.5, seed))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

// TestKarateClub_Shape verifies order, symmetric size, and symmetry of
// the benchmark graph.
func TestKarateClub_Shape(t *testing.T) {
	g, err := builder.KarateClub()
	require.NoError(t, err)

	assert.Equal(t, 34, g.Order())
	assert.Equal(t, 156, g.Size(), "78 friendships, both directions")
	for v := 0; v < g.Order(); v++ {
		assert.Equal(t, g.InNeighbors(v), g.OutNeighbors(v), "vertex %d adjacency must be symmetric", v)
	}
}
