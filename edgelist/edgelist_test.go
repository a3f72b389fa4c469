package edgelist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlrank/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_Basic parses a small whitespace-delimited list and checks the
// dense renumbering (first-appearance order) and both adjacency sides.
func TestRead_Basic(t *testing.T) {
	const input = "alpha beta\nbeta gamma\nalpha gamma\n"

	g, idx, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, idx.Labels(), "indices follow first appearance")

	a, ok := idx.IndexOf("alpha")
	require.True(t, ok)
	c, ok := idx.IndexOf("gamma")
	require.True(t, ok)
	assert.True(t, g.HasEdge(a, c))
	assert.False(t, g.HasEdge(c, a))
	assert.Equal(t, "beta", idx.LabelOf(1))
}

// TestRead_Delimiters verifies commas, mixed separators, comments, and
// blank lines are all handled.
func TestRead_Delimiters(t *testing.T) {
	const input = `# link graph
a,b

b , c
c	a
`
	g, idx, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	_, ok := idx.IndexOf("c")
	assert.True(t, ok)
}

// TestRead_DuplicatesCollapsed verifies repeated pairs are deduplicated
// silently, keeping the digraph invariant.
func TestRead_DuplicatesCollapsed(t *testing.T) {
	const input = "x y\nx y\ny x\n"

	g, _, err := edgelist.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size(), "x→y twice collapses, y→x stays distinct")
}

// TestRead_Undirected verifies WithUndirected mirrors every edge and
// keeps self-loops single.
func TestRead_Undirected(t *testing.T) {
	const input = "u v\nw w\n"

	g, idx, err := edgelist.Read(strings.NewReader(input), edgelist.WithUndirected())
	require.NoError(t, err)

	u, _ := idx.IndexOf("u")
	v, _ := idx.IndexOf("v")
	w, _ := idx.IndexOf("w")
	assert.True(t, g.HasEdge(u, v))
	assert.True(t, g.HasEdge(v, u))
	assert.True(t, g.HasEdge(w, w))
	assert.Equal(t, 3, g.Size(), "mirrored pair plus one self-loop")
}

// TestRead_BadLine verifies malformed lines fail with the line number.
func TestRead_BadLine(t *testing.T) {
	_, _, err := edgelist.Read(strings.NewReader("a b\nlonely\n"))
	require.ErrorIs(t, err, edgelist.ErrBadLine)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = edgelist.Read(strings.NewReader("a b c\n"))
	assert.ErrorIs(t, err, edgelist.ErrBadLine)
}

// TestRead_EmptyInput verifies comment-only or empty input errors.
func TestRead_EmptyInput(t *testing.T) {
	_, _, err := edgelist.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, edgelist.ErrEmptyInput)

	_, _, err = edgelist.Read(strings.NewReader("# nothing here\n\n"))
	assert.ErrorIs(t, err, edgelist.ErrEmptyInput)
}

// TestRead_CustomComment verifies WithComment swaps the marker.
func TestRead_CustomComment(t *testing.T) {
	const input = "% skip me\na b\n"

	g, _, err := edgelist.Read(strings.NewReader(input), edgelist.WithComment('%'))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
}

// TestIndex_OutOfRange verifies LabelOf is total.
func TestIndex_OutOfRange(t *testing.T) {
	_, idx, err := edgelist.Read(strings.NewReader("a b\n"))
	require.NoError(t, err)
	assert.Equal(t, "", idx.LabelOf(-1))
	assert.Equal(t, "", idx.LabelOf(2))
	assert.Equal(t, 2, idx.Len())
}
