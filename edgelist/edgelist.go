package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvlrank/digraph"
)

// Sentinel errors for edge-list ingestion.
var (
	// ErrBadLine indicates a line with other than exactly two fields.
	ErrBadLine = errors.New("edgelist: malformed line")

	// ErrEmptyInput indicates the input contained no edges.
	ErrEmptyInput = errors.New("edgelist: no edges in input")
)

// defaultComment is the line-comment marker skipped during parsing.
const defaultComment = '#'

// Option configures Read behavior via functional arguments.
type Option func(*options)

type options struct {
	undirected bool
	comment    rune
}

// WithUndirected mirrors every parsed edge, producing a symmetric
// directed graph (u→v and v→u per input line).
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// WithComment replaces the default '#' line-comment marker.
func WithComment(marker rune) Option {
	return func(o *options) { o.comment = marker }
}

// Index is the bidirectional mapping between original labels and the
// dense [0, N) indices assigned during ingestion. Immutable once built.
type Index struct {
	byLabel map[string]int
	labels  []string
}

// IndexOf returns the dense index of label, and whether it was seen.
func (x *Index) IndexOf(label string) (int, bool) {
	i, ok := x.byLabel[label]

	return i, ok
}

// LabelOf returns the original label of dense index i, or "" when i is
// outside [0, N).
func (x *Index) LabelOf(i int) string {
	if i < 0 || i >= len(x.labels) {
		return ""
	}

	return x.labels[i]
}

// Len returns the number of distinct labels.
func (x *Index) Len() int { return len(x.labels) }

// Labels returns a copy of the labels in dense-index order.
func (x *Index) Labels() []string {
	out := make([]string, len(x.labels))
	copy(out, x.labels)

	return out
}

// intern returns the dense index for label, assigning the next free one
// on first appearance.
func (x *Index) intern(label string) int {
	if i, ok := x.byLabel[label]; ok {
		return i
	}
	i := len(x.labels)
	x.byLabel[label] = i
	x.labels = append(x.labels, label)

	return i
}

// Read parses an edge list from r into an immutable Digraph plus the
// label Index. Lines are split on any mix of whitespace and commas;
// blank lines and comment lines are skipped; duplicate ordered pairs
// are collapsed.
func Read(r io.Reader, opts ...Option) (*digraph.Digraph, *Index, error) {
	o := options{comment: defaultComment}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{byLabel: make(map[string]int)}
	var (
		edges [][2]int
		seen  = make(map[[2]int]struct{})
	)
	add := func(src, dst int) {
		key := [2]int{src, dst}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, string(o.comment)) {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadLine, lineNo, len(fields))
		}
		src := idx.intern(fields[0])
		dst := idx.intern(fields[1])
		add(src, dst)
		if o.undirected && src != dst {
			add(dst, src)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("edgelist: scan: %w", err)
	}
	if len(edges) == 0 {
		return nil, nil, ErrEmptyInput
	}

	b, err := digraph.NewBuilder(idx.Len())
	if err != nil {
		return nil, nil, fmt.Errorf("edgelist: %w", err)
	}
	for _, e := range edges {
		// Range and duplicate violations are unreachable here: indices
		// come from interning and pairs were already deduplicated.
		if err = b.AddEdge(e[0], e[1]); err != nil {
			return nil, nil, fmt.Errorf("edgelist: %w", err)
		}
	}

	return b.Build(), idx, nil
}
