// Package edgelist ingests directed graphs from plain edge lists: one
// "src dst" pair per line, fields split on whitespace or commas, with
// #-comments and blank lines skipped.
//
// Each distinct label is assigned a dense integer index in order of
// first appearance, so downstream algorithms (package hits) operate on
// the contiguous [0, N) namespace while the returned Index maps scores
// back to the original labels. Duplicate ordered pairs are collapsed
// silently: an edge list is a set of links, not a multiset.
//
// Usage
//
//	g, idx, err := edgelist.Read(strings.NewReader("a b\nb c\na c\n"))
//	i, ok := idx.IndexOf("b")
//	label := idx.LabelOf(0) // "a"
//
// Errors
//
//   - ErrBadLine    if a non-skipped line does not contain exactly two
//     fields (wrapped with the 1-based line number).
//   - ErrEmptyInput if the reader yields no edges at all.
//   - Scanner errors are wrapped and returned as-is otherwise.
package edgelist
