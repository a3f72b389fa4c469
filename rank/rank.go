// Package rank turns dense score vectors into rankings: full orderings,
// top-k cuts, and threshold filters, with deterministic tie-breaking.
//
// Entries are ordered by descending score; ties break by ascending
// vertex index, so the same scores always yield the same listing. An
// optional Labeler (satisfied by *edgelist.Index) attaches the original
// labels; a nil Labeler leaves Label empty.
package rank

import "sort"

// Labeler maps a dense vertex index back to its original label.
// *edgelist.Index satisfies it.
type Labeler interface {
	LabelOf(i int) string
}

// Entry is one ranked vertex.
type Entry struct {
	Vertex int
	Label  string
	Score  float64
}

// Order returns the full ranking of scores: descending score, ties by
// ascending vertex index.
func Order(scores []float64, lab Labeler) []Entry {
	entries := make([]Entry, len(scores))
	for v, s := range scores {
		entries[v] = Entry{Vertex: v, Score: s}
		if lab != nil {
			entries[v].Label = lab.LabelOf(v)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}

		return entries[i].Vertex < entries[j].Vertex
	})

	return entries
}

// Top returns the k highest-scoring entries (all of them when k exceeds
// the vertex count, none when k ≤ 0).
func Top(scores []float64, k int, lab Labeler) []Entry {
	if k <= 0 {
		return nil
	}
	entries := Order(scores, lab)
	if k < len(entries) {
		entries = entries[:k]
	}

	return entries
}

// AtLeast returns every entry with Score ≥ threshold, ranked.
func AtLeast(scores []float64, threshold float64, lab Labeler) []Entry {
	entries := Order(scores, lab)
	cut := sort.Search(len(entries), func(i int) bool {
		return entries[i].Score < threshold
	})

	return entries[:cut]
}
