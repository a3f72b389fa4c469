// Package lvlrank is an in-memory toolkit for link analysis on directed
// graphs — from a compact dense graph representation to the HITS
// hub/authority solver and ranking helpers around it.
//
// 🚀 What is lvlrank?
//
//	A small, thread-friendly library that brings together:
//		• digraph/  — immutable dense directed graphs with forward & reverse
//		              adjacency in compressed-sparse-row form
//		• hits/     — the Hyperlink-Induced Topic Search solver: iterative
//		              hub/authority scoring with L2 normalization and a
//		              strict convergence contract
//		• edgelist/ — edge-list ingestion: delimited label pairs in,
//		              dense-index graph plus label mapping out
//		• rank/     — result consumption: rankings, top-k, thresholds
//		• builder/  — deterministic graph fixtures (cycles, stars,
//		              random sparse graphs, the classic karate-club bench)
//
// ✨ Why choose lvlrank?
//
//   - Strict contracts — sentinel errors, no panics, no silent fallbacks
//   - Deterministic — sorted adjacency, reproducible scores, seeded fixtures
//   - Pure Go core — gonum for the numerics, nothing else
//   - Safe sharing — graphs are immutable once built, so any number of
//     solver invocations may read them concurrently
//
// Quick ASCII example:
//
//	    A──▶B──▶C
//	    │       ▲
//	    └──▶D───┘
//
//	A links out a lot (a strong hub); C is linked to a lot (a strong
//	authority). HITS quantifies both notions at once.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlrank/hits
package lvlrank
