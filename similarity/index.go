// SPDX-License-Identifier: MIT
// Package: densim/similarity
//
// index.go — the sparse similarity/link maps and degree aggregates.
//
// Determinism:
//   - SimilarityPairs/LinkPairs/Pairs return canonical (A, B) order.
// Concurrency:
//   - An Index is read-only after Compute or Restore returns.

package similarity

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/densim/multilayer"
)

// Index holds the pairwise relations of one element mode.
type Index struct {
	mode multilayer.Mode
	n    int

	sim  map[multilayer.Pair]float64
	link map[multilayer.Pair]float64

	simDeg  []float64 // id-1 → Σ similarity over pairs containing id
	linkDeg []float64 // id-1 → Σ link weight over pairs containing id
}

func newIndex(mode multilayer.Mode, n int) *Index {
	return &Index{
		mode:    mode,
		n:       n,
		sim:     make(map[multilayer.Pair]float64),
		link:    make(map[multilayer.Pair]float64),
		simDeg:  make([]float64, n),
		linkDeg: make([]float64, n),
	}
}

// Mode returns the element mode the index was computed for.
func (x *Index) Mode() multilayer.Mode { return x.mode }

// Len returns the number of elements.
func (x *Index) Len() int { return x.n }

// Similarity returns the Jaccard similarity of a and b, 0 when not stored.
// Argument order does not matter.
func (x *Index) Similarity(a, b multilayer.ElementID) float64 {
	return x.sim[multilayer.NewPair(a, b)]
}

// Link returns the link weight of a and b, 0 when not linked.
func (x *Index) Link(a, b multilayer.ElementID) float64 {
	return x.link[multilayer.NewPair(a, b)]
}

// SimilarityCount returns the number of stored similarity pairs.
func (x *Index) SimilarityCount() int { return len(x.sim) }

// LinkCount returns the number of stored link pairs.
func (x *Index) LinkCount() int { return len(x.link) }

// SimDegree returns Σ similarity over all pairs containing id.
func (x *Index) SimDegree(id multilayer.ElementID) float64 {
	if id < 1 || int(id) > x.n {
		return 0
	}

	return x.simDeg[id-1]
}

// LinkDegree returns Σ link weight over all pairs containing id.
func (x *Index) LinkDegree(id multilayer.ElementID) float64 {
	if id < 1 || int(id) > x.n {
		return 0
	}

	return x.linkDeg[id-1]
}

// TotalSimilarity returns Σ_e SimDegree(e), i.e. twice the pair similarity mass.
func (x *Index) TotalSimilarity() float64 { return floats.Sum(x.simDeg) }

// TotalLink returns Σ_e LinkDegree(e).
func (x *Index) TotalLink() float64 { return floats.Sum(x.linkDeg) }

// SimilarityPairs returns all stored similarity pairs in canonical order.
func (x *Index) SimilarityPairs() []multilayer.Pair { return sortedKeys(x.sim) }

// LinkPairs returns all stored link pairs in canonical order.
func (x *Index) LinkPairs() []multilayer.Pair { return sortedKeys(x.link) }

// Pairs returns the union of similarity and link pairs in canonical order.
func (x *Index) Pairs() []multilayer.Pair {
	seen := make(map[multilayer.Pair]struct{}, len(x.sim)+len(x.link))
	out := make([]multilayer.Pair, 0, len(x.sim)+len(x.link))
	for _, m := range [2]map[multilayer.Pair]float64{x.sim, x.link} {
		for p := range m {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	multilayer.SortPairs(out)

	return out
}

func (x *Index) addSimilarity(p multilayer.Pair, v float64) {
	x.sim[p] = v
	x.simDeg[p.A-1] += v
	x.simDeg[p.B-1] += v
}

func (x *Index) addLink(p multilayer.Pair, w float64) {
	x.link[p] = w
	x.linkDeg[p.A-1] += w
	x.linkDeg[p.B-1] += w
}

func sortedKeys(m map[multilayer.Pair]float64) []multilayer.Pair {
	out := make([]multilayer.Pair, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	multilayer.SortPairs(out)

	return out
}
