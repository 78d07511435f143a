// SPDX-License-Identifier: MIT
// Package: densim/similarity
//
// snapshot.go — persistable intermediate state (element maps + Index).
//
// Format:
//   - Indented JSON, pairs in canonical order, slices ordered by element id.
//   - float64 values use Go's shortest round-trip encoding, so
//     Save(Load(Save(x))) is byte-identical to Save(x).

package similarity

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/densim/multilayer"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// PairValue is one stored entry of a sparse pair map.
type PairValue struct {
	A     multilayer.ElementID `json:"a"`
	B     multilayer.ElementID `json:"b"`
	Value float64              `json:"value"`
}

// Snapshot is the serialized form of a Graph and its Index.
type Snapshot struct {
	Version    int                   `json:"version"`
	RunID      string                `json:"run_id,omitempty"`
	Mode       string                `json:"mode"`
	Elements   []multilayer.Element  `json:"elements"`
	Layers     []multilayer.LayerSet `json:"layers"`
	Nodes      []int64               `json:"nodes"`
	BaseEdges  []multilayer.Element  `json:"base_edges"`
	Similarity []PairValue           `json:"similarity"`
	Link       []PairValue           `json:"link"`
	SimDegree  []float64             `json:"sim_degree"`
	LinkDegree []float64             `json:"link_degree"`
}

// NewSnapshot captures g and x. runID is free-form metadata.
func NewSnapshot(g *multilayer.Graph, x *Index, runID string) *Snapshot {
	s := &Snapshot{
		Version:    SnapshotVersion,
		RunID:      runID,
		Mode:       g.Mode().String(),
		Elements:   g.Elements(),
		Layers:     make([]multilayer.LayerSet, g.Len()),
		Nodes:      g.Nodes(),
		BaseEdges:  g.BaseEdges(),
		Similarity: pairValues(x.sim),
		Link:       pairValues(x.link),
		SimDegree:  append([]float64(nil), x.simDeg...),
		LinkDegree: append([]float64(nil), x.linkDeg...),
	}
	for i := range s.Layers {
		s.Layers[i] = g.Layers(multilayer.ElementID(i + 1)).Clone()
	}
	if s.BaseEdges == nil {
		s.BaseEdges = []multilayer.Element{}
	}

	return s
}

// Restore rebuilds the Graph and Index without recomputing any pair.
func (s *Snapshot) Restore() (*multilayer.Graph, *Index, error) {
	if s.Version != SnapshotVersion {
		return nil, nil, fmt.Errorf("%w: version %d, want %d", ErrSnapshot, s.Version, SnapshotVersion)
	}
	mode, err := multilayer.ParseMode(s.Mode)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	g, err := multilayer.FromElements(mode, s.Elements, s.Layers, s.Nodes, s.BaseEdges)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	n := g.Len()
	if len(s.SimDegree) != n || len(s.LinkDegree) != n {
		return nil, nil, fmt.Errorf("%w: degree vectors sized %d/%d for %d elements",
			ErrSnapshot, len(s.SimDegree), len(s.LinkDegree), n)
	}

	x := newIndex(mode, n)
	copy(x.simDeg, s.SimDegree)
	copy(x.linkDeg, s.LinkDegree)
	for _, pv := range s.Similarity {
		p, err := checkedPair(pv, n)
		if err != nil {
			return nil, nil, err
		}
		x.sim[p] = pv.Value
	}
	for _, pv := range s.Link {
		p, err := checkedPair(pv, n)
		if err != nil {
			return nil, nil, err
		}
		x.link[p] = pv.Value
	}

	return g, x, nil
}

// Save writes s as canonical indented JSON.
func (s *Snapshot) Save(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("similarity: encode snapshot: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

// SaveFile writes s to path.
func (s *Snapshot) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("similarity: create %s: %w", path, err)
	}
	if err := s.Save(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// LoadSnapshot decodes a snapshot written by Save.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}

	return &s, nil
}

// LoadSnapshotFile opens path and calls LoadSnapshot.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("similarity: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadSnapshot(f)
}

func pairValues(m map[multilayer.Pair]float64) []PairValue {
	keys := sortedKeys(m)
	out := make([]PairValue, len(keys))
	for i, p := range keys {
		out[i] = PairValue{A: p.A, B: p.B, Value: m[p]}
	}

	return out
}

func checkedPair(pv PairValue, n int) (multilayer.Pair, error) {
	if pv.A < 1 || pv.B < 1 || int(pv.A) > n || int(pv.B) > n || pv.A >= pv.B {
		return multilayer.Pair{}, fmt.Errorf("%w: pair (%d, %d) out of range", ErrSnapshot, pv.A, pv.B)
	}

	return multilayer.Pair{A: pv.A, B: pv.B}, nil
}
