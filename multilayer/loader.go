// SPDX-License-Identifier: MIT
// Package: densim/multilayer
//
// loader.go — record parsing and the Load/LoadFile entry points.

package multilayer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line; layered edge lists are short lines.
const maxLineBytes = 1 << 20

// Record is one parsed input line: an edge {A,B} present in Layer.
type Record struct {
	Layer int
	A, B  int64
}

// ParseRecord parses "<layer> <a> <b> [ignored...]". Fields after the third
// are ignored (weights are not part of the network structure).
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("expected 3 integer fields, got %d", len(fields))
	}
	layer, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("layer id %q is not an integer", fields[0])
	}
	a, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("endpoint %q is not an integer", fields[1])
	}
	b, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("endpoint %q is not an integer", fields[2])
	}

	return Record{Layer: layer, A: a, B: b}, nil
}

// Load reads a layered edge list and builds the Graph for mode.
// Blank lines are skipped; any other unparsable line aborts the load with a
// *MalformedInputError.
//
// Complexity: O(R · log L) for R records and at most L layers per element.
func Load(r io.Reader, mode Mode) (*Graph, error) {
	if mode != EdgeMode && mode != NodeMode {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	g := newGraph(mode)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return nil, &MalformedInputError{Line: lineNo, Text: text, Reason: err.Error()}
		}
		g.observe(rec.Layer, rec.A, rec.B)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("multilayer: read input: %w", err)
	}

	return g, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, mode Mode) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("multilayer: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, mode)
}

// sortElementsByNodeOrder orders edges by the first-seen positions of their
// endpoints (earlier endpoint first, then the later one).
func sortElementsByNodeOrder(es []Element, index map[int64]int) {
	key := func(e Element) (int, int) {
		a, b := index[e.U], index[e.V]
		if b < a {
			a, b = b, a
		}

		return a, b
	}
	sort.Slice(es, func(i, j int) bool {
		ai, bi := key(es[i])
		aj, bj := key(es[j])
		if ai != aj {
			return ai < aj
		}

		return bi < bj
	})
}
