// SPDX-License-Identifier: MIT
// Package: densim/metagraph
//
// dimacs.go — DIMACS-style text codec.
//
// Format:
//
//	c densim kind parametric        (optional metadata comments)
//	c densim mode edge
//	c densim elements <E>
//	c densim nodes <N>
//	p par-max <vertexCount> <arcCount>
//	n <source> s
//	n <sink> t
//	a <from> <to> <cap> [<cap2>]
//
// Capacities use the shortest decimal that round-trips; unbounded arcs are
// written as 1.79769e+308 and read back as +Inf.

package metagraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/densim/multilayer"
)

const metaPrefix = "densim"

// WriteDIMACS writes n to w.
func WriteDIMACS(w io.Writer, n *Network) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c %s kind %s\n", metaPrefix, n.Kind)
	fmt.Fprintf(bw, "c %s mode %s\n", metaPrefix, n.Mode)
	fmt.Fprintf(bw, "c %s elements %d\n", metaPrefix, n.ElementCount)
	fmt.Fprintf(bw, "c %s nodes %d\n", metaPrefix, n.NodeCount)
	fmt.Fprintf(bw, "p par-max %d %d\n", n.Vertices, len(n.Arcs))
	fmt.Fprintf(bw, "n %d s\n", n.Source)
	fmt.Fprintf(bw, "n %d t\n", n.Sink)
	for _, a := range n.Arcs {
		bw.WriteString("a ")
		bw.WriteString(strconv.Itoa(a.From))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(a.To))
		for _, c := range a.Caps {
			bw.WriteByte(' ')
			bw.WriteString(formatCapacity(c))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteDIMACSFile writes n to path.
func WriteDIMACSFile(path string, n *Network) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metagraph: create %s: %w", path, err)
	}
	if err := WriteDIMACS(f, n); err != nil {
		_ = f.Close()
		return fmt.Errorf("metagraph: write %s: %w", path, err)
	}

	return f.Close()
}

// ReadDIMACS parses a network written by WriteDIMACS. Files without the
// metadata comments are accepted: the kind is inferred from the number of
// capacity components and the element count from the sink arcs.
func ReadDIMACS(r io.Reader) (*Network, error) {
	n := &Network{}
	var (
		arcCount               = -1
		haveKind, haveElements bool
		haveNodes, haveMode    bool
		lineNo                 int
	)
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: line %d: %s", ErrMalformedNetwork, lineNo, fmt.Sprintf(format, args...))
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			if len(fields) != 4 || fields[1] != metaPrefix {
				continue
			}
			var err error
			switch fields[2] {
			case "kind":
				n.Kind, err = parseKind(fields[3])
				haveKind = true
			case "mode":
				n.Mode, err = multilayer.ParseMode(fields[3])
				haveMode = true
			case "elements":
				n.ElementCount, err = strconv.Atoi(fields[3])
				haveElements = true
			case "nodes":
				n.NodeCount, err = strconv.Atoi(fields[3])
				haveNodes = true
			}
			if err != nil {
				return nil, fail("metadata %q: %v", fields[2], err)
			}
		case "p":
			if len(fields) != 4 {
				return nil, fail("problem line needs 4 fields")
			}
			v, errV := strconv.Atoi(fields[2])
			a, errA := strconv.Atoi(fields[3])
			if errV != nil || errA != nil || v < 2 || a < 0 {
				return nil, fail("bad problem line %q", sc.Text())
			}
			n.Vertices, arcCount = v, a
			n.Arcs = make([]Arc, 0, a)
		case "n":
			if len(fields) != 3 || arcCount < 0 {
				return nil, fail("bad terminal line %q", sc.Text())
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil || id < 1 || id > n.Vertices {
				return nil, fail("terminal %q out of range", fields[1])
			}
			switch fields[2] {
			case "s":
				n.Source = id
			case "t":
				n.Sink = id
			default:
				return nil, fail("unknown terminal kind %q", fields[2])
			}
		case "a":
			if arcCount < 0 {
				return nil, fail("arc before problem line")
			}
			if len(fields) != 4 && len(fields) != 5 {
				return nil, fail("arc needs 1 or 2 capacities")
			}
			from, errF := strconv.Atoi(fields[1])
			to, errT := strconv.Atoi(fields[2])
			if errF != nil || errT != nil || from < 1 || to < 1 || from > n.Vertices || to > n.Vertices {
				return nil, fail("arc endpoints out of range")
			}
			caps := make([]float64, 0, 2)
			for _, f := range fields[3:] {
				c, err := parseCapacity(f)
				if err != nil {
					return nil, fail("capacity %q: %v", f, err)
				}
				caps = append(caps, c)
			}
			n.Arcs = append(n.Arcs, Arc{From: from, To: to, Caps: caps})
		default:
			return nil, fail("unknown line type %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("metagraph: read network: %w", err)
	}
	if arcCount < 0 {
		return nil, fmt.Errorf("%w: missing problem line", ErrMalformedNetwork)
	}
	if len(n.Arcs) != arcCount {
		return nil, fmt.Errorf("%w: header announces %d arcs, found %d", ErrMalformedNetwork, arcCount, len(n.Arcs))
	}
	if n.Source == 0 || n.Sink == 0 || n.Source == n.Sink {
		return nil, fmt.Errorf("%w: source and sink must be declared and distinct", ErrMalformedNetwork)
	}

	finishRead(n, haveKind, haveElements, haveNodes, haveMode)

	return n, nil
}

// ReadDIMACSFile opens path and calls ReadDIMACS.
func ReadDIMACSFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metagraph: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadDIMACS(f)
}

// finishRead fills in whatever the metadata comments did not state and
// recomputes the objective totals from the sink arcs.
func finishRead(n *Network, haveKind, haveElements, haveNodes, haveMode bool) {
	var sinkCaps [2][]float64
	sinkArcs := 0
	twoComponents := false
	for _, a := range n.Arcs {
		if len(a.Caps) == 2 {
			twoComponents = true
		}
		if a.To != n.Sink {
			continue
		}
		sinkArcs++
		for k, c := range a.Caps {
			sinkCaps[k] = append(sinkCaps[k], c)
		}
	}
	if !haveKind && twoComponents {
		n.Kind = Baseline
	}
	if !haveElements {
		n.ElementCount = sinkArcs
	}
	if !haveNodes && n.Kind == Parametric {
		n.NodeCount = n.Vertices - 2 - n.ElementCount
	}
	if !haveMode && n.Kind == Parametric {
		n.Mode = multilayer.EdgeMode
	}
	for k := range sinkCaps {
		n.Totals[k] = 2 * floats.Sum(sinkCaps[k])
	}
}

func formatCapacity(c float64) string {
	if math.IsInf(c, 1) || c >= Infinity {
		return "1.79769e+308"
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

func parseCapacity(s string) (float64, error) {
	c, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(c) {
		return 0, fmt.Errorf("NaN capacity")
	}
	if c >= Infinity {
		return math.Inf(1), nil
	}

	return c, nil
}
