// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/densim/baseline"
	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/search"
)

// solutionRow is one reported solution.
type solutionRow struct {
	Lambda     float64              `json:"lambda"`
	Similarity float64              `json:"similarity"`
	Density    float64              `json:"density"`
	Size       int                  `json:"size"`
	Elements   []multilayer.Element `json:"elements,omitempty"`
	IDs        []int                `json:"ids,omitempty"`
	Converged  bool                 `json:"converged"`
}

type searchReport struct {
	RunID          string        `json:"run_id"`
	Dataset        string        `json:"dataset,omitempty"`
	Elements       int           `json:"elements"`
	Solutions      []solutionRow `json:"solutions"`
	Iterations     int           `json:"iterations"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
	NonConverged   int           `json:"non_converged"`
	Exhausted      bool          `json:"exhausted"`
}

// newSearchReport converts res. Element lists are resolved through ds when
// present, otherwise reported as ids.
func newSearchReport(runID string, net *metagraph.Network, ds *dataset, res search.Result, withElements bool) searchReport {
	rep := searchReport{
		RunID:          runID,
		Elements:       net.ElementCount,
		Solutions:      make([]solutionRow, 0, len(res.Breakpoints)),
		Iterations:     res.Iterations,
		ElapsedSeconds: res.Elapsed.Seconds(),
		NonConverged:   res.NonConverged,
		Exhausted:      res.Exhausted,
	}
	if ds != nil {
		rep.Dataset = ds.name
	}
	for _, sol := range res.Breakpoints {
		row := solutionRow{
			Lambda: sol.Lambda, Similarity: sol.Similarity, Density: sol.Density,
			Size: len(sol.Selected), Converged: sol.Converged,
		}
		if withElements {
			for _, id := range sol.Selected {
				if ds == nil {
					row.IDs = append(row.IDs, int(id))
					continue
				}
				if e, ok := ds.graph.Element(id); ok {
					row.Elements = append(row.Elements, e)
				}
			}
		}
		rep.Solutions = append(rep.Solutions, row)
	}

	return rep
}

func (r searchReport) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func (r searchReport) print(p printer) {
	title := "Solutions"
	if r.Dataset != "" {
		title += " for " + r.Dataset
	}
	p.title("%s", title)
	for _, row := range r.Solutions {
		printRow(p, "lambda", row)
	}
	fmt.Fprintln(p.w)
	p.keyValue("solutions", fmt.Sprint(len(r.Solutions)))
	p.keyValue("iterations", fmt.Sprint(r.Iterations))
	p.keyValue("probing time", fmt.Sprintf("%.3fs", r.ElapsedSeconds))
	p.keyValue("run", r.RunID)
	if r.NonConverged > 0 {
		p.warning("%d probes stopped at the iteration limit", r.NonConverged)
	}
	if r.Exhausted {
		p.warning("budget exhausted with intervals left unexplored")
	}
}

func printRow(p printer, param string, row solutionRow) {
	fmt.Fprintf(p.w, "%s: %s, similarity: %s, density: %s\n",
		param, number(row.Lambda), number(row.Similarity), number(row.Density))
	switch {
	case len(row.Elements) > 0:
		parts := make([]string, len(row.Elements))
		for i, e := range row.Elements {
			parts[i] = e.String()
		}
		p.detail("Edgelist: %s", strings.Join(parts, " "))
		p.detail("Size: %d", row.Size)
	case len(row.IDs) > 0:
		p.detail("Ids: %v", row.IDs)
		p.detail("Size: %d", row.Size)
	}
}

type baselineReport struct {
	RunID  string           `json:"run_id"`
	Kind   string           `json:"kind"`
	Points []baseline.Point `json:"points"`
}

func (r baselineReport) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func (r baselineReport) print(p printer, withElements bool) {
	p.title("Baseline %s", r.Kind)
	empty := 0
	for _, pt := range r.Points {
		if pt.Empty {
			empty++
			p.detail("gamma: %10.6g, empty selection", pt.Mu)
			continue
		}
		row := solutionRow{Lambda: pt.Mu, Similarity: pt.Similarity, Density: pt.Density, Size: len(pt.Selected)}
		if withElements {
			row.Elements = pt.Selected
		}
		printRow(p, "gamma", row)
	}
	fmt.Fprintln(p.w)
	p.keyValue("points", fmt.Sprint(len(r.Points)))
	p.keyValue("run", r.RunID)
	if empty > 0 {
		p.warning("%d points selected no edges", empty)
	}
}
