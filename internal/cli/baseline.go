// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densim/baseline"
	"github.com/katalvlaran/densim/metagraph"
)

type baselineOpts struct {
	input         string
	kind          string
	maxMu         float64
	points        int
	printElements bool
	json          bool
}

func (c *CLI) baselineCommand() *cobra.Command {
	var opts baselineOpts

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Run a fixed-grid baseline sweep",
		Long: `Baseline evaluates the similarity baseline (edges, similarity first) or the
density baseline (nodes, links first) on an evenly spaced grid of the
trade-off weight and scores every selection by its edge similarity and
density.`,
		Example: `  densim baseline -i data/aarhus.edges --kind density --max-mu 10 --points 101`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runBaseline(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input edge list")
	f.StringVar(&opts.kind, "kind", baseline.Similarity.String(), "baseline: similarity or density")
	f.Float64Var(&opts.maxMu, "max-mu", baseline.DefaultMaxMu, "upper end of the weight grid")
	f.IntVar(&opts.points, "points", baseline.DefaultPoints, "number of grid points")
	f.BoolVarP(&opts.printElements, "print-elements", "p", false, "list the elements of every selection")
	f.BoolVar(&opts.json, "json", false, "write the report as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runBaseline(cmd *cobra.Command, opts baselineOpts) error {
	ctx := cmd.Context()
	f := cmd.Flags()
	if f.Changed("kind") {
		c.cfg.Baseline.Kind = opts.kind
	}
	if f.Changed("max-mu") {
		c.cfg.Baseline.MaxMu = opts.maxMu
	}
	if f.Changed("points") {
		c.cfg.Baseline.Points = opts.points
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	kind, err := c.cfg.BaselineKind()
	if err != nil {
		return err
	}

	// Scores always use edge-mode similarity.
	edges, err := c.loadInput(ctx, opts.input, baseline.Similarity.Mode())
	if err != nil {
		return err
	}
	ev, err := baseline.NewEvaluator(edges.graph, edges.index)
	if err != nil {
		return err
	}
	ds := edges
	if kind.Mode() != edges.graph.Mode() {
		if ds, err = c.loadInput(ctx, opts.input, kind.Mode()); err != nil {
			return err
		}
	}

	net, err := metagraph.BuildBaseline(ds.index, 0)
	if err != nil {
		return err
	}
	sess, solver, err := c.openSolver(ctx, net)
	if err != nil {
		return err
	}
	defer sess.Close()

	bo := c.cfg.BaselineOptions()
	bo.Logger = loggerFromContext(ctx)
	sw, err := baseline.NewSweep(solver, ds.graph, kind, ev, bo)
	if err != nil {
		return err
	}
	points, runErr := sw.Run(ctx)

	rep := baselineReport{RunID: c.runID, Kind: kind.String(), Points: points}
	if opts.json {
		if err := rep.writeJSON(c.out); err != nil {
			return err
		}
	} else {
		rep.print(printer{c.out}, opts.printElements)
	}

	return runErr
}
