// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densim/metagraph"
	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/search"
)

type searchOpts struct {
	input         string
	snapshot      string
	network       string
	lambdaMin     float64
	lambdaMax     float64
	lambdaDelta   float64
	maxProbes     int
	timeBudget    time.Duration
	printElements bool
	json          bool
}

func (c *CLI) searchCommand() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Enumerate the distinct density/similarity trade-off solutions",
		Long: `Search probes the optimal edge subset for lambda values in [lambda-min,
lambda-max], bisecting every interval whose endpoint solutions differ until it
is narrower than lambda-delta, and reports each distinct solution.

The graph comes from an edge list (-i) or from a snapshot written by
construct (--snapshot). A DIMACS network written by construct may be given
with --network; element names are then taken from -i or --snapshot when
present.`,
		Example: `  densim search -i data/aarhus.edges
  densim search --snapshot out/metagraph_aarhus.json --lambda-max 10 -p`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSearch(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input edge list")
	f.StringVar(&opts.snapshot, "snapshot", "", "similarity snapshot written by construct")
	f.StringVar(&opts.network, "network", "", "parametric DIMACS network written by construct")
	f.Float64Var(&opts.lambdaMin, "lambda-min", 0, "lower end of the lambda range")
	f.Float64Var(&opts.lambdaMax, "lambda-max", search.DefaultLambdaMax, "upper end of the lambda range")
	f.Float64Var(&opts.lambdaDelta, "lambda-delta", 0, "narrowest interval to bisect (0: 0.001/E²)")
	f.IntVar(&opts.maxProbes, "max-probes", 0, "probe budget including both endpoints (0: unbounded)")
	f.DurationVar(&opts.timeBudget, "time-budget", 0, "wall-time budget (0: unbounded)")
	f.BoolVarP(&opts.printElements, "print-elements", "p", false, "list the edges of every solution")
	f.BoolVar(&opts.json, "json", false, "write the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("input", "snapshot")

	return cmd
}

// applySearchFlags copies explicitly set flags over the configuration.
func (c *CLI) applySearchFlags(cmd *cobra.Command, opts searchOpts) error {
	f := cmd.Flags()
	s := &c.cfg.Search
	if f.Changed("lambda-min") {
		s.LambdaMin = opts.lambdaMin
	}
	if f.Changed("lambda-max") {
		s.LambdaMax = opts.lambdaMax
	}
	if f.Changed("lambda-delta") {
		s.LambdaDelta = opts.lambdaDelta
	}
	if f.Changed("max-probes") {
		s.MaxProbes = opts.maxProbes
	}
	if f.Changed("time-budget") {
		s.TimeBudget = opts.timeBudget
	}

	return c.cfg.Validate()
}

func (c *CLI) runSearch(cmd *cobra.Command, opts searchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := c.applySearchFlags(cmd, opts); err != nil {
		return err
	}

	var (
		ds  *dataset
		err error
	)
	switch {
	case opts.snapshot != "":
		ds, err = c.loadSnapshot(ctx, opts.snapshot)
	case opts.input != "":
		ds, err = c.loadInput(ctx, opts.input, multilayer.EdgeMode)
	case opts.network == "":
		return errors.New("one of --input, --snapshot or --network is required")
	}
	if err != nil {
		return err
	}

	net, err := c.searchNetwork(ds, opts.network)
	if err != nil {
		return err
	}

	sess, solver, err := c.openSolver(ctx, net)
	if err != nil {
		return err
	}
	defer sess.Close()

	so := c.cfg.SearchOptions(net.ElementCount)
	so.Logger = logger
	srch, err := search.New(solver, so)
	if err != nil {
		return err
	}
	logger.Debug("searching", "lambda_min", so.LambdaMin, "lambda_max", so.LambdaMax,
		"lambda_delta", so.LambdaDelta, "max_probes", so.MaxProbes)

	res, runErr := srch.Run(ctx)
	rep := newSearchReport(c.runID, net, ds, res, opts.printElements)
	if opts.json {
		if err := rep.writeJSON(c.out); err != nil {
			return err
		}
	} else {
		rep.print(printer{c.out})
	}

	return runErr
}

// searchNetwork returns the parametric network to search: read from path
// when given, otherwise built from ds.
func (c *CLI) searchNetwork(ds *dataset, path string) (*metagraph.Network, error) {
	if path == "" {
		if ds.graph.Mode() != multilayer.EdgeMode {
			return nil, fmt.Errorf("search needs an edge-mode dataset, %s is %s", ds.name, ds.graph.Mode())
		}
		return metagraph.BuildParametric(ds.graph, ds.index, 0, 0)
	}

	net, err := metagraph.ReadDIMACSFile(path)
	if err != nil {
		return nil, err
	}
	if net.Kind != metagraph.Parametric {
		return nil, fmt.Errorf("%w: %s holds a %s network", metagraph.ErrModeMismatch, path, net.Kind)
	}
	if ds != nil && ds.graph.Len() != net.ElementCount {
		return nil, fmt.Errorf("%w: network has %d elements, dataset %s has %d",
			metagraph.ErrModeMismatch, net.ElementCount, ds.name, ds.graph.Len())
	}

	return net, nil
}
