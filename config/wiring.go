// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/densim/baseline"
	"github.com/katalvlaran/densim/flow"
	"github.com/katalvlaran/densim/mincut"
	"github.com/katalvlaran/densim/search"
	"github.com/katalvlaran/densim/similarity"
	"github.com/katalvlaran/densim/tradeoff"
)

// SimilarityOptions returns the pair enumeration options.
func (c Config) SimilarityOptions() ([]similarity.Option, error) {
	st, err := similarity.ParseStrategy(c.Similarity.Strategy)
	if err != nil {
		return nil, err
	}
	lp, err := similarity.ParseLinkPolicy(c.Similarity.LinkPolicy)
	if err != nil {
		return nil, err
	}

	return []similarity.Option{similarity.WithStrategy(st), similarity.WithLinkPolicy(lp)}, nil
}

// Oracle returns a fresh in-memory oracle using the configured flow engine.
func (c Config) Oracle() (*mincut.Memory, error) {
	alg, err := flow.ParseAlgorithm(c.Flow.Algorithm)
	if err != nil {
		return nil, err
	}
	fo := flow.DefaultOptions()
	if c.Flow.Epsilon > 0 {
		fo.Epsilon = c.Flow.Epsilon
	}

	return mincut.NewMemory(mincut.WithAlgorithm(alg), mincut.WithFlowOptions(fo)), nil
}

// SolverOptions returns the fixed-lambda loop options; extra are appended.
func (c Config) SolverOptions(extra ...tradeoff.Option) []tradeoff.Option {
	return append([]tradeoff.Option{
		tradeoff.WithPrecision(c.Precision),
		tradeoff.WithMaxIters(c.MaxIters),
	}, extra...)
}

// SearchOptions returns the breakpoint search options for a graph with
// the given number of elements. A zero LambdaDelta is derived from it.
func (c Config) SearchOptions(elements int) search.Options {
	o := search.DefaultOptions(elements)
	o.LambdaMin, o.LambdaMax = c.Search.LambdaMin, c.Search.LambdaMax
	if c.Search.LambdaDelta > 0 {
		o.LambdaDelta = c.Search.LambdaDelta
	}
	o.MaxProbes = c.Search.MaxProbes
	o.TimeBudget = c.Search.TimeBudget
	o.AllowedDifference = c.AllowedDifference

	return o
}

// BaselineKind returns the configured baseline.
func (c Config) BaselineKind() (baseline.Kind, error) {
	return baseline.ParseKind(c.Baseline.Kind)
}

// BaselineOptions returns the sweep grid.
func (c Config) BaselineOptions() baseline.Options {
	return baseline.Options{MaxMu: c.Baseline.MaxMu, Points: c.Baseline.Points}
}
