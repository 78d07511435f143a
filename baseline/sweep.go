// SPDX-License-Identifier: MIT
// Package: densim/baseline
//
// sweep.go — fixed-grid evaluation of a baseline network.
//
// Determinism:
//   - Points are evaluated in increasing mu; each is independent of the others.

package baseline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/densim/multilayer"
	"github.com/katalvlaran/densim/tradeoff"
)

// Grid defaults.
const (
	DefaultMaxMu  = 10.0
	DefaultPoints = 101
)

// Solver evaluates a baseline network for one trade-off weight.
// *tradeoff.Solver satisfies it.
type Solver interface {
	SolveBaseline(ctx context.Context, mu float64) (tradeoff.Solution, error)
}

// Options configures a Sweep.
type Options struct {
	MaxMu  float64
	Points int
	Logger *log.Logger
}

// DefaultOptions returns 101 points over [0, 10].
func DefaultOptions() Options {
	return Options{MaxMu: DefaultMaxMu, Points: DefaultPoints}
}

// Point is the scored outcome of one grid value.
type Point struct {
	Mu         float64              `json:"mu"`
	Similarity float64              `json:"similarity"`
	Density    float64              `json:"density"`
	Selected   []multilayer.Element `json:"selected"`
	Iterations int                  `json:"iterations"`
	Converged  bool                 `json:"converged"`
	// Empty marks a selection without edges; Similarity and Density are zero.
	Empty bool `json:"empty"`
}

// Sweep evaluates one baseline over a linear grid.
type Sweep struct {
	solver Solver
	g      *multilayer.Graph
	kind   Kind
	ev     *Evaluator
	opts   Options
	logger *log.Logger
}

// NewSweep returns a Sweep of kind over g, whose mode must match the kind,
// scoring selections with ev.
func NewSweep(s Solver, g *multilayer.Graph, kind Kind, ev *Evaluator, opts Options) (*Sweep, error) {
	if g.Mode() != kind.Mode() {
		return nil, fmt.Errorf("%w: %s baseline needs a %s graph, got %s", ErrInvalidOption, kind, kind.Mode(), g.Mode())
	}
	if opts.Points < 2 || !(opts.MaxMu > 0) || math.IsInf(opts.MaxMu, 0) {
		return nil, fmt.Errorf("%w: %d points over [0, %g]", ErrInvalidOption, opts.Points, opts.MaxMu)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Sweep{solver: s, g: g, kind: kind, ev: ev, opts: opts, logger: logger}, nil
}

// Grid returns the evaluated mu values.
func (s *Sweep) Grid() []float64 {
	return floats.Span(make([]float64, s.opts.Points), 0, s.opts.MaxMu)
}

// Run evaluates every grid value. On error the points computed so far are
// returned with it.
func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	grid := s.Grid()
	out := make([]Point, 0, len(grid))
	for _, mu := range grid {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		sol, err := s.solver.SolveBaseline(ctx, mu)
		if err != nil {
			return out, fmt.Errorf("baseline: mu=%g: %w", mu, err)
		}
		p := Point{Mu: mu, Iterations: sol.Iterations, Converged: sol.Converged}
		p.Selected = make([]multilayer.Element, 0, len(sol.Selected))
		for _, id := range sol.Selected {
			if e, ok := s.g.Element(id); ok {
				p.Selected = append(p.Selected, e)
			}
		}

		p.Similarity, p.Density, err = s.ev.Evaluate(s.kind, p.Selected)
		switch {
		case errors.Is(err, ErrEmptyPairSet):
			p.Empty = true
			s.logger.Debug("empty selection", "kind", s.kind, "mu", mu, "selected", len(p.Selected))
		case err != nil:
			return out, err
		default:
			s.logger.Info("baseline point", "kind", s.kind, "mu", mu,
				"similarity", p.Similarity, "density", p.Density, "size", len(p.Selected))
		}
		out = append(out, p)
	}

	return out, nil
}
