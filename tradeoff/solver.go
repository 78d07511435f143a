// SPDX-License-Identifier: MIT
// Package: densim/tradeoff
//
// solver.go — the fixed-lambda convergence loop.
//
// Concurrency:
//   - A Solver may be shared; each Solve holds the session's evaluation slot
//     for its whole loop, so concurrent Solves run one after another.

package tradeoff

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/densim/metrics"
	"github.com/katalvlaran/densim/mincut"
	"github.com/katalvlaran/densim/multilayer"
)

// Defaults of the convergence loop.
const (
	DefaultPrecision = 1e-10
	DefaultMaxIters  = 1000
)

// ErrInvalidOption indicates a non-positive precision or iteration budget.
var ErrInvalidOption = errors.New("tradeoff: invalid option")

// Option customizes a Solver.
type Option func(*Solver)

// WithPrecision sets the gap below which the loop stops (default 1e-10).
func WithPrecision(p float64) Option { return func(s *Solver) { s.precision = p } }

// WithMaxIters bounds the iterations of one solve (default 1000).
func WithMaxIters(n int) Option { return func(s *Solver) { s.maxIters = n } }

// WithLogger sets the logger; nil keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGaps records the per-iteration gap sequence in every Solution.
func WithGaps(on bool) Option { return func(s *Solver) { s.keepGaps = on } }

// Solver runs fixed-lambda loops against one oracle session.
type Solver struct {
	sess      *mincut.Session
	precision float64
	maxIters  int
	keepGaps  bool
	logger    *log.Logger
}

// NewSolver returns a Solver over sess.
func NewSolver(sess *mincut.Session, opts ...Option) (*Solver, error) {
	s := &Solver{
		sess:      sess,
		precision: DefaultPrecision,
		maxIters:  DefaultMaxIters,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.precision <= 0 || s.maxIters < 1 {
		return nil, fmt.Errorf("%w: precision %g, max iterations %d", ErrInvalidOption, s.precision, s.maxIters)
	}

	return s, nil
}

// Solve runs the parametric loop for lambda, starting from c = −lambda·N
// where N is the number of base-node vertices of the network.
func (s *Solver) Solve(ctx context.Context, lambda float64) (Solution, error) {
	net := s.sess.Network()
	return s.run(ctx, "parametric", lambda, -lambda*float64(net.NodeCount), true)
}

// SolveBaseline runs the loop on a baseline network for trade-off weight mu,
// starting from c = 0. Similarity and Density of the result are left zero.
func (s *Solver) SolveBaseline(ctx context.Context, mu float64) (Solution, error) {
	return s.run(ctx, "baseline", mu, 0, false)
}

// run is the Dinkelbach loop shared by both variants.
//
// Steps (iteration k):
//  1. ComputeCut; Q = −cut + ½·total.
//  2. Read (fe, fn) and the cut set into the ring's write slot.
//  3. Stop on Q < precision, fe == 0, or k == maxIters−1: return the
//     last committed snapshot.
//  4. Otherwise c' = c + Q/fe, commit estimates, raise source capacities to c'.
func (s *Solver) run(ctx context.Context, kind string, lambda, c float64, estimate bool) (Solution, error) {
	start := time.Now()
	net := s.sess.Network()
	n := net.ElementCount
	total := net.Total(lambda)

	ev, err := s.sess.Begin(n, lambda, c)
	if err != nil {
		return Solution{}, err
	}
	defer ev.Done()

	r := newRing(n)
	sol := Solution{Lambda: lambda}
	for k := 0; k < s.maxIters; k++ {
		if err := ev.ComputeCut(ctx); err != nil {
			return sol, err
		}
		metrics.CutsTotal.WithLabelValues(kind).Inc()
		cut, err := ev.CutValue()
		if err != nil {
			return sol, err
		}
		q := -cut + 0.5*total
		fe, fn, err := ev.CutSetSize()
		if err != nil {
			return sol, err
		}
		slot := r.slot()
		if err := ev.CutSet(slot.set); err != nil {
			return sol, err
		}
		sol.Iterations = k + 1
		sol.Threshold = c
		if s.keepGaps {
			sol.Gaps = append(sol.Gaps, q)
		}
		s.logger.Debug("iteration", "kind", kind, "lambda", lambda, "k", k, "gap", q, "c", c, "elements", fe, "others", fn)

		if q < s.precision || fe == 0 || k == s.maxIters-1 {
			sol.Converged = q < s.precision || fe == 0
			s.finish(&sol, r)
			s.observe(kind, sol, q, time.Since(start))
			return sol, nil
		}

		next := c + q/float64(fe)
		slot.elements, slot.others = fe, fn
		slot.similarity, slot.density = 0, 0
		if estimate {
			slot.similarity = c + (q+lambda*float64(fn))/float64(fe)
			if fn > 0 {
				slot.density = float64(fe) / float64(fn)
			}
		}
		r.commit()
		if err := ev.UpdateSourceCapacities(next); err != nil {
			return sol, err
		}
		c = next
	}

	// Unreachable: the last iteration always returns.
	return sol, nil
}

// finish copies the committed snapshot into sol.
func (s *Solver) finish(sol *Solution, r *ring) {
	snap, ok := r.committed()
	if !ok {
		sol.Empty = true
		sol.Selected = []multilayer.ElementID{}
		return
	}
	sol.Similarity, sol.Density, sol.Others = snap.similarity, snap.density, snap.others
	sol.Selected = make([]multilayer.ElementID, 0, snap.elements)
	for i, in := range snap.set {
		if in {
			sol.Selected = append(sol.Selected, multilayer.ElementID(i+1))
		}
	}
	sol.Empty = len(sol.Selected) == 0
}

func (s *Solver) observe(kind string, sol Solution, gap float64, elapsed time.Duration) {
	metrics.SolveIterations.WithLabelValues(kind).Observe(float64(sol.Iterations))
	metrics.SolveDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if !sol.Converged {
		metrics.NonConverged.WithLabelValues(kind).Inc()
		s.logger.Warn("fixed-lambda loop did not converge",
			"kind", kind, "lambda", sol.Lambda, "iterations", sol.Iterations, "gap", gap)
	}
}
