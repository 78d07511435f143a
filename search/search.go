// SPDX-License-Identifier: MIT
// Package: densim/search
//
// search.go — breadth-first bisection of the lambda range.
//
// Determinism:
//   - Intervals are processed in FIFO order; for a deterministic Prober the
//     probe sequence, the breakpoints and the iteration count are fixed.
//
// Concurrency:
//   - Run is sequential: one probe at a time against one Prober.

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/densim/metrics"
	"github.com/katalvlaran/densim/tradeoff"
)

var (
	// ErrInvalidRange indicates a negative, inverted or non-finite lambda range.
	ErrInvalidRange = errors.New("search: invalid lambda range")

	// ErrInvalidOption indicates a negative delta, tolerance or budget.
	ErrInvalidOption = errors.New("search: invalid option")
)

// Prober evaluates the optimal solution for one lambda. *tradeoff.Solver
// satisfies it.
type Prober interface {
	Solve(ctx context.Context, lambda float64) (tradeoff.Solution, error)
}

// Result is the outcome of a search.
type Result struct {
	// Probes lists every evaluated lambda in probing order.
	Probes []tradeoff.Solution
	// Breakpoints lists the distinct solutions ordered by lambda.
	Breakpoints []tradeoff.Solution
	// Iterations counts probes, the two endpoints included.
	Iterations int
	// Elapsed is the time spent inside the Prober.
	Elapsed time.Duration
	// NonConverged counts probes whose fixed-lambda loop hit its budget.
	NonConverged int
	// Exhausted reports that a budget stopped the search with intervals pending.
	Exhausted bool
}

// Search runs breakpoint searches with fixed options.
type Search struct {
	prober Prober
	opts   Options
	logger *log.Logger
}

// New validates opts and returns a Search over p.
func New(p Prober, opts Options) (*Search, error) {
	if opts.LambdaMin < 0 || opts.LambdaMax < opts.LambdaMin ||
		math.IsInf(opts.LambdaMax, 0) || math.IsNaN(opts.LambdaMin) || math.IsNaN(opts.LambdaMax) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, opts.LambdaMin, opts.LambdaMax)
	}
	if opts.LambdaDelta < 0 || opts.AllowedDifference < 0 || opts.MaxProbes < 0 || opts.TimeBudget < 0 {
		return nil, fmt.Errorf("%w: delta %g, allowed difference %g, max probes %d, time budget %s",
			ErrInvalidOption, opts.LambdaDelta, opts.AllowedDifference, opts.MaxProbes, opts.TimeBudget)
	}
	if opts.MaxProbes == 1 {
		return nil, fmt.Errorf("%w: max probes must cover both endpoints", ErrInvalidOption)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Search{prober: p, opts: opts, logger: logger}, nil
}

// runState carries the bookkeeping of one Run.
type runState struct {
	res   Result
	found *btree.BTreeG[tradeoff.Solution]
	start time.Time
}

// Run searches the configured range.
//
// Steps:
//  1. Probe LambdaMin and LambdaMax; record the lower solution, and the
//     upper one when it differs.
//  2. If they differ, queue the whole range.
//  3. Pop an interval, probe its midpoint; queue each half whose endpoints
//     differ and whose width exceeds LambdaDelta; record the midpoint when
//     it differs from both endpoints.
//  4. Stop when the queue empties or a budget runs out.
//
// A context error or a Prober error ends the search; the partial Result is
// returned with the error.
func (s *Search) Run(ctx context.Context) (Result, error) {
	st := &runState{
		found: btree.NewBTreeG[tradeoff.Solution](byLambda),
		start: time.Now(),
	}
	tol := s.opts.AllowedDifference

	lo, err := s.probe(ctx, st, s.opts.LambdaMin)
	if err != nil {
		return s.finish(st), err
	}
	s.record(st, lo)
	hi, err := s.probe(ctx, st, s.opts.LambdaMax)
	if err != nil {
		return s.finish(st), err
	}

	var q queue
	if hi.Differs(lo, tol) {
		s.record(st, hi)
		q.push(interval{lo: lo, hi: hi})
	}
	metrics.QueueDepth.Set(float64(q.len()))

	for q.len() > 0 {
		if s.exhausted(ctx, st) {
			st.res.Exhausted = true
			break
		}
		iv := q.pop()
		mid, err := s.probe(ctx, st, iv.mid())
		if err != nil {
			return s.finish(st), err
		}

		distinctLo := mid.Differs(iv.lo, tol)
		distinctHi := mid.Differs(iv.hi, tol)
		if distinctLo && mid.Lambda-iv.lo.Lambda > s.opts.LambdaDelta {
			q.push(interval{lo: iv.lo, hi: mid})
		}
		if distinctHi && iv.hi.Lambda-mid.Lambda > s.opts.LambdaDelta {
			q.push(interval{lo: mid, hi: iv.hi})
		}
		if distinctLo && distinctHi {
			s.record(st, mid)
		}
		metrics.QueueDepth.Set(float64(q.len()))
		s.logger.Debug("bisected", "lambda", mid.Lambda, "queue", q.len())
	}
	metrics.QueueDepth.Set(0)

	if err := ctx.Err(); err != nil {
		return s.finish(st), err
	}

	return s.finish(st), nil
}

func (s *Search) probe(ctx context.Context, st *runState, lambda float64) (tradeoff.Solution, error) {
	t := time.Now()
	sol, err := s.prober.Solve(ctx, lambda)
	st.res.Elapsed += time.Since(t)
	if err != nil {
		return sol, fmt.Errorf("search: probe lambda=%g: %w", lambda, err)
	}
	st.res.Iterations++
	st.res.Probes = append(st.res.Probes, sol)
	if !sol.Converged {
		st.res.NonConverged++
	}
	metrics.Probes.Inc()

	return sol, nil
}

func (s *Search) record(st *runState, sol tradeoff.Solution) {
	st.found.Set(sol)
	s.logger.Info("new solution found",
		"lambda", sol.Lambda, "similarity", sol.Similarity, "density", sol.Density, "size", len(sol.Selected))
}

func (s *Search) exhausted(ctx context.Context, st *runState) bool {
	if ctx.Err() != nil {
		return true
	}
	if s.opts.MaxProbes > 0 && st.res.Iterations >= s.opts.MaxProbes {
		return true
	}

	return s.opts.TimeBudget > 0 && time.Since(st.start) >= s.opts.TimeBudget
}

// finish walks the recorded solutions in lambda order, dropping any that
// agree with the previously kept one.
func (s *Search) finish(st *runState) Result {
	tol := s.opts.AllowedDifference
	st.found.Scan(func(sol tradeoff.Solution) bool {
		n := len(st.res.Breakpoints)
		if n == 0 || sol.Differs(st.res.Breakpoints[n-1], tol) {
			st.res.Breakpoints = append(st.res.Breakpoints, sol)
		}
		return true
	})
	metrics.Breakpoints.Add(float64(len(st.res.Breakpoints)))

	return st.res
}

func byLambda(a, b tradeoff.Solution) bool { return a.Lambda < b.Lambda }
