// SPDX-License-Identifier: MIT

// Package metrics holds the process-wide Prometheus collectors of densim and
// an optional HTTP endpoint exposing them.
//
// Collectors are registered on the default registry through promauto, so
// packages record values with a plain method call and no wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CutsTotal counts minimum-cut computations, labeled by solve kind
	// ("parametric" or "baseline").
	CutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "densim_cuts_total",
			Help: "Total number of minimum-cut computations",
		},
		[]string{"kind"},
	)

	// SolveIterations observes the iteration count of each fixed-lambda loop.
	SolveIterations = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "densim_solve_iterations",
			Help:    "Iterations of the fixed-lambda convergence loop",
			Buckets: []float64{1, 2, 3, 4, 5, 8, 12, 20, 50, 100, 1000},
		},
		[]string{"kind"},
	)

	// SolveDuration observes the wall time of each fixed-lambda loop.
	SolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "densim_solve_duration_seconds",
			Help:    "Duration of one fixed-lambda solve in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"kind"},
	)

	// NonConverged counts fixed-lambda loops stopped by the iteration budget.
	NonConverged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "densim_nonconverged_total",
			Help: "Fixed-lambda loops that hit max iterations before the gap fell below precision",
		},
		[]string{"kind"},
	)

	// Probes counts lambda probes of the breakpoint search.
	Probes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "densim_search_probes_total",
			Help: "Lambda values evaluated by the breakpoint search",
		},
	)

	// QueueDepth tracks the pending intervals of the breakpoint search.
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "densim_search_queue_depth",
			Help: "Intervals waiting to be bisected",
		},
	)

	// Breakpoints counts distinct solutions discovered.
	Breakpoints = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "densim_search_breakpoints_total",
			Help: "Distinct solutions discovered by the breakpoint search",
		},
	)
)
