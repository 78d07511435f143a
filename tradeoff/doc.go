// SPDX-License-Identifier: MIT

// Package tradeoff solves the fixed-lambda problem: find the subset that
// maximizes the similarity-per-edge ratio under a node penalty lambda, by a
// Dinkelbach-style fractional-programming iteration driven by a min-cut
// oracle.
//
// Each iteration k computes a cut, the gap Q = −cut + ½·total, the cut-set
// sizes (fe elements, fn other vertices) and the cut-set itself, which is
// written into a two-slot ring. The loop stops when Q < precision, when the
// cut set holds no element, or on the last allowed iteration; it then
// returns the snapshot committed on the previous iteration. Otherwise the
// threshold moves to c + Q/fe, the estimates
//
//	similarity = c + (Q + lambda·fn)/fe
//	density    = fe/fn
//
// are committed, and the oracle's source capacities are raised in place.
//
// Solve runs the parametric loop (c starts at −lambda·N). SolveBaseline runs
// the same loop on a baseline network with c starting at 0 and the combined
// total Totals[0] + mu·Totals[1]; its objective values are left to the
// caller (see package baseline).
//
// A loop that stops on the iteration budget returns Converged == false; the
// condition is logged at Warn level and counted in
// densim_nonconverged_total.
package tradeoff
