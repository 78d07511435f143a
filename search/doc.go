// SPDX-License-Identifier: MIT

// Package search enumerates the distinct optimal solutions of the
// density/similarity trade-off over a lambda range.
//
// The search probes both endpoints of [LambdaMin, LambdaMax], then bisects
// intervals breadth-first from a FIFO queue. An interval is pushed only when
// its two endpoint solutions differ by more than the allowed difference in
// similarity or density and it is wider than LambdaDelta; a midpoint is
// reported as a new solution when it differs from both of its endpoints.
//
// Every probe is kept in Result.Probes. Result.Breakpoints holds the
// reported solutions ordered by lambda, with neighbors that agree within
// the allowed difference collapsed, so adjacent breakpoints are always
// distinct.
//
// Budgets: MaxProbes (counting the two endpoint probes), TimeBudget and the
// context. Exhausting a budget is not an error; Result.Exhausted is set
// when intervals were left unexplored.
package search
