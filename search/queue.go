// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/densim/tradeoff"

// interval is a pending bisection between two probed solutions.
type interval struct {
	lo, hi tradeoff.Solution
}

func (iv interval) width() float64 { return iv.hi.Lambda - iv.lo.Lambda }

func (iv interval) mid() float64 { return (iv.lo.Lambda + iv.hi.Lambda) / 2 }

// queue is a FIFO of intervals. Popped slots are reclaimed once the head
// passes half the backing slice.
type queue struct {
	items []interval
	head  int
}

func (q *queue) push(iv interval) { q.items = append(q.items, iv) }

func (q *queue) pop() interval {
	iv := q.items[q.head]
	q.items[q.head] = interval{}
	q.head++
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return iv
}

func (q *queue) len() int { return len(q.items) - q.head }
