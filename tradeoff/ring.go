// SPDX-License-Identifier: MIT

package tradeoff

// snapshot is one iteration's cut-set and the estimates derived from it.
type snapshot struct {
	set        []bool
	elements   int
	others     int
	similarity float64
	density    float64
}

// ring is a two-slot snapshot buffer. The write slot is never the last
// committed one, so the previous result stays valid while the next cut is read.
type ring struct {
	slots [2]snapshot
	write int
	last  int // index of the last committed slot, -1 when none
}

func newRing(n int) *ring {
	r := &ring{last: -1}
	for i := range r.slots {
		r.slots[i].set = make([]bool, n)
	}

	return r
}

// slot returns the slot to fill in the current iteration.
func (r *ring) slot() *snapshot { return &r.slots[r.write] }

// commit marks the write slot as the latest valid result and flips.
func (r *ring) commit() {
	r.last = r.write
	r.write ^= 1
}

// committed returns the last committed snapshot, if any.
func (r *ring) committed() (*snapshot, bool) {
	if r.last < 0 {
		return nil, false
	}

	return &r.slots[r.last], true
}
