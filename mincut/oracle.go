// SPDX-License-Identifier: MIT

package mincut

import (
	"context"

	"github.com/katalvlaran/densim/metagraph"
)

// Oracle is a minimum-cut engine operating on one network at a time.
//
// Vertices of the network are 1-based; element vertices are
// 1..elementCount. Implementations need not be safe for concurrent use;
// Session serializes access.
type Oracle interface {
	// Init loads the network description.
	Init(net *metagraph.Network) error
	// Recreate parameterizes the loaded network: source arcs into element
	// vertices get capacity c, other source arcs lambda, two-component arcs
	// caps[0] + lambda·caps[1].
	Recreate(elementCount int, lambda, c float64) error
	// ComputeCut runs the min-cut computation to completion.
	ComputeCut(ctx context.Context) error
	// CutValue returns the value of the last minimum cut.
	CutValue() float64
	// CutSetSize counts cut-set vertices: element vertices and the others
	// (terminals excluded).
	CutSetSize(elementCount int) (elements, others int)
	// CutSet writes, for every element id i (1-based), whether it is in the
	// cut set into dst[i-1]. len(dst) must equal elementCount.
	CutSet(elementCount int, dst []bool) error
	// UpdateSourceCapacities sets every source→element arc to c.
	UpdateSourceCapacities(c float64, elementCount int) error
	// Release frees all oracle resources.
	Release() error
}
