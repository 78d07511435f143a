// SPDX-License-Identifier: MIT

package tradeoff

import (
	"math"

	"github.com/katalvlaran/densim/multilayer"
)

// AllowedDifference is the default tolerance under which two solutions are
// considered the same.
const AllowedDifference = 1e-5

// Solution is the outcome of one fixed-lambda solve.
type Solution struct {
	Lambda     float64                `json:"lambda"`
	Similarity float64                `json:"similarity"`
	Density    float64                `json:"density"`
	Selected   []multilayer.ElementID `json:"selected"`
	// Others is the number of non-element vertices in the selected cut
	// (base nodes for the parametric network).
	Others int `json:"others"`

	Threshold  float64   `json:"threshold"`
	Iterations int       `json:"iterations"`
	Converged  bool      `json:"converged"`
	Empty      bool      `json:"empty"`
	Gaps       []float64 `json:"gaps,omitempty"`
}

// Differs reports whether s and o differ by more than tol in similarity or density.
func (s Solution) Differs(o Solution, tol float64) bool {
	return math.Abs(s.Similarity-o.Similarity) > tol || math.Abs(s.Density-o.Density) > tol
}
