// SPDX-License-Identifier: MIT

package search

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/densim/tradeoff"
)

// Defaults of the lambda range and resolution.
const (
	DefaultLambdaMax = 1e6
	// DefaultResolution is divided by E² to obtain LambdaDelta for a graph
	// with E elements.
	DefaultResolution = 0.001
)

// Options configures a Search. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	LambdaMin   float64
	LambdaMax   float64
	LambdaDelta float64 // minimum width of a bisected interval

	// MaxProbes bounds the total number of probes; 0 means unbounded.
	MaxProbes int
	// TimeBudget bounds the wall time of the search; 0 means unbounded.
	TimeBudget time.Duration

	AllowedDifference float64
	Logger            *log.Logger
}

// DefaultOptions returns the range [0, 1e6] with resolution 0.001/E².
func DefaultOptions(elements int) Options {
	return Options{
		LambdaMin:         0,
		LambdaMax:         DefaultLambdaMax,
		LambdaDelta:       DeltaFor(elements),
		AllowedDifference: tradeoff.AllowedDifference,
	}
}

// DeltaFor returns DefaultResolution/E², or DefaultResolution when E is 0.
func DeltaFor(elements int) float64 {
	if elements <= 0 {
		return DefaultResolution
	}
	e := float64(elements)

	return DefaultResolution / (e * e)
}
