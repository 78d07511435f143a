// SPDX-License-Identifier: MIT
// Package: densim/similarity
//
// options.go — strategy and link policy knobs with deterministic defaults.

package similarity

import (
	"fmt"
	"strings"
)

// Strategy selects how candidate pairs are enumerated.
type Strategy int

const (
	// AllPairs scans every unordered pair (reference implementation).
	AllPairs Strategy = iota
	// LayerIndex enumerates only pairs sharing a layer or an endpoint.
	LayerIndex
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case AllPairs:
		return "all-pairs"
	case LayerIndex:
		return "layer-index"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all-pairs", "allpairs":
		return AllPairs, nil
	case "layer-index", "layerindex", "indexed":
		return LayerIndex, nil
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidOption, s)
}

// LinkPolicy decides the weight of an edge-mode link between two edges.
type LinkPolicy int

const (
	// LinkBoolean records every linked pair with weight 1.
	LinkBoolean LinkPolicy = iota
	// LinkSharedEndpoints weighs an edge-mode link by the number of shared
	// endpoints. NodeMode links are always 1.
	LinkSharedEndpoints
)

// String returns the configuration name of the policy.
func (p LinkPolicy) String() string {
	switch p {
	case LinkBoolean:
		return "boolean"
	case LinkSharedEndpoints:
		return "shared-endpoints"
	default:
		return fmt.Sprintf("link-policy(%d)", int(p))
	}
}

// ParseLinkPolicy maps a configuration name to a LinkPolicy.
func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "boolean", "bool":
		return LinkBoolean, nil
	case "shared-endpoints", "multiplicity":
		return LinkSharedEndpoints, nil
	}

	return 0, fmt.Errorf("%w: unknown link policy %q", ErrInvalidOption, s)
}

// Option customizes Compute.
type Option func(*options)

type options struct {
	strategy Strategy
	policy   LinkPolicy
}

func newOptions(opts ...Option) options {
	o := options{strategy: AllPairs, policy: LinkBoolean}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStrategy selects the pair enumeration strategy (default AllPairs).
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLinkPolicy selects the edge-mode link weight policy (default LinkBoolean).
func WithLinkPolicy(p LinkPolicy) Option {
	return func(o *options) { o.policy = p }
}
