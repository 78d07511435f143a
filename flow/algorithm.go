// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Algorithm is the common signature of Dinic and EdmondsKarp.
type Algorithm func(ctx context.Context, nw *Network, source, sink int, opts FlowOptions) (Result, error)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// ParseAlgorithm maps "dinic" and "edmonds-karp" to their implementation.
// The empty string selects Dinic.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dinic":
		return Dinic, nil
	case "edmonds-karp", "edmondskarp", "ek":
		return EdmondsKarp, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
