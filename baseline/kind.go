// SPDX-License-Identifier: MIT

package baseline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/densim/multilayer"
)

var (
	// ErrEmptyPairSet indicates a selection with no edges to score.
	ErrEmptyPairSet = errors.New("baseline: empty pair set")

	// ErrUnknownKind indicates an unrecognized baseline name.
	ErrUnknownKind = errors.New("baseline: unknown kind")

	// ErrInvalidOption indicates a bad grid or evaluator input.
	ErrInvalidOption = errors.New("baseline: invalid option")
)

// Kind names a baseline.
type Kind int

const (
	// Similarity selects edges; primary component is edge similarity.
	Similarity Kind = iota
	// Density selects nodes; primary component is the node link relation.
	Density
)

// String returns the canonical name of k.
func (k Kind) String() string {
	switch k {
	case Similarity:
		return "similarity"
	case Density:
		return "density"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mode returns the element mode the baseline network is built on.
func (k Kind) Mode() multilayer.Mode {
	if k == Density {
		return multilayer.NodeMode
	}

	return multilayer.EdgeMode
}

// ParseKind accepts "similarity"/"blsim" and "density"/"blden".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "similarity", "blsim", "sim":
		return Similarity, nil
	case "density", "blden", "den":
		return Density, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
