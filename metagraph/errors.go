// SPDX-License-Identifier: MIT

package metagraph

import "errors"

var (
	// ErrModeMismatch indicates a construction invoked on an index or graph
	// of the wrong element mode.
	ErrModeMismatch = errors.New("metagraph: element mode mismatch")

	// ErrMalformedNetwork indicates an unreadable or inconsistent network description.
	ErrMalformedNetwork = errors.New("metagraph: malformed network description")
)
