// SPDX-License-Identifier: MIT

package similarity

import "errors"

// ErrInvalidOption indicates an unknown strategy or link policy.
var ErrInvalidOption = errors.New("similarity: invalid option")

// ErrEmptyLayerSet indicates an element without layers; the Jaccard union
// would be empty.
var ErrEmptyLayerSet = errors.New("similarity: element has an empty layer set")

// ErrSnapshot indicates a snapshot that cannot be decoded or restored.
var ErrSnapshot = errors.New("similarity: invalid snapshot")
