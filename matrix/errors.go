// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors return these sentinels (possibly wrapped with method and
// coordinates) and tests check them via errors.Is. No public method panics
// on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
