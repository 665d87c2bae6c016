package seq

import (
	"fmt"
	"slices"

	"cloudeng.io/errors"
)

// Validate reports every input sequence that contains the reserved gap marker.
//
// Each offending sequence contributes one error wrapping ErrGapInInput with
// the sequence index and the first offending position; all of them are
// returned together, so errors.Is(err, ErrGapInInput) holds whenever any
// sequence is bad. A nil result means every sequence is clean.
//
// Complexity: O(total length) time, O(1) extra space.
func Validate[T comparable](gap T, seqs ...[]T) error {
	errs := &errors.M{}
	for i, s := range seqs {
		if pos := slices.Index(s, gap); pos >= 0 {
			errs.Append(fmt.Errorf("sequence %d, position %d: %w", i, pos, ErrGapInInput))
		}
	}

	return errs.Err()
}

// CheckColumns verifies the structural invariants of a pair of aligned rows:
// equal length and no column holding the gap marker in both rows.
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
//   - ErrDoubleGap for the first column with two gaps.
func CheckColumns[T comparable](a, b []T, gap T) error {
	if len(a) != len(b) {
		return fmt.Errorf("CheckColumns(%d,%d): %w", len(a), len(b), ErrLengthMismatch)
	}
	for k := range a {
		if a[k] == gap && b[k] == gap {
			return fmt.Errorf("CheckColumns column %d: %w", k, ErrDoubleGap)
		}
	}

	return nil
}
