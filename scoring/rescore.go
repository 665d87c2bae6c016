package scoring

import "fmt"

// Rescore sums f over every column of an alignment, left to right.
//
// Both rows must have the same length; gap markers are passed to f exactly as
// they appear in the rows. For an alignment produced by this module's engines
// the result equals the engine's reported score.
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
//
// Complexity: O(len(a)) time, O(1) space.
func Rescore[T comparable](a, b []T, f Func[T]) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Rescore(%d,%d): %w", len(a), len(b), ErrLengthMismatch)
	}
	total := 0.0
	for k := range a {
		total += f(a[k], b[k])
	}

	return total, nil
}
