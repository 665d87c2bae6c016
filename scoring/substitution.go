package scoring

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Substitution builds a table-driven scorer over a fixed alphabet.
//
// Entry m[i][j] scores alphabet[i] against alphabet[j]; any pair involving gap
// scores gapPenalty. The matrix is copied, so later changes to m do not leak
// into the scorer. Asymmetric tables are allowed.
//
// Errors:
//   - ErrAlphabetSize    — m is not len(alphabet)×len(alphabet) or alphabet is empty.
//   - ErrDuplicateSymbol — a symbol appears twice in alphabet.
//   - ErrGapInAlphabet   — gap is listed in alphabet.
//   - ErrNonFinite       — m holds NaN/±Inf, or gapPenalty is not finite.
//
// The returned scorer panics when queried with a symbol outside the alphabet;
// a partial scorer is a caller-contract violation and surfaces at the call site.
func Substitution[T comparable](alphabet []T, m mat.Matrix, gapPenalty float64, gap T) (Func[T], error) {
	n := len(alphabet)
	r, c := m.Dims()
	if n == 0 || r != n || c != n {
		return nil, fmt.Errorf("Substitution(%d symbols, %dx%d): %w", n, r, c, ErrAlphabetSize)
	}
	if math.IsNaN(gapPenalty) || math.IsInf(gapPenalty, 0) {
		return nil, fmt.Errorf("Substitution gap penalty %v: %w", gapPenalty, ErrNonFinite)
	}

	index := make(map[T]int, n)
	for i, s := range alphabet {
		if s == gap {
			return nil, fmt.Errorf("Substitution symbol %d: %w", i, ErrGapInAlphabet)
		}
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("Substitution symbol %d (%v): %w", i, s, ErrDuplicateSymbol)
		}
		index[s] = i
	}

	table := mat.DenseCopyOf(m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := table.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("Substitution entry (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
	}

	lookup := func(s T) int {
		i, ok := index[s]
		if !ok {
			panic(fmt.Sprintf("scoring: symbol %v is not in the substitution alphabet", s))
		}

		return i
	}

	return func(x, y T) float64 {
		if x == gap || y == gap {
			return gapPenalty
		}

		return table.At(lookup(x), lookup(y))
	}, nil
}
