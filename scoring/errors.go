package scoring

import "errors"

var (
	// ErrLengthMismatch indicates two aligned rows of different length.
	ErrLengthMismatch = errors.New("scoring: aligned sequences differ in length")

	// ErrAlphabetSize indicates a substitution matrix whose order does not match the alphabet.
	ErrAlphabetSize = errors.New("scoring: substitution matrix must be square with order len(alphabet)")

	// ErrDuplicateSymbol indicates a symbol listed twice in a substitution alphabet.
	ErrDuplicateSymbol = errors.New("scoring: duplicate symbol in alphabet")

	// ErrGapInAlphabet indicates the gap marker appears in a substitution alphabet.
	ErrGapInAlphabet = errors.New("scoring: gap marker must not be part of the alphabet")

	// ErrNonFinite indicates a NaN or ±Inf score where a finite value is required.
	ErrNonFinite = errors.New("scoring: score must be finite")
)
