package seq

// DefaultGap is the gap marker used for text (rune) alignments.
const DefaultGap = '-'

// Alignment is the result of aligning two sequences.
//
// A and B are the aligned rows: equal length, original symbols interleaved
// with the gap marker, and never a gap in both rows of the same column.
//
// The half-open spans [AStart, AEnd) and [BStart, BEnd) locate the aligned
// region inside the inputs: removing gaps from A yields input_a[AStart:AEnd],
// likewise for B. A global alignment always spans both inputs fully; a local
// alignment spans the contiguous substrings it matched (empty spans when no
// positive-scoring region exists).
type Alignment[T comparable] struct {
	A, B  []T
	Score float64

	AStart, AEnd int
	BStart, BEnd int
}

// Len returns the number of alignment columns.
func (a Alignment[T]) Len() int { return len(a.A) }

// Column returns the pair of symbols at column k.
func (a Alignment[T]) Column(k int) (T, T) { return a.A[k], a.B[k] }

// Reverse reverses both rows in place. Engines build rows during traceback,
// which walks from the end of the alignment towards its start.
func (a *Alignment[T]) Reverse() {
	for l, r := 0, len(a.A)-1; l < r; l, r = l+1, r-1 {
		a.A[l], a.A[r] = a.A[r], a.A[l]
		a.B[l], a.B[r] = a.B[r], a.B[l]
	}
}
