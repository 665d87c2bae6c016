package scoring

// Func scores an ordered pair of symbols. At most one argument is the gap
// marker chosen by the caller of the alignment.
type Func[T comparable] func(x, y T) float64

// Identity returns a scorer yielding match when x == y and mismatch otherwise.
// Gap comparisons fall into the mismatch case, so this is the classic
// "+1 / -1" edit scorer when called as Identity[rune](1, -1).
func Identity[T comparable](match, mismatch float64) Func[T] {
	return func(x, y T) float64 {
		if x == y {
			return match
		}

		return mismatch
	}
}

// Linear returns a scorer with separate match, mismatch and gap values.
// Any pair that involves gap scores gapPenalty, regardless of the other symbol.
func Linear[T comparable](match, mismatch, gapPenalty float64, gap T) Func[T] {
	return func(x, y T) float64 {
		switch {
		case x == gap || y == gap:
			return gapPenalty
		case x == y:
			return match
		default:
			return mismatch
		}
	}
}

// Swap returns f with its arguments exchanged: Swap(f)(x, y) == f(y, x).
// Aligning (B, A) under Swap(f) yields the same optimal score as (A, B) under f.
func Swap[T comparable](f Func[T]) Func[T] {
	return func(x, y T) float64 {
		return f(y, x)
	}
}
