package nw

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/seq"
	"gonum.org/v1/gonum/mat"
)

// Align — Needleman–Wunsch global alignment
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) DP matrix D.
//  2. Initialize the borders with cumulative gap scores:
//     D[0][0] = 0
//     D[i][0] = D[i-1][0] + score(a[i-1], gap)
//     D[0][j] = D[0][j-1] + score(gap, b[j-1])
//  3. For i = 1..n, j = 1..m:
//     diag = D[i-1][j-1] + score(a[i-1], b[j-1])
//     up   = D[i-1][j]   + score(a[i-1], gap)
//     left = D[i][j-1]   + score(gap, b[j-1])
//     D[i][j] = max(diag, up, left)
//  4. Walk back from (n,m) to (0,0), re-evaluating the branches in the order
//     up, left, diagonal and taking the first that reproduces D[i][j].
//  5. score = D[n][m].
//
// The diagonal branch scores matches and mismatches alike; telling them apart
// is entirely the scoring function's job.
//
// Edge cases:
//   - one input empty ⇒ the other one aligned against gaps only.
//   - both empty      ⇒ empty rows, score 0.
//
// Errors:
//   - ErrNilScoring     — score is nil.
//   - seq.ErrGapInInput — an input holds the gap marker (unless WithoutValidation).
//
// A panic raised by score is not recovered. A NaN score still yields a
// well-formed alignment of both inputs, with a NaN Score.
//
// Complexity: Time O(n·m), Memory O(n·m); traceback O(n+m).
func Align[T comparable](a, b []T, gap T, score scoring.Func[T], opts ...Option) (seq.Alignment[T], error) {
	o := gatherOptions(opts)
	if score == nil {
		return seq.Alignment[T]{}, ErrNilScoring
	}
	if o.Validate {
		if err := seq.Validate(gap, a, b); err != nil {
			return seq.Alignment[T]{}, fmt.Errorf("nw.Align: %w", err)
		}
	}

	n, m := len(a), len(b)
	dp := fill(a, b, gap, score)
	o.Logger.Debug("nw: matrix filled", "rows", n+1, "cols", m+1, "score", dp.At(n, m))

	res := traceback(dp, a, b, gap, score)
	o.Logger.Debug("nw: traceback done", "columns", res.Len())

	return res, nil
}

// AlignStrings aligns two texts rune by rune, using seq.DefaultGap as the
// gap marker, and returns the aligned rows as strings together with the score.
//
// Example:
//
//	a1, a2, s, err := AlignStrings("the brown cat", "these brownies", scoring.Identity[rune](1, -1))
//	// "the-- brown cat", "these brownies-", 3, nil
func AlignStrings(a, b string, score scoring.Func[rune], opts ...Option) (string, string, float64, error) {
	res, err := Align(seq.Runes(a), seq.Runes(b), seq.DefaultGap, score, opts...)
	if err != nil {
		return "", "", 0, err
	}

	return seq.String(res.A), seq.String(res.B), res.Score, nil
}

// fill builds the full DP matrix. Rows are walked through raw row views so
// the inner loop touches the backing slice directly.
func fill[T comparable](a, b []T, gap T, score scoring.Func[T]) *mat.Dense {
	n, m := len(a), len(b)
	dp := mat.NewDense(n+1, m+1, nil)

	// Border row and column: cumulative gap scores.
	top := dp.RawRowView(0)
	for j := 1; j <= m; j++ {
		top[j] = top[j-1] + score(gap, b[j-1])
	}
	for i := 1; i <= n; i++ {
		dp.Set(i, 0, dp.At(i-1, 0)+score(a[i-1], gap))
	}

	var diag, up, left float64
	for i := 1; i <= n; i++ {
		prev, cur := dp.RawRowView(i-1), dp.RawRowView(i)
		for j := 1; j <= m; j++ {
			diag = prev[j-1] + score(a[i-1], b[j-1])
			up = prev[j] + score(a[i-1], gap)
			left = cur[j-1] + score(gap, b[j-1])
			cur[j] = max(diag, up, left)
		}
	}

	return dp
}

// traceback walks from (n,m) to (0,0). Branches are re-derived with exact
// equality against a fresh scoring call, in the order up, left, diagonal.
// When no branch reproduces the cell (a NaN score), the walk takes the
// diagonal and then follows the remaining border.
func traceback[T comparable](dp *mat.Dense, a, b []T, gap T, score scoring.Func[T]) seq.Alignment[T] {
	n, m := len(a), len(b)
	res := seq.Alignment[T]{
		A:     make([]T, 0, n+m),
		B:     make([]T, 0, n+m),
		Score: dp.At(n, m),
		AEnd:  n,
		BEnd:  m,
	}

	i, j := n, m
	for i > 0 || j > 0 {
		cur := dp.At(i, j)
		switch {
		case i > 0 && cur == dp.At(i-1, j)+score(a[i-1], gap):
			res.A = append(res.A, a[i-1])
			res.B = append(res.B, gap)
			i--
		case j > 0 && cur == dp.At(i, j-1)+score(gap, b[j-1]):
			res.A = append(res.A, gap)
			res.B = append(res.B, b[j-1])
			j--
		case i > 0 && j > 0:
			res.A = append(res.A, a[i-1])
			res.B = append(res.B, b[j-1])
			i--
			j--
		case i > 0:
			res.A = append(res.A, a[i-1])
			res.B = append(res.B, gap)
			i--
		default:
			res.A = append(res.A, gap)
			res.B = append(res.B, b[j-1])
			j--
		}
	}
	res.Reverse()

	return res
}
