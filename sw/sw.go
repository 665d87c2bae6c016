package sw

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/seq"
	"gonum.org/v1/gonum/mat"
)

// Align returns the best local alignment of a and b.
//
// Fill, for i = 1..n and j = 1..m (row 0 and column 0 stay 0/None):
//
//	match  = H[i-1][j-1] + score(a[i-1], b[j-1])
//	delete = H[i-1][j]   + score(a[i-1], gap)
//	insert = H[i][j-1]   + score(gap, b[j-1])
//	H[i][j] = max(0, match, delete, insert)
//
// The cell is tagged None, Diagonal, Up or Left for the first of 0, match,
// delete, insert equal to H[i][j]. The best cell is the first strict maximum
// in row-major order; traceback follows tags from it and stops at the first
// None cell, which is not part of the alignment.
//
// When no cell scores above zero the result is empty with score 0 and
// zero-length spans at the origin.
//
// Errors:
//   - ErrNilScoring     — score is nil.
//   - seq.ErrGapInInput — an input holds the gap marker (unless WithoutValidation).
//
// A panic raised by score is not recovered.
//
// Complexity: Time O(n·m), Memory O(n·m); traceback O(n+m).
func Align[T comparable](a, b []T, gap T, score scoring.Func[T], opts ...Option) (seq.Alignment[T], error) {
	o := gatherOptions(opts)
	if score == nil {
		return seq.Alignment[T]{}, ErrNilScoring
	}
	if o.Validate {
		if err := seq.Validate(gap, a, b); err != nil {
			return seq.Alignment[T]{}, fmt.Errorf("sw.Align: %w", err)
		}
	}

	n, m := len(a), len(b)
	dp := mat.NewDense(n+1, m+1, nil)
	tags, err := matrix.NewGrid[Direction](n+1, m+1)
	if err != nil {
		return seq.Alignment[T]{}, fmt.Errorf("sw.Align: %w", err)
	}

	bi, bj, best, err := fill(dp, tags, a, b, gap, score)
	if err != nil {
		return seq.Alignment[T]{}, fmt.Errorf("sw.Align: %w", err)
	}
	o.Logger.Debug("sw: matrix filled", "rows", n+1, "cols", m+1, "score", best, "i", bi, "j", bj)

	res, err := traceback(tags, a, b, gap, bi, bj)
	if err != nil {
		return seq.Alignment[T]{}, fmt.Errorf("sw.Align: %w", err)
	}
	res.Score = best
	o.Logger.Debug("sw: traceback done", "columns", res.Len(),
		"a_start", res.AStart, "a_end", res.AEnd, "b_start", res.BStart, "b_end", res.BEnd)

	return res, nil
}

// AlignStrings aligns two texts rune by rune with seq.DefaultGap as the gap
// marker and returns the aligned substrings and the score.
//
// Example:
//
//	a1, a2, s, err := AlignStrings("the brown cat", "these brownies", scoring.Identity[rune](1, -1))
//	// "e brown", "e brown", 7, nil
func AlignStrings(a, b string, score scoring.Func[rune], opts ...Option) (string, string, float64, error) {
	res, err := Align(seq.Runes(a), seq.Runes(b), seq.DefaultGap, score, opts...)
	if err != nil {
		return "", "", 0, err
	}

	return seq.String(res.A), seq.String(res.B), res.Score, nil
}

// fill populates dp and tags and returns the coordinates and value of the
// first maximal cell in row-major order.
func fill[T comparable](dp *mat.Dense, tags *matrix.Grid[Direction], a, b []T, gap T, score scoring.Func[T]) (int, int, float64, error) {
	n, m := len(a), len(b)
	var (
		bi, bj             int
		best               float64
		match, del, ins, v float64
	)
	for i := 1; i <= n; i++ {
		prev, cur := dp.RawRowView(i-1), dp.RawRowView(i)
		trow, err := tags.Row(i)
		if err != nil {
			return 0, 0, 0, err
		}
		for j := 1; j <= m; j++ {
			match = prev[j-1] + score(a[i-1], b[j-1])
			del = prev[j] + score(a[i-1], gap)
			ins = cur[j-1] + score(gap, b[j-1])
			v = max(0, match, del, ins)
			cur[j] = v

			switch v {
			case 0:
				trow[j] = None
			case match:
				trow[j] = Diagonal
			case del:
				trow[j] = Up
			case ins:
				trow[j] = Left
			}

			if v > best {
				best, bi, bj = v, i, j
			}
		}
	}

	return bi, bj, best, nil
}

// traceback follows tags from (bi, bj) until a None cell and returns the
// aligned rows in forward order with their spans.
func traceback[T comparable](tags *matrix.Grid[Direction], a, b []T, gap T, bi, bj int) (seq.Alignment[T], error) {
	res := seq.Alignment[T]{
		A:    make([]T, 0, bi+bj),
		B:    make([]T, 0, bi+bj),
		AEnd: bi,
		BEnd: bj,
	}

	i, j := bi, bj
	for {
		d, err := tags.At(i, j)
		if err != nil {
			return seq.Alignment[T]{}, err
		}
		if d == None {
			break
		}
		switch d {
		case Diagonal:
			res.A = append(res.A, a[i-1])
			res.B = append(res.B, b[j-1])
			i--
			j--
		case Up:
			res.A = append(res.A, a[i-1])
			res.B = append(res.B, gap)
			i--
		case Left:
			res.A = append(res.A, gap)
			res.B = append(res.B, b[j-1])
			j--
		}
	}
	res.AStart, res.BStart = i, j
	res.Reverse()

	return res, nil
}
