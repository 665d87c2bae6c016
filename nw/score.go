package nw

import (
	"fmt"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/seq"
)

// Score returns the optimal global alignment score of a and b without
// building the alignment itself.
//
// It runs the same recurrence as Align but keeps only two rows of the DP
// matrix (previous and current), so memory is O(len(b)) instead of O(n·m).
// Cell values are computed with the same operations in the same order, so
// the result is bit-identical to Align(...).Score.
//
// Errors: as for Align.
//
// Complexity: Time O(n·m), Memory O(m).
func Score[T comparable](a, b []T, gap T, score scoring.Func[T], opts ...Option) (float64, error) {
	o := gatherOptions(opts)
	if score == nil {
		return 0, ErrNilScoring
	}
	if o.Validate {
		if err := seq.Validate(gap, a, b); err != nil {
			return 0, fmt.Errorf("nw.Score: %w", err)
		}
	}

	n, m := len(a), len(b)
	prev := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + score(gap, b[j-1])
	}

	var diag, up, left float64
	for i := 1; i <= n; i++ {
		cur[0] = prev[0] + score(a[i-1], gap)
		for j := 1; j <= m; j++ {
			diag = prev[j-1] + score(a[i-1], b[j-1])
			up = prev[j] + score(a[i-1], gap)
			left = cur[j-1] + score(gap, b[j-1])
			cur[j] = max(diag, up, left)
		}
		prev, cur = cur, prev
	}
	o.Logger.Debug("nw: score computed", "rows", n+1, "cols", m+1, "score", prev[m])

	return prev[m], nil
}
