// Package nw computes global sequence alignments with the Needleman–Wunsch
// dynamic-programming algorithm.
//
// 🚀 What is a global alignment?
//
//	Every symbol of both inputs takes part, from first to last. Symbols are
//	paired column by column; where one sequence has no counterpart the other
//	is padded with the gap marker. The alignment maximizes the sum of the
//	caller's pairwise scores over all columns.
//
// ✨ Key features:
//   - any comparable symbol type: runes, tokens, residue codes
//   - caller-supplied scoring function (see package scoring)
//   - full (n+1)×(m+1) DP matrix with deterministic traceback
//   - score-only mode on two rolling rows (Score)
//   - reserved gap-marker validation (disable with WithoutValidation)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/nw"
//
//	a1, a2, score, err := nw.AlignStrings("the brown cat", "these brownies",
//		scoring.Identity[rune](1, -1))
//	// a1 = "the-- brown cat", a2 = "these brownies-", score = 3
//
// Tie-breaking:
//
//	When several predecessors reproduce a cell's value the traceback prefers
//	up (gap in the second sequence), then left (gap in the first sequence),
//	then diagonal. The score is the same for every optimal alignment; the
//	order only fixes which of them is returned.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (Align) or O(M) (Score)
package nw
