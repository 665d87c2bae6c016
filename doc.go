// Package seqalign is a toolkit for optimal pairwise alignment of symbol
// sequences: characters, word tokens, residues, anything comparable.
//
// 🚀 What is in the box?
//
//	Two classic dynamic-programming engines driven by a scoring function the
//	caller supplies:
//		• Needleman–Wunsch global alignment (end to end)
//		• Smith–Waterman local alignment (best substring pair)
//
// Under the hood, everything is organized into small subpackages:
//
//	align/   — one entry point, Mode-based dispatch, ctx-carried logging
//	nw/      — global alignment, full matrix or score-only on two rows
//	sw/      — local alignment with stored traceback tags
//	scoring/ — the scoring contract, stock scorers, re-scoring
//	seq/     — Alignment result, gap-marker validation, sequence helpers
//	matrix/  — generic row-major Grid used for per-cell bookkeeping
//
// Quick example:
//
//	a1, a2, score, _ := nw.AlignStrings("the brown cat", "these brownies",
//		scoring.Identity[rune](1, -1))
//	// the-- brown cat
//	// these brownies-
//	// 3
//
// Not included: affine gap costs, multiple sequence alignment and banded
// alignment for long sequences. The scoring-function abstraction is the
// place to layer such extensions on.
package seqalign
