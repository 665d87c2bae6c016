// Package sw computes local sequence alignments with the Smith–Waterman
// dynamic-programming algorithm.
//
// A local alignment is the highest-scoring pair of contiguous substrings of
// the two inputs; flanks that would only lower the score are left out.
//
// The DP matrix is floored at zero, so an alignment never has to carry a
// negative prefix. Alongside each score the fill records which branch
// produced it (a Direction tag); the traceback then follows tags from the
// best cell back to the first None tag without calling the scorer again.
//
// Tie-breaking:
//
//	Within a cell: zero (None) wins over match (Diagonal), then delete (Up),
//	then insert (Left). Across cells: the first maximum met in row-major fill
//	order is the traceback start.
//
// Complexity: O(N·M) time and memory.
package sw
