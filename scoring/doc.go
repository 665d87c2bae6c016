// Package scoring defines the pairwise scoring contract shared by the
// alignment engines, plus a handful of ready-made scorers.
//
// A scoring function maps an ordered pair of symbols to a real-valued score:
//
//	f(x, y) float64
//
// Substitutions (match or mismatch) are scored with two real symbols; an
// insertion or deletion is scored with the gap marker in exactly one of the
// two positions. The engines never call f with two gap markers.
//
// Contract:
//   - Total: defined for every pair the aligner will query.
//   - Pure and deterministic: the global traceback re-evaluates f and compares
//     results with ==, so f must return bit-identical values for equal inputs.
//
// The engines do not validate the contract; a panicking scorer propagates
// straight out of the alignment call.
//
// Stock scorers:
//   - Identity     — match if x == y, mismatch otherwise (gaps count as mismatch).
//   - Linear       — match/mismatch for residues, a fixed penalty for any gap.
//   - Substitution — table lookup over an alphabet and a gonum matrix.
//   - Swap         — argument-swapped view of another scorer.
//
// Rescore sums a scorer over the columns of an existing alignment and is the
// reference check that an engine's reported score is consistent with its output.
package scoring
