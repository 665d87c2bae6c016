// SPDX-License-Identifier: MIT

// Package matrix provides Grid, a generic dense row-major table with
// bounds-checked accessors.
//
// The alignment engines use it to keep per-cell bookkeeping next to their
// numeric DP matrices, for example the traceback direction tags of the
// Smith–Waterman fill.
//
// Layout:
//
//	offset(i, j) = i*cols + j
//
// Errors:
//   - ErrInvalidDimensions — NewGrid with rows<=0 or cols<=0.
//   - ErrOutOfRange        — At/Set/Row outside the grid, wrapped as
//     "Grid.<method>(row,col): ..." so errors.Is keeps working.
package matrix
