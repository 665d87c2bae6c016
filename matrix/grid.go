// SPDX-License-Identifier: MIT

// Package matrix - Grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer a no-copy Row view for hot loops that already know their bounds.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c) zero-init; At/Set: O(1); Row: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
// The sentinel is preserved via %w so callers can still match with errors.Is.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a dense row-major r×c table of values of any type.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value of T is the initial content of every cell, so a Grid of
// enumerated tags starts out filled with the tag whose value is 0.
type Grid[T any] struct {
	r, c int // row and column counts (>0)
	data []T // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Grid[int])(nil)

// NewGrid creates an r×c grid with every cell set to the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.c }

// Shape returns (rows, cols).
func (g *Grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// indexOf validates (row, col) and returns the flat offset.
func (g *Grid[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// At returns the value stored at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with method and coordinates).
func (g *Grid[T]) At(row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with method and coordinates).
func (g *Grid[T]) Set(row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the grid storage; writes through the
// slice mutate the grid. Intended for fill loops that walk a row left to right.
//
// Errors:
//   - ErrOutOfRange if i is not a valid row index.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * g.c

	return g.data[base : base+g.c : base+g.c], nil
}

// String renders the grid one bracketed row per line using %v.
func (g *Grid[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.c
		for j = 0; j < g.c; j++ {
			fmt.Fprintf(&b, "%v", g.data[base+j])
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
