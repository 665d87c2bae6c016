package seq

import "errors"

var (
	// ErrGapInInput indicates that an input sequence contains the reserved gap marker.
	ErrGapInInput = errors.New("seq: input sequence contains the gap marker")

	// ErrLengthMismatch indicates that two aligned rows differ in length.
	ErrLengthMismatch = errors.New("seq: aligned rows differ in length")

	// ErrDoubleGap indicates an alignment column with a gap marker in both rows.
	ErrDoubleGap = errors.New("seq: column has a gap in both rows")
)
