// Package seq holds the sequence-side vocabulary shared by the aligners:
// the Alignment result type, reserved gap-marker validation and the small
// helpers used to check an alignment against its inputs.
//
// A sequence is any []T of comparable symbols. Text is aligned as []rune so
// multi-byte characters stay whole; token lists are aligned as []string or
// any other comparable slice.
//
// The gap marker is a caller-chosen value of T (DefaultGap for runes). It is
// reserved: input sequences must not contain it, and Validate reports every
// sequence that does.
package seq
