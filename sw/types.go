package sw

import (
	"context"
	"errors"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// ErrNilScoring is returned when the scoring function is nil.
var ErrNilScoring = errors.New("sw: scoring function must be non-nil")

const panicNilLogger = "sw: WithLogger: logger must be non-nil"

// Direction records which recurrence branch produced a DP cell.
type Direction uint8

const (
	// None marks a cell floored at zero; a local alignment never extends past it.
	None Direction = iota
	// Diagonal pairs a[i-1] with b[j-1].
	Diagonal
	// Up pairs a[i-1] with a gap.
	Up
	// Left pairs a gap with b[j-1].
	Left
)

// String returns the tag name.
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Diagonal:
		return "Diagonal"
	case Up:
		return "Up"
	case Left:
		return "Left"
	default:
		return "Direction(?)"
	}
}

// Options configures a Smith–Waterman run.
//
// Fields:
//   - Logger   — receives Debug records about the fill and traceback.
//   - Validate — scan both inputs for the reserved gap marker first (default true).
type Options struct {
	Logger   *slog.Logger
	Validate bool
}

// DefaultOptions returns the zero-configuration settings.
func DefaultOptions() Options {
	return Options{
		Logger:   ctxlog.Logger(context.Background()),
		Validate: true,
	}
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithLogger routes Debug records to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.Logger = l }
}

// WithoutValidation skips the gap-marker scan of the inputs.
func WithoutValidation() Option {
	return func(o *Options) { o.Validate = false }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
