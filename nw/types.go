package nw

import (
	"context"
	"errors"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// ErrNilScoring is returned when the scoring function is nil.
var ErrNilScoring = errors.New("nw: scoring function must be non-nil")

const panicNilLogger = "nw: WithLogger: logger must be non-nil"

// Options configures a Needleman–Wunsch run.
//
// Fields:
//   - Logger   — receives Debug records about the fill and traceback.
//     Defaults to the discard logger of an empty context.
//   - Validate — scan both inputs for the reserved gap marker before aligning.
//     Defaults to true.
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

// WithoutValidation skips the gap-marker scan of the inputs. Use it when the
// caller already guarantees clean input; aligning a sequence that does hold
// the gap marker then yields an unspecified (but memory-safe) result.
func WithoutValidation() Option {
	return func(o *Options) { o.Validate = false }
}

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
