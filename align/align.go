package align

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/seq"
	"github.com/katalvlaran/seqalign/sw"
)

// Align aligns a and b with the engine selected by mode.
//
// The logger stored in ctx (see ctxlog.WithLogger) is handed to the engine
// with a "mode" attribute; without one, nothing is logged. Engine errors are
// returned unchanged, so errors.Is matches nw/sw/seq sentinels directly.
//
// Errors:
//   - ErrUnknownMode for a mode other than Global or Local.
//   - any error of nw.Align or sw.Align.
func Align[T comparable](ctx context.Context, mode Mode, a, b []T, gap T, score scoring.Func[T]) (seq.Alignment[T], error) {
	logger := ctxlog.Logger(ctx).With("mode", mode.String())

	var (
		res seq.Alignment[T]
		err error
	)
	switch mode {
	case Global:
		res, err = nw.Align(a, b, gap, score, nw.WithLogger(logger))
	case Local:
		res, err = sw.Align(a, b, gap, score, sw.WithLogger(logger))
	default:
		return seq.Alignment[T]{}, fmt.Errorf("align.Align(%d): %w", int(mode), ErrUnknownMode)
	}
	if err != nil {
		logger.Debug("align: rejected input", "err", err)

		return seq.Alignment[T]{}, err
	}

	return res, nil
}

// Strings aligns two texts rune by rune with seq.DefaultGap and returns the
// aligned rows as strings with the score.
func Strings(ctx context.Context, mode Mode, a, b string, score scoring.Func[rune]) (string, string, float64, error) {
	res, err := Align(ctx, mode, seq.Runes(a), seq.Runes(b), seq.DefaultGap, score)
	if err != nil {
		return "", "", 0, err
	}

	return seq.String(res.A), seq.String(res.B), res.Score, nil
}
