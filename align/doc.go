// Package align is the single entry point over both alignment engines.
//
// It selects Needleman–Wunsch (Global) or Smith–Waterman (Local) by Mode and
// forwards the structured logger carried by the context, so callers that
// already thread a cloudeng.io/logging/ctxlog logger through their request
// path get the engines' Debug records tagged with the mode.
//
//	ctx = ctxlog.WithLogger(ctx, logger)
//	res, err := align.Align(ctx, align.Local, a, b, '-', scoring.Identity[rune](1, -1))
//
// The context carries only the logger: alignments are bounded, synchronous
// computations and are not cancelled.
package align
