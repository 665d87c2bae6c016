package align

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates a Mode value or name that is neither Global nor Local.
var ErrUnknownMode = errors.New("align: unknown alignment mode")

// Mode selects the alignment engine.
type Mode int

const (
	// Global aligns both sequences end to end (Needleman–Wunsch).
	Global Mode = iota
	// Local aligns the best-scoring pair of substrings (Smith–Waterman).
	Local
)

// String returns "global", "local" or "Mode(n)".
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive name to a Mode. Accepted names are
// "global"/"nw"/"needleman-wunsch" and "local"/"sw"/"smith-waterman".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "nw", "needleman-wunsch":
		return Global, nil
	case "local", "sw", "smith-waterman":
		return Local, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}
