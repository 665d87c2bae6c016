package seq

import "slices"

// Runes converts text into a rune sequence.
func Runes(s string) []rune { return []rune(s) }

// String joins a rune sequence back into text.
func String(s []rune) string { return string(s) }

// Ungap returns a copy of s with every gap marker removed.
func Ungap[T comparable](s []T, gap T) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if v != gap {
			out = append(out, v)
		}
	}

	return out
}

// Contains reports whether needle occurs as a contiguous run inside haystack.
// The empty needle is contained in every sequence.
func Contains[T comparable](haystack, needle []T) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return true
		}
	}

	return false
}
