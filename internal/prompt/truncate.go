// Package prompt builds bounded-length completion prompts. Lengths are
// character counts used as a token proxy; the budget math is deliberately
// approximate.
package prompt

// Direction selects which edge of the text is sacrificed when truncating.
type Direction string

const (
	// TruncateStart drops characters from the front, preserving the tail.
	TruncateStart Direction = "start"
	// TruncateEnd drops characters from the back, preserving the head.
	TruncateEnd Direction = "end"
)

// DefaultIndicator is the marker substituted for omitted characters.
const DefaultIndicator = "..."

// Truncate caps text at maxLength characters, replacing the removed edge
// with indicator. Text that already fits is returned unchanged and the
// indicator is never added. The function is total: any maxLength is
// accepted, including negative. When maxLength is shorter than the
// indicator the slice bounds are clamped and the result degenerates to the
// indicator alone; callers must not rely on anything more specific in that
// range.
func Truncate(text string, maxLength int, dir Direction, indicator string) string {
	if len(text) <= maxLength {
		return text
	}

	switch dir {
	case TruncateEnd:
		keep := maxLength - len(indicator)
		return text[:clamp(keep, len(text))] + indicator
	default: // TruncateStart
		drop := (len(text) - maxLength) + len(indicator)
		return indicator + text[clamp(drop, len(text)):]
	}
}

// clamp bounds an offset to [0, limit] so degenerate budgets cannot slice
// out of range.
func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
