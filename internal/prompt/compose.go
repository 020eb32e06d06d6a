package prompt

// Budget constants. The completion endpoint's context is MaxTokens; a slice
// of it is reserved for the response, the rest bounds the request text.
// Character counts stand in for tokens throughout.
const (
	MaxTokens           = 2048
	MaxCompletionTokens = 150
	MaxPromptTokens     = MaxTokens - MaxCompletionTokens
)

// Label prefixes text with label, truncating only the text so the combined
// string fits maxLength. The label itself is never shortened: when the label
// alone exceeds maxLength the remaining budget goes negative and the text
// degenerates per Truncate's boundary behavior, but the result still begins
// with the full label.
func Label(text, label string, maxLength int, dir Direction, indicator string) string {
	maxTextLength := maxLength - len(label)
	return label + Truncate(text, maxTextLength, dir, indicator)
}

// Build composes the final prompt: header + body + optional footer, bounded
// at maxLength characters. The footer is joined to the body with a newline
// and truncation removes characters from the front of body+footer, so the
// footer and the tail of the body survive long documents. The header is
// never truncated; if it alone exceeds maxLength the result exceeds the
// budget (known limitation).
func Build(body, header, footer string, maxLength int) string {
	combined := body
	if footer != "" {
		combined += "\n" + footer
	}
	return Label(combined, header, maxLength, TruncateStart, DefaultIndicator)
}
