package assist

import (
	"context"
	"strings"
)

// Framing selects between the word-level and text-level phrasing of a
// rewrite directive. Single-word selections read better with a "word"
// framing ("Provide a synonym for the following word") than with the
// full-text one.
type Framing int

const (
	FramingWord Framing = iota
	FramingText
)

// FramingFor routes a selection to its framing by word count.
func FramingFor(text string) Framing {
	if len(strings.Fields(strings.TrimSpace(text))) == 1 {
		return FramingWord
	}
	return FramingText
}

// Rewrite is one entry in the flat directive enumeration: an identifier,
// a display name, and the directive phrasing per framing. Directives with no
// word-level variant reuse the text phrasing.
type Rewrite struct {
	ID   string
	Name string
	Word string
	Text string
}

// Directive returns the phrasing for the given framing.
func (r Rewrite) Directive(f Framing) string {
	if f == FramingWord && r.Word != "" {
		return r.Word
	}
	return r.Text
}

// Rewrites enumerates the selection-rewriting commands. Continuation, tag
// generation and free generation have their own entry points below.
var Rewrites = []Rewrite{
	{
		ID:   "reword",
		Name: "Reword selection",
		Word: "Provide a synonym for the following word",
		Text: "Reword the following text",
	},
	{
		ID:   "simplify",
		Name: "Simplify selection",
		Word: "Provide a simpler word for the following word",
		Text: "Simplify the following text",
	},
	{
		ID:   "complicate",
		Name: "Complicate selection",
		Word: "Provide a more sophisticated word for the following word",
		Text: "Rewrite the following text using more sophisticated language",
	},
	{
		ID:   "poetry",
		Name: "Rewrite as poetry",
		Text: "Rewrite the following text as a poem",
	},
	{
		ID:   "lyrics",
		Name: "Rewrite as lyrics",
		Text: "Rewrite the following text as song lyrics",
	},
}

// RewriteByID looks up a rewrite directive by identifier.
func RewriteByID(id string) (Rewrite, bool) {
	for _, r := range Rewrites {
		if r.ID == id {
			return r, true
		}
	}
	return Rewrite{}, false
}

// RewriteText applies a rewrite directive to the selected text, choosing the
// word or text framing by word count.
func (a *Assistant) RewriteText(ctx context.Context, r Rewrite, text string) (string, error) {
	return a.CompleteText(ctx, PromptRequest{
		Directive: r.Directive(FramingFor(text)),
		Content:   text,
	})
}

// ContinueText continues a note from its text before the cursor. The note's
// frontmatter rides along in the header and the "Continued:" footer survives
// truncation, so long documents lose their beginning, not their end.
func (a *Assistant) ContinueText(ctx context.Context, content string, frontmatter map[string]string) (string, error) {
	return a.CompleteText(ctx, PromptRequest{
		Directive:   "Continue the following text",
		Content:     content,
		Frontmatter: frontmatter,
		Footer:      "Continued:",
	})
}

// SuggestTags asks for tags describing the note text.
func (a *Assistant) SuggestTags(ctx context.Context, content string, frontmatter map[string]string) (string, error) {
	return a.CompleteText(ctx, PromptRequest{
		Directive:   "Suggest tags for the following text",
		Content:     content,
		Frontmatter: frontmatter,
		Footer:      "Tags:",
	})
}

// Generate runs a free-form directive with no content.
func (a *Assistant) Generate(ctx context.Context, directive string) (string, error) {
	return a.CompleteText(ctx, PromptRequest{Directive: directive})
}
