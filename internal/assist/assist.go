// Package assist orchestrates completion requests: it wraps note text in a
// directive-labeled prompt bounded by the character budget, issues one
// request to the completion service, and normalizes the returned text.
package assist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ghostwriter-ai/ghostwriter/internal/completion"
	"github.com/ghostwriter-ai/ghostwriter/internal/config"
	"github.com/ghostwriter-ai/ghostwriter/internal/history"
	"github.com/ghostwriter-ai/ghostwriter/internal/prompt"
)

// ErrNotConfigured is returned before any network attempt when no service
// credential is configured. Distinct from transport failures, which
// propagate unmodified.
var ErrNotConfigured = errors.New("no API key configured; run: ghostwriter config set-key")

// PromptRequest describes one completion invocation. Ephemeral, constructed
// per call, never persisted.
type PromptRequest struct {
	// Directive steers the completion, e.g. "Reword the following text".
	Directive string

	// Content is the selected or document text the directive applies to.
	Content string

	// Frontmatter is an optional key/value block serialized into the
	// prompt header. nil omits it entirely; an empty map emits only a
	// blank line.
	Frontmatter map[string]string

	// Footer is appended after the content, prefixed by a newline when
	// non-empty. It survives truncation of long content.
	Footer string
}

// Assistant issues completion requests on behalf of command handlers.
// The settings snapshot is read-only; concurrent invocations share no
// mutable state.
type Assistant struct {
	svc  completion.Service
	cfg  *config.Config
	hist history.Store
}

func New(svc completion.Service, cfg *config.Config) *Assistant {
	return &Assistant{svc: svc, cfg: cfg, hist: history.NullStore{}}
}

// SetHistory attaches a generation log. Recording is best-effort; a failed
// write never fails the completion.
func (a *Assistant) SetHistory(store history.Store) {
	if store != nil {
		a.hist = store
	}
}

// CompleteText builds the bounded prompt for req, sends it, and returns the
// cleaned first choice. The header (directive + frontmatter) is never
// truncated; only content and footer compete for the remaining budget, with
// the front of the content sacrificed first.
func (a *Assistant) CompleteText(ctx context.Context, req PromptRequest) (string, error) {
	if a.svc == nil || !a.cfg.Configured() {
		return "", ErrNotConfigured
	}

	header := req.Directive + ":\n" + serializeFrontmatter(req.Frontmatter)
	text := prompt.Build(req.Content, header, req.Footer, prompt.MaxPromptTokens)

	choices, err := a.svc.Complete(ctx, completion.Request{
		Prompt:      text,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		TopP:        a.cfg.TopP,
	})
	if err != nil {
		return "", err
	}
	if len(choices) == 0 {
		return "", fmt.Errorf("completion service returned no choices")
	}

	cleaned := cleanCompletion(choices[0].Text)
	_, _ = a.hist.Add(req.Directive, text, cleaned)
	return cleaned, nil
}

// serializeFrontmatter renders fm as a "---"-delimited key/value block.
// nil emits nothing; an empty map emits a single newline; a populated map
// emits the block followed by a blank line. Keys are sorted so the prompt
// is deterministic.
func serializeFrontmatter(fm map[string]string) string {
	if fm == nil {
		return ""
	}
	if len(fm) == 0 {
		return "\n"
	}

	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("---\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fm[k])
		b.WriteString("\n")
	}
	b.WriteString("---\n")
	b.WriteString("\n")
	return b.String()
}

// cleanCompletion trims surrounding whitespace, then trims each line and
// rejoins. The service sometimes returns indented continuation text; this
// keeps insertions flush with the document.
func cleanCompletion(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
