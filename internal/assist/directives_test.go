package assist

import (
	"context"
	"strings"
	"testing"

	"github.com/ghostwriter-ai/ghostwriter/internal/completion"
)

func TestFramingFor(t *testing.T) {
	cases := []struct {
		text string
		want Framing
	}{
		{"word", FramingWord},
		{"  word  ", FramingWord},
		{"two words", FramingText},
		{"a longer sentence here", FramingText},
		{"", FramingText},
	}
	for _, tc := range cases {
		if got := FramingFor(tc.text); got != tc.want {
			t.Errorf("FramingFor(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestRewriteDirectiveFraming(t *testing.T) {
	r, ok := RewriteByID("reword")
	if !ok {
		t.Fatal("reword directive missing")
	}
	if d := r.Directive(FramingWord); !strings.Contains(d, "word") {
		t.Errorf("word framing = %q", d)
	}
	if d := r.Directive(FramingText); !strings.Contains(d, "text") {
		t.Errorf("text framing = %q", d)
	}

	// Directives without a word variant fall back to the text phrasing.
	p, ok := RewriteByID("poetry")
	if !ok {
		t.Fatal("poetry directive missing")
	}
	if p.Directive(FramingWord) != p.Text {
		t.Error("missing word variant should reuse text phrasing")
	}
}

func TestRewriteTextRoutesByWordCount(t *testing.T) {
	svc := &mockService{choices: []completion.Choice{{Text: "ok"}}}
	a := New(svc, testConfig())
	r, _ := RewriteByID("reword")

	if _, err := a.RewriteText(context.Background(), r, "happy"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(svc.lastReq.Prompt, r.Word+":\n") {
		t.Fatalf("single word prompt = %q, want word framing", svc.lastReq.Prompt)
	}

	if _, err := a.RewriteText(context.Background(), r, "several words here"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(svc.lastReq.Prompt, r.Text+":\n") {
		t.Fatalf("multi word prompt = %q, want text framing", svc.lastReq.Prompt)
	}
}

func TestRewriteByIDUnknown(t *testing.T) {
	if _, ok := RewriteByID("no-such-directive"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestContinueTextFooter(t *testing.T) {
	svc := &mockService{choices: []completion.Choice{{Text: "ok"}}}
	a := New(svc, testConfig())

	if _, err := a.ContinueText(context.Background(), "once upon a time", map[string]string{"title": "Tale"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(svc.lastReq.Prompt, "\nContinued:") {
		t.Fatalf("prompt = %q, want Continued: footer", svc.lastReq.Prompt)
	}
	if !strings.Contains(svc.lastReq.Prompt, "title: Tale") {
		t.Fatal("frontmatter missing from prompt header")
	}
}

func TestSuggestTagsFooter(t *testing.T) {
	svc := &mockService{choices: []completion.Choice{{Text: "ok"}}}
	a := New(svc, testConfig())

	if _, err := a.SuggestTags(context.Background(), "note body", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(svc.lastReq.Prompt, "\nTags:") {
		t.Fatalf("prompt = %q, want Tags: footer", svc.lastReq.Prompt)
	}
}

func TestGenerateNoContent(t *testing.T) {
	svc := &mockService{choices: []completion.Choice{{Text: "ok"}}}
	a := New(svc, testConfig())

	if _, err := a.Generate(context.Background(), "Write a haiku about autumn"); err != nil {
		t.Fatal(err)
	}
	if svc.lastReq.Prompt != "Write a haiku about autumn:\n" {
		t.Fatalf("prompt = %q", svc.lastReq.Prompt)
	}
}
