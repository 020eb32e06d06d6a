package prompt

import (
	"strings"
	"testing"
)

func TestTruncateNoOp(t *testing.T) {
	cases := []struct {
		text string
		max  int
	}{
		{"hello", 5},
		{"hello", 10},
		{"", 0},
	}
	for _, tc := range cases {
		for _, dir := range []Direction{TruncateStart, TruncateEnd} {
			got := Truncate(tc.text, tc.max, dir, DefaultIndicator)
			if got != tc.text {
				t.Errorf("Truncate(%q, %d, %s) = %q, want unchanged", tc.text, tc.max, dir, got)
			}
		}
	}
}

func TestTruncateEnd(t *testing.T) {
	got := Truncate("abcdefghij", 8, TruncateEnd, "...")
	if got != "abcde..." {
		t.Fatalf("got %q, want %q", got, "abcde...")
	}
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
}

func TestTruncateStart(t *testing.T) {
	got := Truncate("abcdefghij", 8, TruncateStart, "...")
	if got != "...fghij" {
		t.Fatalf("got %q, want %q", got, "...fghij")
	}
	if !strings.HasSuffix("abcdefghij", got[len("..."):]) {
		t.Error("start truncation must preserve the suffix of the input")
	}
}

func TestTruncateLengthBound(t *testing.T) {
	text := strings.Repeat("x", 500)
	for _, dir := range []Direction{TruncateStart, TruncateEnd} {
		for _, max := range []int{3, 4, 10, 100, 499} {
			got := Truncate(text, max, dir, "...")
			if len(got) > max {
				t.Errorf("dir=%s max=%d: len=%d exceeds budget", dir, max, len(got))
			}
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	text := strings.Repeat("abc ", 100)
	for _, dir := range []Direction{TruncateStart, TruncateEnd} {
		once := Truncate(text, 40, dir, "...")
		twice := Truncate(once, 40, dir, "...")
		if once != twice {
			t.Errorf("dir=%s: not idempotent: %q vs %q", dir, once, twice)
		}
	}
}

func TestTruncateCustomIndicator(t *testing.T) {
	got := Truncate("abcdefghij", 7, TruncateEnd, "[cut]")
	if got != "ab[cut]" {
		t.Fatalf("got %q, want %q", got, "ab[cut]")
	}
}

// Budgets shorter than the indicator are documented boundary behavior: the
// clamped slice leaves only the indicator. Nothing may rely on more than
// "does not panic, returns a string".
func TestTruncateDegenerateBudget(t *testing.T) {
	for _, max := range []int{2, 1, 0, -1, -100} {
		for _, dir := range []Direction{TruncateStart, TruncateEnd} {
			got := Truncate("some text that is long enough", max, dir, "...")
			if got != "..." {
				t.Errorf("dir=%s max=%d: got %q, want bare indicator", dir, max, got)
			}
		}
	}
}
