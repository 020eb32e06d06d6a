// Package note is the document boundary: it reads markdown notes, parses
// the leading frontmatter block, and inserts generated text at a
// line+column position.
package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fence wraps generated text so it is visibly marked in the document.
const fenceLabel = "GPT-3"

// Document is an in-memory note, addressed by line and column.
type Document struct {
	Path  string
	lines []string
}

// Load reads a note from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read note: %w", err)
	}
	return Parse(path, string(data)), nil
}

// Parse builds a Document from raw content. Path may be empty for
// documents that never touch disk.
func Parse(path, content string) *Document {
	return &Document{
		Path:  path,
		lines: strings.Split(content, "\n"),
	}
}

func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Save writes the document back to its path.
func (d *Document) Save() error {
	if d.Path == "" {
		return fmt.Errorf("document has no path")
	}
	if err := os.WriteFile(d.Path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}

// BeforeCursor returns the document text up to the given line and column.
// Out-of-range positions are clamped to the document bounds.
func (d *Document) BeforeCursor(line, col int) string {
	if line < 0 {
		return ""
	}
	if line >= len(d.lines) {
		return d.String()
	}
	prefix := d.lines[:line]
	cur := d.lines[line]
	if col < 0 {
		col = 0
	}
	if col > len(cur) {
		col = len(cur)
	}
	parts := append(append([]string{}, prefix...), cur[:col])
	return strings.Join(parts, "\n")
}

// Frontmatter parses the leading "---"-delimited block into a string map.
// When the document has no block, a title synthesized from the file's base
// name stands in, so the prompt header always carries some context.
func (d *Document) Frontmatter() map[string]string {
	body, ok := d.frontmatterBlock()
	if !ok {
		return d.synthesized()
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal([]byte(body), &raw); err != nil || len(raw) == 0 {
		return d.synthesized()
	}

	fm := make(map[string]string, len(raw))
	for k, v := range raw {
		fm[k] = fmt.Sprint(v)
	}
	return fm
}

// frontmatterBlock returns the yaml between the opening "---" line and the
// closing one, when the document starts with a block.
func (d *Document) frontmatterBlock() (string, bool) {
	if len(d.lines) < 2 || strings.TrimRight(d.lines[0], " \t") != "---" {
		return "", false
	}
	for i := 1; i < len(d.lines); i++ {
		if strings.TrimRight(d.lines[i], " \t") == "---" {
			return strings.Join(d.lines[1:i], "\n"), true
		}
	}
	return "", false
}

func (d *Document) synthesized() map[string]string {
	if d.Path == "" {
		return map[string]string{}
	}
	base := filepath.Base(d.Path)
	return map[string]string{
		"title": strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// FencedBlock formats generated text as a fenced code block marking
// machine-written content.
func FencedBlock(text string) string {
	return "\n```" + fenceLabel + "\n" + text + "\n```\n"
}

// InsertLines splices text into the document before the given line index.
// The index is clamped to the document bounds.
func (d *Document) InsertLines(idx int, text string) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(d.lines) {
		idx = len(d.lines)
	}
	inserted := strings.Split(text, "\n")
	rest := append([]string{}, d.lines[idx:]...)
	d.lines = append(append(d.lines[:idx], inserted...), rest...)
}

// InsertGenerated places a fenced block of generated text on the line after
// the cursor.
func (d *Document) InsertGenerated(cursorLine int, text string) {
	d.InsertLines(cursorLine+1, FencedBlock(text))
}

// InsertGeneratedAtStart places a fenced block of generated text at the top
// of the document, used for tag generation.
func (d *Document) InsertGeneratedAtStart(text string) {
	d.InsertLines(0, FencedBlock(text))
}
