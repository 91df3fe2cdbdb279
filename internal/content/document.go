// Package content loads files into laid-out documents that can be rendered
// in a viewport and scanned for search matches.
package content

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"lasso/internal/domain"
	"lasso/internal/search"
)

// Document is a loaded file laid out as rendered lines. Rendered lines may
// carry ANSI styling; the plain lines are the stripped equivalents that all
// match positions refer to.
type Document struct {
	Path  string
	Kind  domain.DocKind
	Width int // wrap width the lines were laid out at

	lines []string
	plain []string
}

// NewDocument builds a document from already laid-out lines
func NewDocument(path string, kind domain.DocKind, width int, lines []string) *Document {
	plain := make([]string, len(lines))
	for i, line := range lines {
		plain[i] = ansi.Strip(line)
	}
	return &Document{
		Path:  path,
		Kind:  kind,
		Width: width,
		lines: lines,
		plain: plain,
	}
}

// LineCount returns the number of rendered lines
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// Line returns the rendered line at i ("" when out of range)
func (d *Document) Line(i int) string {
	if d == nil || i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Plain returns the ANSI-stripped line at i ("" when out of range)
func (d *Document) Plain(i int) string {
	if d == nil || i < 0 || i >= len(d.plain) {
		return ""
	}
	return d.plain[i]
}

// Content returns the rendered document as a single string for the viewport
func (d *Document) Content() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.lines, "\n")
}

// WalkTextLeaves visits each text-bearing line in document order.
// Implements search.TextLeafWalker.
func (d *Document) WalkTextLeaves(visit func(search.TextLeaf) bool) {
	if d == nil {
		return
	}
	for i, text := range d.plain {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !visit(search.TextLeaf{Text: text, Line: i}) {
			return
		}
	}
}
