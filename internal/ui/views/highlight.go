package views

import (
	"strings"

	"lasso/internal/search"
)

// HighlightLine renders one line with its matches styled. Col and Width on
// each match are rune offsets into the plain (ANSI-stripped) line, so the
// plain text is restyled from scratch; a line containing matches drops any
// source styling, which keeps the offsets exact.
func HighlightLine(plain string, matches []search.Match, activeIndex int, styles *Styles) string {
	if len(matches) == 0 {
		return plain
	}

	runes := []rune(plain)
	var b strings.Builder
	pos := 0

	for _, m := range matches {
		start, end := m.Col, m.Col+m.Width
		if start < pos {
			start = pos
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}

		b.WriteString(string(runes[pos:start]))

		style := styles.Match
		if m.Index == activeIndex {
			style = styles.ActiveMatch
		}
		b.WriteString(style.Render(string(runes[start:end])))
		pos = end
	}

	b.WriteString(string(runes[pos:]))
	return b.String()
}
