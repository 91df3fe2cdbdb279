// Package search locates occurrences of a query within a laid-out document.
package search

import (
	"strings"
	"unicode/utf8"
)

// TextLeaf is one text-bearing leaf of a content tree, already laid out:
// Line is the rendered line the leaf occupies.
type TextLeaf struct {
	Text string
	Line int
}

// TextLeafWalker visits the ordered sequence of text-bearing leaves of a
// content tree. The visit function returns false to stop the walk early.
type TextLeafWalker interface {
	WalkTextLeaves(visit func(TextLeaf) bool)
}

// Match is one located occurrence of the query.
// Col and Width are rune offsets within the leaf's text.
type Match struct {
	Index int // position in the ordered match list
	Line  int // rendered line of the occurrence
	Col   int
	Width int
}

// Index scans the walker's text leaves in document order and returns every
// non-overlapping, case-insensitive occurrence of query. The query is matched
// literally; regex metacharacters have no special meaning. An empty or
// whitespace-only query, or a nil walker, yields no matches.
func Index(w TextLeafWalker, query string) []Match {
	if w == nil || strings.TrimSpace(query) == "" {
		return nil
	}

	needle := strings.ToLower(query)
	width := utf8.RuneCountInString(needle)

	var matches []Match
	w.WalkTextLeaves(func(leaf TextLeaf) bool {
		haystack := strings.ToLower(leaf.Text)
		offset := 0
		for {
			pos := strings.Index(haystack[offset:], needle)
			if pos == -1 {
				break
			}
			absolute := offset + pos
			matches = append(matches, Match{
				Index: len(matches),
				Line:  leaf.Line,
				Col:   utf8.RuneCountInString(haystack[:absolute]),
				Width: width,
			})
			// Advance past the occurrence: matches never overlap
			offset = absolute + len(needle)
		}
		return true
	})
	return matches
}

// LineMatches groups matches by rendered line, preserving order within each
// line. Used by the renderer to highlight a line in one pass.
func LineMatches(matches []Match) map[int][]Match {
	if len(matches) == 0 {
		return nil
	}
	byLine := make(map[int][]Match)
	for _, m := range matches {
		byLine[m.Line] = append(byLine[m.Line], m)
	}
	return byLine
}
