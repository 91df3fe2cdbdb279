package views

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"lasso/internal/search"
)

func TestHighlightLineKeepsTextIntact(t *testing.T) {
	styles := NewStyles()
	plain := "the cat sat on the mat"
	matches := []search.Match{
		{Index: 0, Col: 5, Width: 2},
		{Index: 1, Col: 9, Width: 2},
		{Index: 2, Col: 20, Width: 2},
	}

	out := HighlightLine(plain, matches, 1, styles)

	// Styling never adds, drops, or reorders characters
	assert.Equal(t, plain, ansi.Strip(out))
}

func TestHighlightLineNoMatches(t *testing.T) {
	styles := NewStyles()
	assert.Equal(t, "plain line", HighlightLine("plain line", nil, -1, styles))
}

func TestHighlightLineClampsOutOfRange(t *testing.T) {
	styles := NewStyles()
	plain := "short"
	matches := []search.Match{{Index: 0, Col: 3, Width: 10}}

	out := HighlightLine(plain, matches, 0, styles)
	assert.Equal(t, plain, ansi.Strip(out))
}

func TestHighlightLineUnicode(t *testing.T) {
	styles := NewStyles()
	plain := "héllo wörld"
	matches := []search.Match{{Index: 0, Col: 6, Width: 5}}

	out := HighlightLine(plain, matches, -1, styles)
	assert.Equal(t, plain, ansi.Strip(out))
}
