package content

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasso/internal/domain"
	"lasso/internal/search"
)

func TestDocumentPlainStripsStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Render("hello")
	doc := NewDocument("x.txt", domain.DocPlain, 80, []string{styled, "world"})

	assert.Equal(t, "hello", doc.Plain(0))
	assert.Equal(t, "world", doc.Plain(1))
	assert.Equal(t, styled, doc.Line(0))
}

func TestDocumentWalkSkipsBlankLines(t *testing.T) {
	doc := NewDocument("x.txt", domain.DocPlain, 80, []string{"first", "", "   ", "second"})

	var leaves []search.TextLeaf
	doc.WalkTextLeaves(func(leaf search.TextLeaf) bool {
		leaves = append(leaves, leaf)
		return true
	})

	require.Len(t, leaves, 2)
	assert.Equal(t, search.TextLeaf{Text: "first", Line: 0}, leaves[0])
	assert.Equal(t, search.TextLeaf{Text: "second", Line: 3}, leaves[1])
}

func TestDocumentWalkStopsEarly(t *testing.T) {
	doc := NewDocument("x.txt", domain.DocPlain, 80, []string{"a", "b", "c"})

	count := 0
	doc.WalkTextLeaves(func(search.TextLeaf) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestDocumentNilSafe(t *testing.T) {
	var doc *Document

	assert.Equal(t, 0, doc.LineCount())
	assert.Equal(t, "", doc.Line(0))
	assert.Equal(t, "", doc.Content())
	assert.NotPanics(t, func() {
		doc.WalkTextLeaves(func(search.TextLeaf) bool { return true })
	})

	// A nil document is a valid, empty leaf walker
	assert.Empty(t, search.Index(doc, "query"))
}

func TestDocumentOutOfRange(t *testing.T) {
	doc := NewDocument("x.txt", domain.DocPlain, 80, []string{"only"})

	assert.Equal(t, "", doc.Line(-1))
	assert.Equal(t, "", doc.Line(1))
	assert.Equal(t, "", doc.Plain(5))
}
