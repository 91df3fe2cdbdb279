package views

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"lasso/internal/domain"
)

func TestStatusBarShowsCounterAndPercent(t *testing.T) {
	r := NewStatusRenderer(NewStyles())

	out := ansi.Strip(r.Render(StatusState{
		Width:         80,
		DocName:       "notes.md",
		DocKind:       "markdown",
		ScrollPercent: 0.5,
		Counter:       "2/7",
	}))

	assert.Contains(t, out, "notes.md")
	assert.Contains(t, out, "markdown")
	assert.Contains(t, out, "2/7")
	assert.Contains(t, out, "50%")
}

func TestStatusBarOmitsCounterWhenIdle(t *testing.T) {
	r := NewStatusRenderer(NewStyles())

	out := ansi.Strip(r.Render(StatusState{
		Width:   80,
		DocName: "notes.md",
	}))

	assert.NotContains(t, out, "/")
}

func TestStatusBarErrorWins(t *testing.T) {
	r := NewStatusRenderer(NewStyles())

	out := ansi.Strip(r.Render(StatusState{
		Width:        80,
		DocName:      "notes.md",
		Counter:      "1/3",
		ErrorMessage: "failed to load notes.md",
	}))

	assert.Contains(t, out, "failed to load")
	assert.NotContains(t, out, "1/3")
}

func TestStatusBarTruncatesMultibyteError(t *testing.T) {
	r := NewStatusRenderer(NewStyles())

	out := ansi.Strip(r.Render(StatusState{
		Width:        10,
		ErrorMessage: strings.Repeat("é", 40),
	}))

	assert.True(t, utf8.ValidString(out), "truncation must not cut mid-rune")
	assert.LessOrEqual(t, lipgloss.Width(out), 10)
}

func TestSidebarCollapsed(t *testing.T) {
	r := NewSidebarRenderer(NewStyles())

	assert.Equal(t, "", r.Render(SidebarState{Visible: false, Width: 20, Height: 5}))
}

func TestSidebarMarksActiveDocument(t *testing.T) {
	r := NewSidebarRenderer(NewStyles())

	out := ansi.Strip(r.Render(SidebarState{
		Visible: true,
		Width:   24,
		Height:  6,
		Docs: []domain.DocInfo{
			{Path: "/d/a.md", Name: "a.md"},
			{Path: "/d/b.md", Name: "b.md"},
		},
		ActiveDoc: "/d/b.md",
	}))

	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "* b.md")
}
