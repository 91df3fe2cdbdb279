package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusState contains everything the status bar renders
type StatusState struct {
	Width         int
	DocName       string
	DocKind       string
	ScrollPercent float64
	Counter       string // "i/N" search counter, "" when idle or no matches
	ErrorMessage  string
	Scanning      bool
}

// StatusRenderer renders the one-line status bar
type StatusRenderer struct {
	styles *Styles
}

// NewStatusRenderer creates a new status bar renderer
func NewStatusRenderer(styles *Styles) *StatusRenderer {
	return &StatusRenderer{styles: styles}
}

// Render builds the status line
func (r *StatusRenderer) Render(s StatusState) string {
	if s.ErrorMessage != "" {
		return r.styles.StatusError.Render(truncate(s.ErrorMessage, s.Width))
	}

	left := r.styles.Title.Render(s.DocName)
	if s.DocKind != "" {
		left += r.styles.Dim.Render(" (" + s.DocKind + ")")
	}
	if s.Scanning {
		left += r.styles.Scroll.Render(" scanning…")
	}

	var parts []string
	if s.Counter != "" {
		parts = append(parts, r.styles.Counter.Render(s.Counter))
	}
	parts = append(parts, r.styles.Status.Render(fmt.Sprintf("%3.0f%%", s.ScrollPercent*100)))
	right := strings.Join(parts, r.styles.Dim.Render(" │ "))

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
