package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lasso/internal/domain"
)

// SidebarState describes the collapsible document list panel. The panel's
// visibility and selection are owned by the caller and passed in explicitly.
type SidebarState struct {
	Visible   bool
	Focused   bool
	Width     int
	Height    int
	Docs      []domain.DocInfo
	Selection int
	ActiveDoc string // path of the currently open document
}

// SidebarRenderer renders the document list panel
type SidebarRenderer struct {
	styles *Styles
}

// NewSidebarRenderer creates a new sidebar renderer
func NewSidebarRenderer(styles *Styles) *SidebarRenderer {
	return &SidebarRenderer{styles: styles}
}

// Render builds the sidebar panel, or "" when it is collapsed
func (r *SidebarRenderer) Render(s SidebarState) string {
	if !s.Visible || s.Width <= 0 {
		return ""
	}

	inner := s.Width - 1 // border column
	var lines []string

	title := "Documents"
	if s.Focused {
		title = "Documents ◂"
	}
	lines = append(lines, r.styles.SidebarTitle.Render(truncate(title, inner)))

	if len(s.Docs) == 0 {
		lines = append(lines, r.styles.Dim.Render("(none found)"))
	}

	// Keep the selection visible in tall lists
	visible := s.Height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.Selection >= visible {
		start = s.Selection - visible + 1
	}

	for i := start; i < len(s.Docs) && i-start < visible; i++ {
		doc := s.Docs[i]
		label := doc.Name
		if doc.Path == s.ActiveDoc {
			label = "* " + label
		} else {
			label = "  " + label
		}
		label = truncate(label, inner)

		switch {
		case i == s.Selection && s.Focused:
			label = r.styles.SidebarSelected.Render(padRight(label, inner))
		case doc.Path == s.ActiveDoc:
			label = r.styles.SidebarTitle.Render(label)
		default:
			label = r.styles.SidebarItem.Render(label)
		}
		lines = append(lines, label)
	}

	for len(lines) < s.Height {
		lines = append(lines, "")
	}
	if len(lines) > s.Height {
		lines = lines[:s.Height]
	}

	for i, line := range lines {
		lines[i] = r.styles.SidebarBorder.Render(padRight(line, inner))
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
