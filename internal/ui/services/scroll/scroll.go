// Package scroll centers anchors inside a scrollable viewport.
package scroll

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// Center returns the offset that puts an anchor of anchorHeight lines
// starting at anchorTop in the middle of a window of visibleHeight lines.
// The result is clamped to the scrollable range of contentHeight lines.
func Center(anchorTop, anchorHeight, visibleHeight, contentHeight int) int {
	target := anchorTop - visibleHeight/2 + anchorHeight/2

	maxOffset := contentHeight - visibleHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if target > maxOffset {
		target = maxOffset
	}
	if target < 0 {
		target = 0
	}
	return target
}

// Scroller issues scroll commands against a borrowed viewport. It never owns
// the viewport; a nil or zero-size viewport makes every call a no-op.
type Scroller struct {
	vp *viewport.Model
}

// NewScroller creates a scroller bound to the given viewport
func NewScroller(vp *viewport.Model) *Scroller {
	return &Scroller{vp: vp}
}

// CenterOn scrolls so the anchor is vertically centered in the viewport
func (s *Scroller) CenterOn(anchorTop, anchorHeight int) {
	if s == nil || s.vp == nil || s.vp.Height <= 0 {
		return
	}
	s.vp.SetYOffset(Center(anchorTop, anchorHeight, s.vp.Height, s.vp.TotalLineCount()))
}
