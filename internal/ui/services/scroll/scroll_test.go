package scroll

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
)

func TestCenterPlacesAnchorInMiddle(t *testing.T) {
	// 100 content lines, 20 visible: anchor line 50 centers at 50-10+0
	assert.Equal(t, 40, Center(50, 1, 20, 100))

	// A taller anchor shifts the target down by half its height
	assert.Equal(t, 42, Center(50, 5, 20, 100))
}

func TestCenterClampsToTop(t *testing.T) {
	assert.Equal(t, 0, Center(3, 1, 20, 100))
	assert.Equal(t, 0, Center(0, 1, 20, 100))
}

func TestCenterClampsToBottom(t *testing.T) {
	assert.Equal(t, 80, Center(99, 1, 20, 100))
	assert.Equal(t, 80, Center(95, 1, 20, 100))
}

func TestCenterShortContent(t *testing.T) {
	// Content shorter than the viewport never scrolls
	assert.Equal(t, 0, Center(5, 1, 20, 10))
}

func TestScrollerCentersViewport(t *testing.T) {
	vp := viewport.New(80, 20)
	vp.SetContent(strings.TrimRight(strings.Repeat("line\n", 100), "\n"))

	s := NewScroller(&vp)
	s.CenterOn(50, 1)

	assert.Equal(t, 40, vp.YOffset)
}

func TestScrollerNilViewportIsNoop(t *testing.T) {
	var s *Scroller
	assert.NotPanics(t, func() { s.CenterOn(10, 1) })

	s = NewScroller(nil)
	assert.NotPanics(t, func() { s.CenterOn(10, 1) })
}

func TestScrollerZeroHeightIsNoop(t *testing.T) {
	vp := viewport.New(80, 0)
	s := NewScroller(&vp)

	assert.NotPanics(t, func() { s.CenterOn(10, 1) })
	assert.Equal(t, 0, vp.YOffset)
}
