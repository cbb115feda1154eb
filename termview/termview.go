// Package termview renders a committed view tree into a terminal grid,
// one device-independent pixel per cell. It serves both as a terminal
// surface binding and as a quick way to visualize what the layout pass
// produced.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-view"
)

// Surface records the frames committed for one view, for hosts that
// composite the terminal themselves.
type Surface struct {
	frame     view.Rect
	committed bool
}

// Compile-time check that Surface implements view.NativeSurface.
var _ view.NativeSurface = (*Surface)(nil)

// SetFrame records the committed frame.
func (s *Surface) SetFrame(frame view.Rect) {
	s.frame = frame
	s.committed = true
}

// Frame returns the last committed frame and whether one was committed.
func (s *Surface) Frame() (view.Rect, bool) {
	return s.frame, s.committed
}

// Canvas is a rune grid that boxes are drawn into. Border runes come from
// a lipgloss.Border set, so canvases match the look of the surrounding
// lipgloss UI.
type Canvas struct {
	width, height int
	cells         [][]rune
	border        lipgloss.Border
}

// NewCanvas creates a blank canvas of the given dimensions using the
// normal single-line border set.
func NewCanvas(width, height int) *Canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  cells,
		border: lipgloss.NormalBorder(),
	}
}

// SetBorder replaces the border rune set (e.g. lipgloss.RoundedBorder()).
func (c *Canvas) SetBorder(b lipgloss.Border) {
	c.border = b
}

// DrawBox outlines the rectangle on the canvas. Rectangles thinner than
// two cells on either axis have no drawable outline and are skipped.
func (c *Canvas) DrawBox(r view.Rect) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	top := borderRune(c.border.Top)
	bottom := borderRune(c.border.Bottom)
	left := borderRune(c.border.Left)
	right := borderRune(c.border.Right)

	for x := r.X + 1; x < r.Right()-1; x++ {
		c.set(x, r.Y, top)
		c.set(x, r.Bottom()-1, bottom)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.set(r.X, y, left)
		c.set(r.Right()-1, y, right)
	}
	c.set(r.X, r.Y, borderRune(c.border.TopLeft))
	c.set(r.Right()-1, r.Y, borderRune(c.border.TopRight))
	c.set(r.X, r.Bottom()-1, borderRune(c.border.BottomLeft))
	c.set(r.Right()-1, r.Bottom()-1, borderRune(c.border.BottomRight))
}

// String returns the canvas contents, rows joined by newlines.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y, row := range c.cells {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

// Styled returns the canvas contents rendered through a lipgloss style.
func (c *Canvas) Styled(style lipgloss.Style) string {
	return style.Render(c.String())
}

func (c *Canvas) set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

func borderRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Render draws every visible view of a committed tree onto a fresh canvas
// of the given dimensions, in window coordinates, parents before children.
// Hidden views keep their layout space but their subtree is not drawn;
// collapsed subtrees have no space at all.
func Render(root *view.View, width, height int) string {
	c := NewCanvas(width, height)
	drawTree(c, root)
	return c.String()
}

func drawTree(c *Canvas, v *view.View) {
	if v == nil || v.Visibility() != view.Visible {
		return
	}
	origin := v.LocationInWindow()
	size := v.ActualSize()
	c.DrawBox(view.NewRect(origin.X, origin.Y, size.Width, size.Height))
	for _, child := range v.Children() {
		drawTree(c, child)
	}
}
