package termview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-view"
)

func TestSurface_RecordsFrame(t *testing.T) {
	s := &Surface{}

	_, committed := s.Frame()
	assert.False(t, committed)

	s.SetFrame(view.NewRect(1, 2, 3, 4))
	frame, committed := s.Frame()
	require.True(t, committed)
	assert.Equal(t, view.NewRect(1, 2, 3, 4), frame)
}

func TestCanvas_DrawBox(t *testing.T) {
	c := NewCanvas(6, 4)
	c.DrawBox(view.NewRect(0, 0, 6, 4))

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	assert.Equal(t, want, c.String())
}

func TestCanvas_DegenerateBoxesSkipped(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawBox(view.NewRect(0, 0, 1, 4))
	c.DrawBox(view.NewRect(0, 0, 4, 0))

	assert.Equal(t, strings.Repeat("    \n", 3)+"    ", c.String())
}

func TestRender_NestedTree(t *testing.T) {
	child := view.New(view.WithMargin(view.EdgeAll(2)))
	rootView := view.New()
	rootView.AddChild(child)

	root := view.NewRoot(rootView)
	root.SetSize(10, 6)
	root.LayoutPass()

	got := Render(rootView, 10, 6)
	want := strings.Join([]string{
		"┌────────┐",
		"│        │",
		"│ ┌────┐ │",
		"│ └────┘ │",
		"│        │",
		"└────────┘",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_HiddenKeepsSpaceCollapsedDisappears(t *testing.T) {
	hidden := view.New(view.WithVisibility(view.Hidden))
	rootView := view.New()
	rootView.AddChild(hidden)

	root := view.NewRoot(rootView)
	root.SetSize(6, 4)
	root.LayoutPass()

	// The hidden child stretches over the root but draws nothing.
	require.Equal(t, view.NewRect(0, 0, 6, 4), hidden.LayoutRect())
	got := Render(rootView, 6, 4)
	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	assert.Equal(t, want, got)

	hidden.SetVisibility(view.Collapsed)
	root.LayoutPass()
	assert.Equal(t, want, Render(rootView, 6, 4))
}
