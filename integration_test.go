package view

import "testing"

func TestFullCycle_TwoLevelTree(t *testing.T) {
	// Root 200x200 with one match-parent child carrying a 20dp margin on
	// all sides: the child's final rect is (20,20,180,180).
	child := New(WithMargin(EdgeAll(20)))
	rootView := New()
	rootView.AddChild(child)

	r := NewRoot(rootView)
	r.SetSize(200, 200)
	r.LayoutPass()

	if got := rootView.LayoutRect(); got != NewRect(0, 0, 200, 200) {
		t.Errorf("root rect = %+v, want (0,0,200,200)", got)
	}
	got := child.LayoutRect()
	if got.X != 20 || got.Y != 20 || got.Right() != 180 || got.Bottom() != 180 {
		t.Errorf("child rect = (%d,%d,%d,%d), want (20,20,180,180)",
			got.X, got.Y, got.Right(), got.Bottom())
	}
	if !child.IsLayoutValid() || !rootView.IsLayoutValid() {
		t.Error("tree not valid after full cycle")
	}
	if child.ActualSize() != (Size{Width: 160, Height: 160}) {
		t.Errorf("child actual size = %+v, want 160x160", child.ActualSize())
	}
}

func TestFullCycle_ThreeLevelMixedTree(t *testing.T) {
	// A fixed-size panel start-aligned inside a padded container inside
	// the root, exercising spec derivation, margins, padding, and
	// alignment together.
	leaf := New(
		WithSize(60, 40),
		WithAlignment(AlignEnd, AlignCenter),
	)
	panel := New(
		WithPadding(EdgeAll(10)),
		WithMargin(EdgeAll(5)),
	)
	panel.AddChild(leaf)
	rootView := New()
	rootView.AddChild(panel)

	r := NewRoot(rootView)
	r.SetSize(300, 200)
	r.LayoutPass()

	// Panel stretches into the root minus its margins.
	if got := panel.LayoutRect(); got != NewRect(5, 5, 290, 190) {
		t.Errorf("panel rect = %+v, want (5,5) 290x190", got)
	}

	// Leaf slot is the panel content box: (10,10) 270x170.
	// End-aligned horizontally: x = 10 + 270 - 60 = 220.
	// Centered vertically: y = 10 + (170-40)/2 = 75.
	if got := leaf.LayoutRect(); got != NewRect(220, 75, 60, 40) {
		t.Errorf("leaf rect = %+v, want (220,75) 60x40", got)
	}

	// Window coordinates compose the parent-relative rects.
	if got := leaf.LocationInWindow(); got != (Point{X: 225, Y: 80}) {
		t.Errorf("leaf window location = %+v, want (225,80)", got)
	}
}

func TestFullCycle_ResizeRelayouts(t *testing.T) {
	child := New(WithMargin(EdgeAll(10)))
	rootView := New()
	rootView.AddChild(child)

	r := NewRoot(rootView)
	r.SetSize(100, 100)
	r.LayoutPass()
	if got := child.LayoutRect(); got != NewRect(10, 10, 80, 80) {
		t.Fatalf("child rect = %+v, want (10,10) 80x80", got)
	}

	r.SetSize(60, 60)
	if !r.LayoutPending() {
		t.Fatal("resize did not schedule a pass")
	}
	r.LayoutPass()
	if got := child.LayoutRect(); got != NewRect(10, 10, 40, 40) {
		t.Errorf("child rect after resize = %+v, want (10,10) 40x40", got)
	}
}

func TestStaleQuery_ReturnsLastCommittedValues(t *testing.T) {
	child := New(WithMargin(EdgeAll(20)))
	rootView := New()
	rootView.AddChild(child)

	r := NewRoot(rootView)
	r.SetSize(200, 200)
	r.LayoutPass()

	child.RequestLayout()
	if child.IsLayoutValid() {
		t.Fatal("child still valid after RequestLayout")
	}

	// Queries on an invalid node return the last committed values, not
	// zero and not an error.
	if child.MeasuredWidth() != 160 {
		t.Errorf("stale measured width = %d, want 160", child.MeasuredWidth())
	}
	if got := child.LayoutRect(); got != NewRect(20, 20, 160, 160) {
		t.Errorf("stale rect = %+v, want last committed", got)
	}
	if got := child.LocationInWindow(); got != (Point{X: 20, Y: 20}) {
		t.Errorf("stale window location = %+v, want (20,20)", got)
	}
}
