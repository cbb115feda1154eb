package view

import "testing"

func TestLocationQueries(t *testing.T) {
	inner := New(WithMargin(EdgeAll(5)))
	outer := New(WithMargin(EdgeAll(20)))
	outer.AddChild(inner)
	rootView := New()
	rootView.AddChild(outer)

	r := NewRoot(rootView)
	r.SetSize(200, 200)
	r.LayoutPass()

	if got := outer.LocationInWindow(); got != (Point{X: 20, Y: 20}) {
		t.Errorf("outer window location = %+v, want (20,20)", got)
	}
	if got := inner.LocationInWindow(); got != (Point{X: 25, Y: 25}) {
		t.Errorf("inner window location = %+v, want (25,25)", got)
	}

	if got := inner.LocationRelativeTo(outer); got != (Point{X: 5, Y: 5}) {
		t.Errorf("inner relative to outer = %+v, want (5,5)", got)
	}
	if got := inner.LocationRelativeTo(nil); got != (Point{X: 25, Y: 25}) {
		t.Errorf("relative to nil = %+v, want window location", got)
	}

	r.SetOrigin(Point{X: 100, Y: 50})
	if got := inner.LocationOnScreen(); got != (Point{X: 125, Y: 75}) {
		t.Errorf("inner screen location = %+v, want (125,75)", got)
	}
}

func TestLocationOnScreen_DetachedFallsBackToWindow(t *testing.T) {
	v := New()
	v.layoutRect = NewRect(7, 9, 10, 10)

	if got := v.LocationOnScreen(); got != (Point{X: 7, Y: 9}) {
		t.Errorf("detached screen location = %+v, want (7,9)", got)
	}
}
