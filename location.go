package view

// LocationInWindow returns the view's top-left corner in window
// coordinates, summing committed rects up the ancestor chain. The result
// reflects the last completed layout pass; if IsLayoutValid is false for
// this view or an ancestor the value may be stale, never absent.
func (v *View) LocationInWindow() Point {
	var p Point
	for n := v; n != nil; n = n.parent {
		p = p.Add(Point{X: n.layoutRect.X, Y: n.layoutRect.Y})
	}
	return p
}

// LocationOnScreen returns the view's top-left corner in screen
// coordinates: the window location plus the Root's origin.
func (v *View) LocationOnScreen() Point {
	p := v.LocationInWindow()
	if v.host != nil {
		p = p.Add(v.host.origin)
	}
	return p
}

// LocationRelativeTo returns the offset of this view's top-left corner
// from other's, in window coordinates. Both views must belong to the same
// tree for the result to be meaningful.
func (v *View) LocationRelativeTo(other *View) Point {
	if other == nil {
		return v.LocationInWindow()
	}
	return v.LocationInWindow().Sub(other.LocationInWindow())
}
