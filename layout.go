package view

// Layout commits the view's final rect, given in its parent's coordinate
// space, then recurses into children through the Layouter hook and pushes
// the frame to the native surface. Requires a completed measure pass;
// calling Layout on an unmeasured view is a programming error and panics.
func (v *View) Layout(left, top, right, bottom int) {
	if !v.measured {
		panic("view: Layout called before Measure")
	}

	frame := RectLTRB(left, top, right, bottom)
	v.layoutRect = frame
	v.laidOut = true

	if v.style.Visibility != Collapsed {
		if v.layouter != nil {
			v.layouter.OnLayout(v, left, top, right, bottom)
		} else {
			v.DefaultLayout(left, top, right, bottom)
		}
	}

	v.pushFrame(frame)
	v.layoutValid = true
}

// DefaultLayout is the frame-container placement: every visible child is
// placed within this view's content box (the committed rect minus padding
// and border) according to its alignment. Layouter hooks may delegate
// here for the standard behavior.
func (v *View) DefaultLayout(left, top, right, bottom int) {
	// Children live in this view's own coordinate space, so the content
	// box starts at the padding/border offset, not at left/top.
	content := NewRect(0, 0, right-left, bottom-top).
		Inset(v.style.Border).
		Inset(v.style.Padding)

	for _, c := range v.children {
		v.LayoutChild(c, content.X, content.Y, content.Right(), content.Bottom())
	}
}

// LayoutRect returns the last committed rect, relative to the parent.
// Meaningful (possibly stale) after the first layout pass.
func (v *View) LayoutRect() Rect {
	return v.layoutRect
}

// ActualSize returns the dimensions of the last committed rect.
func (v *View) ActualSize() Size {
	return Size{Width: v.layoutRect.Width, Height: v.layoutRect.Height}
}
