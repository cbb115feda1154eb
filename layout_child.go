package view

// LayoutChild places a child within the slot [left,right]×[top,bottom]
// (this view's coordinate space): the slot is inset by the child's
// margins, the child's measured size is positioned by its alignment, and
// the child's own layout pass is invoked with the resolved rect.
//
// Stretch alignment gives the child the full slot on that axis; if that
// differs from its measured size the child is re-measured with Exactly
// specs first, so its subtree sees the final dimensions.
//
// Collapsed children are skipped entirely.
func (v *View) LayoutChild(c *View, left, top, right, bottom int) {
	if c.style.Visibility == Collapsed {
		return
	}

	m := c.style.Margin
	slotX := left + m.Left
	slotY := top + m.Top
	slotW := (right - left) - m.Horizontal()
	slotH := (bottom - top) - m.Vertical()
	if slotW < 0 {
		slotW = 0
	}
	if slotH < 0 {
		slotH = 0
	}

	x, w := alignAxis(c.style.HorizontalAlignment, slotX, slotW, c.MeasuredWidth())
	y, h := alignAxis(c.style.VerticalAlignment, slotY, slotH, c.MeasuredHeight())

	// A stretched axis may change the child's dimensions; re-measure at
	// Exactly so descendants are sized against the final rect.
	if w != c.MeasuredWidth() || h != c.MeasuredHeight() {
		c.Measure(MakeMeasureSpec(w, Exactly), MakeMeasureSpec(h, Exactly))
	}

	c.Layout(x, y, x+w, y+h)
}

// alignAxis resolves one axis of a child's placement: the position of the
// child within the slot and its final size. Center floor-divides the
// leftover, so an odd pixel always lands on the trailing side.
func alignAxis(align Alignment, slotStart, slotSize, size int) (pos, finalSize int) {
	switch align {
	case AlignStretch:
		return slotStart, slotSize
	case AlignCenter:
		return slotStart + (slotSize-size)/2, size
	case AlignEnd:
		return slotStart + slotSize - size, size
	default: // AlignStart
		return slotStart, size
	}
}
