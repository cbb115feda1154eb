package view

// MeasureChild derives the child's measure specs from this view's own
// constraints, invokes the child's measure pass, and returns the child's
// resolved size. The available space is the parent constraint minus the
// parent's padding and border and the child's margins, clamped at zero
// (degraded geometry is not an error).
//
// Collapsed children are not measured and contribute (0, 0).
func (v *View) MeasureChild(c *View, parentWidthSpec, parentHeightSpec MeasureSpec) (width, height int) {
	if c.style.Visibility == Collapsed {
		return 0, 0
	}

	m := c.style.Margin
	ws := childMeasureSpec(parentWidthSpec, v.style.chromeH()+m.Horizontal(),
		c.style.Width, c.style.MinWidth, c.style.MaxWidth)
	hs := childMeasureSpec(parentHeightSpec, v.style.chromeV()+m.Vertical(),
		c.style.Height, c.style.MinHeight, c.style.MaxHeight)

	c.Measure(ws, hs)
	return c.MeasuredWidth(), c.MeasuredHeight()
}

// childMeasureSpec derives one axis of a child's constraint from the
// parent's spec, the space already consumed around the child (parent
// padding/border plus child margins), and the child's declared size.
//
//	Fixed length   -> Exactly at that length
//	Percent length -> Exactly at the resolved fraction of available space
//	Auto           -> AtMost(available) under a bounded parent,
//	                  Unspecified under an unbounded one
//
// Min/max constraints clamp the derived size; min wins on conflict.
func childMeasureSpec(parent MeasureSpec, consumed int, length, minV, maxV Value) MeasureSpec {
	available := parent.Size() - consumed
	if available < 0 {
		available = 0
	}

	switch length.Unit {
	case UnitFixed, UnitPercent:
		size := length.Resolve(available, 0)
		return MakeMeasureSpec(clampSize(size, available, minV, maxV), Exactly)
	default: // UnitAuto
		switch parent.Mode() {
		case Exactly, AtMost:
			size := available
			if !maxV.IsAuto() {
				if maxR := maxV.Resolve(available, size); size > maxR {
					size = maxR
				}
			}
			return MakeMeasureSpec(size, AtMost)
		default:
			return MakeMeasureSpec(0, Unspecified)
		}
	}
}

// clampSize restricts size to the [min, max] range resolved against the
// available space. If min exceeds max, min wins (matches CSS behavior).
func clampSize(size, available int, minV, maxV Value) int {
	if !maxV.IsAuto() {
		if maxR := maxV.Resolve(available, size); size > maxR {
			size = maxR
		}
	}
	if minR := minV.Resolve(available, 0); size < minR {
		size = minR
	}
	if size < 0 {
		size = 0
	}
	return size
}
