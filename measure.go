package view

// Measure resolves the view's desired size under the given constraints and
// records it via SetMeasuredDimension. Parents call this for each child
// before finalizing their own measured size (strict depth-first order).
//
// When the specs are identical to the previous measurement and the layout
// is still valid, the stored result is reused and the hook is not invoked.
//
// The Measurer hook (or the default frame behavior) MUST call
// SetMeasuredDimension before returning; violating that contract is a
// programming error and panics.
func (v *View) Measure(widthSpec, heightSpec MeasureSpec) {
	if v.style.Visibility == Collapsed {
		// Collapsed views contribute zero size and skip their hook.
		v.lastWidthSpec, v.lastHeightSpec = widthSpec, heightSpec
		v.SetMeasuredDimension(0, 0)
		return
	}

	if v.measured && v.layoutValid &&
		widthSpec == v.lastWidthSpec && heightSpec == v.lastHeightSpec {
		return
	}
	v.lastWidthSpec, v.lastHeightSpec = widthSpec, heightSpec

	v.dimensionSet = false
	if v.measurer != nil {
		v.measurer.OnMeasure(v, widthSpec, heightSpec)
	} else {
		v.DefaultMeasure(widthSpec, heightSpec)
	}
	if !v.dimensionSet {
		panic("view: OnMeasure returned without calling SetMeasuredDimension")
	}
}

// SetMeasuredDimension stores the outcome of the measure pass, one
// MeasuredState per axis. Measurer hooks must call this exactly once per
// measurement before returning.
func (v *View) SetMeasuredDimension(width, height MeasuredState) {
	v.measuredWidth = width
	v.measuredHeight = height
	v.measured = true
	v.dimensionSet = true
}

// MeasuredWidth returns the width resolved by the last measure pass.
// Valid (possibly stale) after the first measurement; zero before it.
func (v *View) MeasuredWidth() int {
	return v.measuredWidth.Size()
}

// MeasuredHeight returns the height resolved by the last measure pass.
func (v *View) MeasuredHeight() int {
	return v.measuredHeight.Size()
}

// MeasuredWidthState returns the full packed width state.
func (v *View) MeasuredWidthState() MeasuredState {
	return v.measuredWidth
}

// MeasuredHeightState returns the full packed height state.
func (v *View) MeasuredHeightState() MeasuredState {
	return v.measuredHeight
}

// MeasuredStateFlags returns the combined too-small flags of both axes,
// for callers that only care whether anything in the subtree was clamped.
func (v *View) MeasuredStateFlags() MeasuredState {
	return CombineMeasuredStates(v.measuredWidth, v.measuredHeight)
}

// DefaultMeasure is the frame-container measurement: every visible child
// is measured against this view's full content box, and the desired size
// is the largest child box (margins included) plus own padding and border,
// floored by MinWidth/MinHeight and capped by MaxWidth/MaxHeight.
// Measurer hooks may delegate here for the standard behavior.
func (v *View) DefaultMeasure(widthSpec, heightSpec MeasureSpec) {
	var maxChildW, maxChildH int
	var widthState, heightState MeasuredState

	for _, c := range v.children {
		if c.style.Visibility == Collapsed {
			continue
		}
		cw, ch := v.MeasureChild(c, widthSpec, heightSpec)
		m := c.style.Margin
		if w := cw + m.Horizontal(); w > maxChildW {
			maxChildW = w
		}
		if h := ch + m.Vertical(); h > maxChildH {
			maxChildH = h
		}
		widthState = CombineMeasuredStates(widthState, c.measuredWidth)
		heightState = CombineMeasuredStates(heightState, c.measuredHeight)
	}

	desiredW := clampDesired(maxChildW+v.style.chromeH(), widthSpec, v.style.MinWidth, v.style.MaxWidth)
	desiredH := clampDesired(maxChildH+v.style.chromeV(), heightSpec, v.style.MinHeight, v.style.MaxHeight)

	v.SetMeasuredDimension(
		ResolveSizeAndState(desiredW, widthSpec, widthState.TooSmall()),
		ResolveSizeAndState(desiredH, heightSpec, heightState.TooSmall()),
	)
}

// clampDesired applies the view's own min/max constraints to a desired
// size. Min and max resolve against the spec size; min wins on conflict.
func clampDesired(desired int, spec MeasureSpec, minV, maxV Value) int {
	if !maxV.IsAuto() {
		if maxR := maxV.Resolve(spec.Size(), desired); desired > maxR {
			desired = maxR
		}
	}
	if minR := minV.Resolve(spec.Size(), 0); desired < minR {
		desired = minR
	}
	if desired < 0 {
		desired = 0
	}
	return desired
}
