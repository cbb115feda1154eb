package view

// Measurer is implemented by view variants that compute their own desired
// size. The framework calls OnMeasure during the measure pass; the hook
// MUST call v.SetMeasuredDimension before returning, and may delegate to
// v.DefaultMeasure for the standard behavior.
type Measurer interface {
	OnMeasure(v *View, widthSpec, heightSpec MeasureSpec)
}

// Layouter is implemented by view variants that place their own children.
// The framework calls OnLayout during the layout pass with the view's
// final rect in its parent's coordinate space; the hook recurses into
// children via v.LayoutChild, and may delegate to v.DefaultLayout.
type Layouter interface {
	OnLayout(v *View, left, top, right, bottom int)
}

// View is a node in the layout tree. It occupies a rectangular region and
// participates in the two-pass layout protocol: Measure walks the tree
// depth-first recording desired sizes, then Layout assigns final rects and
// pushes them to the native surface.
//
// The base View behaves as a frame container: children are measured
// against its full content box and placed on top of each other according
// to their alignment. Variants customize both passes through the Measurer
// and Layouter hooks.
//
// A View is not safe for concurrent use; a single logical UI goroutine
// must drive all measure, layout, and invalidation calls.
type View struct {
	// Tree structure (single source of truth)
	children []*View
	parent   *View
	host     *Root // set while attached to a Root

	style Style

	// Override hooks (nil = default frame behavior)
	measurer Measurer
	layouter Layouter

	// Platform surface (nil for purely logical nodes)
	surface     NativeSurface
	pushedFrame Rect
	framePushed bool

	// Measure pass state
	measuredWidth  MeasuredState
	measuredHeight MeasuredState
	measured       bool
	lastWidthSpec  MeasureSpec
	lastHeightSpec MeasureSpec

	// Layout pass state
	layoutRect  Rect
	laidOut     bool
	layoutValid bool

	// Guards the "OnMeasure must call SetMeasuredDimension" contract.
	dimensionSet bool
}

// New creates a new View with the given options.
// By default a View is auto-sized, stretch-aligned, and visible.
func New(opts ...Option) *View {
	v := &View{
		style: DefaultStyle(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Style returns the view's current layout style.
func (v *View) Style() Style {
	return v.style
}

// SetStyle replaces the view's layout style and requests a new layout pass.
func (v *View) SetStyle(s Style) {
	v.style = s
	v.RequestLayout()
}

// SetVisibility changes the view's visibility and requests a new layout
// pass; switching to or from Collapsed changes the parent's measurement.
func (v *View) SetVisibility(vis Visibility) {
	if v.style.Visibility == vis {
		return
	}
	v.style.Visibility = vis
	v.RequestLayout()
}

// Visibility returns the view's visibility.
func (v *View) Visibility() Visibility {
	return v.style.Visibility
}

// SetSurface attaches the platform surface that receives committed frames.
func (v *View) SetSurface(s NativeSurface) {
	v.surface = s
	v.framePushed = false
}

// Surface returns the attached platform surface, or nil.
func (v *View) Surface() NativeSurface {
	return v.surface
}

// IsLayoutValid reports whether the view's committed layout is current:
// both passes have completed since the last invalidating mutation.
func (v *View) IsLayoutValid() bool {
	return v.layoutValid
}
