package view

// Root drives layout for one view tree. It owns the external size
// constraint, the pending-invalidation state, and the schedule-once
// semantic: however many invalidations arrive between passes, the host is
// asked to schedule exactly one, and a pass always runs to completion
// before newly queued invalidations are served.
//
// The host application's frame loop supplies the scheduling: it registers
// a callback via SetOnScheduleLayout and calls LayoutPass when the frame
// comes around. Root performs no locking; the host must drive it from a
// single logical UI goroutine.
type Root struct {
	view          *View
	width, height int
	origin        Point // window top-left in screen coordinates

	layoutPending bool
	inPass        bool
	invalidQueue  []*View

	onSchedule func()
}

// NewRoot attaches a view tree to a new Root.
func NewRoot(v *View) *Root {
	r := &Root{view: v}
	if v != nil {
		v.setHostRecursive(r)
	}
	return r
}

// View returns the root view of the tree, or nil.
func (r *Root) View() *View {
	return r.view
}

// SetOnScheduleLayout registers the host callback invoked (at most once
// per pending pass) when a re-layout needs to be scheduled.
func (r *Root) SetOnScheduleLayout(fn func()) {
	r.onSchedule = fn
}

// SetSize updates the external size constraint (typically the window or
// screen size) and schedules a pass if it changed.
func (r *Root) SetSize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width = width
	r.height = height
	if r.view != nil {
		r.view.invalidate()
	}
	r.scheduleLayout()
}

// Size returns the current external size constraint.
func (r *Root) Size() Size {
	return Size{Width: r.width, Height: r.height}
}

// SetOrigin records the window's position in screen coordinates, consumed
// by View.LocationOnScreen. Moving the window does not re-layout.
func (r *Root) SetOrigin(p Point) {
	r.origin = p
}

// Origin returns the window's position in screen coordinates.
func (r *Root) Origin() Point {
	return r.origin
}

// LayoutPending reports whether a pass has been scheduled and not yet run.
func (r *Root) LayoutPending() bool {
	return r.layoutPending
}

// LayoutPass runs one full measure+layout cycle: the root view is measured
// with Exactly specs of the external size, then laid out at (0,0).
// Invalidations queued during the pass are applied afterwards and a new
// pass is scheduled, never executed reentrantly.
func (r *Root) LayoutPass() {
	r.layoutPending = false
	if r.view == nil {
		return
	}

	r.inPass = true
	r.view.Measure(
		MakeMeasureSpec(r.width, Exactly),
		MakeMeasureSpec(r.height, Exactly),
	)
	r.view.Layout(0, 0, r.view.MeasuredWidth(), r.view.MeasuredHeight())
	r.inPass = false

	if len(r.invalidQueue) > 0 {
		queued := r.invalidQueue
		r.invalidQueue = nil
		for _, v := range queued {
			v.invalidate()
		}
		r.scheduleLayout()
	}
}

// scheduleLayout asks the host for a pass, coalescing repeat requests.
func (r *Root) scheduleLayout() {
	if r.layoutPending {
		return
	}
	r.layoutPending = true
	if r.onSchedule != nil {
		r.onSchedule()
	}
}

// queueInvalidation defers an invalidation that arrived mid-pass.
func (r *Root) queueInvalidation(v *View) {
	r.invalidQueue = append(r.invalidQueue, v)
}
