package view

// RequestLayout marks this view's layout invalid and propagates the flag
// to every ancestor up to the root (their cached measurements may depend
// on this view's size), then schedules one coalesced re-layout pass on
// the attached Root.
//
// When called while a layout pass is running (a view reacting mid-pass),
// the invalidation is queued on the Root and applied after the pass
// completes; a pass is never re-entered.
func (v *View) RequestLayout() {
	if h := v.host; h != nil && h.inPass {
		h.queueInvalidation(v)
		return
	}
	v.invalidate()
	if v.host != nil {
		v.host.scheduleLayout()
	}
}

// invalidate clears the layout-valid flag on this view and its ancestors,
// stopping at the first already-invalid node: invalidity always
// propagates upward, so an invalid ancestor implies an invalid chain.
func (v *View) invalidate() {
	for n := v; n != nil && n.layoutValid; n = n.parent {
		n.layoutValid = false
	}
}
