package view

// NativeSurface is the platform collaborator that backs a View with an
// actual drawing surface. The layout pass pushes each view's committed
// frame (in the parent's coordinate space) through SetFrame.
//
// Implementations must be idempotent under repeated identical frames; the
// core additionally elides pushes when the frame has not changed.
type NativeSurface interface {
	SetFrame(frame Rect)
}

// pushFrame forwards the committed rect to the native surface, skipping
// the call when the frame is unchanged since the last push.
func (v *View) pushFrame(frame Rect) {
	if v.surface == nil {
		return
	}
	if v.framePushed && v.pushedFrame == frame {
		return
	}
	v.surface.SetFrame(frame)
	v.pushedFrame = frame
	v.framePushed = true
}
