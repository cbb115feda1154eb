// Package fyneview binds the view layout tree to Fyne canvas objects.
//
// Each Surface wraps one fyne.CanvasObject; frames committed by the layout
// pass translate directly into Move/Resize calls. Fyne positions are
// relative to the object's container, which matches the tree-wide
// parent-relative rect convention of the core package.
package fyneview

import (
	"fyne.io/fyne/v2"

	"github.com/grindlemire/go-view"
)

// Surface applies committed frames to a Fyne canvas object.
type Surface struct {
	obj fyne.CanvasObject
}

// Compile-time check that Surface implements view.NativeSurface.
var _ view.NativeSurface = (*Surface)(nil)

// Wrap creates a Surface around an existing canvas object.
func Wrap(obj fyne.CanvasObject) *Surface {
	return &Surface{obj: obj}
}

// Object returns the wrapped canvas object.
func (s *Surface) Object() fyne.CanvasObject {
	return s.obj
}

// SetFrame moves and resizes the wrapped object. Move and Resize are
// idempotent in Fyne, satisfying the NativeSurface contract.
func (s *Surface) SetFrame(frame view.Rect) {
	s.obj.Move(fyne.NewPos(float32(frame.X), float32(frame.Y)))
	s.obj.Resize(fyne.NewSize(float32(frame.Width), float32(frame.Height)))
}

// Bind attaches obj as v's native surface and returns the wrapping
// Surface, so the next layout pass starts positioning it.
func Bind(v *view.View, obj fyne.CanvasObject) *Surface {
	s := Wrap(obj)
	v.SetSurface(s)
	return s
}
