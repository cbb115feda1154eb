package view

// AddChild appends children to this view and requests a new layout pass.
func (v *View) AddChild(children ...*View) {
	for _, child := range children {
		child.parent = v
		child.setHostRecursive(v.host)
		v.children = append(v.children, child)
	}
	v.RequestLayout()
}

// InsertChild inserts a child at the given index, clamped into range.
// Child order determines placement and drawing order.
func (v *View) InsertChild(child *View, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(v.children) {
		index = len(v.children)
	}
	child.parent = v
	child.setHostRecursive(v.host)
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = child
	v.RequestLayout()
}

// RemoveChild removes a child from this view, preserving the order of the
// remaining children. Returns true if the child was found and removed.
func (v *View) RemoveChild(child *View) bool {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			child.parent = nil
			child.setHostRecursive(nil)
			v.RequestLayout()
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child and requests a new layout pass.
func (v *View) RemoveAllChildren() {
	for _, child := range v.children {
		child.parent = nil
		child.setHostRecursive(nil)
	}
	v.children = nil
	v.RequestLayout()
}

// Children returns the child views. The slice is owned by the view; do
// not mutate it.
func (v *View) Children() []*View {
	return v.children
}

// ChildCount returns the number of children.
func (v *View) ChildCount() int {
	return len(v.children)
}

// Parent returns the parent view, or nil if this is a tree root.
func (v *View) Parent() *View {
	return v.parent
}

// Host returns the Root this view is attached to, or nil.
func (v *View) Host() *Root {
	return v.host
}

func (v *View) setHostRecursive(h *Root) {
	if v == nil {
		return
	}
	v.host = h
	for _, child := range v.children {
		child.setHostRecursive(h)
	}
}
