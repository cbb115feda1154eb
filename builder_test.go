package view

import "testing"

func TestApplyXMLAttribute(t *testing.T) {
	tests := map[string]struct {
		attr  string
		value string
		want  bool
		check func(*View) bool
	}{
		"fixed width": {
			attr: "width", value: "120", want: true,
			check: func(v *View) bool { return v.style.Width == Fixed(120) },
		},
		"percent height": {
			attr: "height", value: "50%", want: true,
			check: func(v *View) bool { return v.style.Height == Percent(50) },
		},
		"auto width": {
			attr: "width", value: "auto", want: true,
			check: func(v *View) bool { return v.style.Width.IsAuto() },
		},
		"uniform margin": {
			attr: "margin", value: "12", want: true,
			check: func(v *View) bool { return v.style.Margin == EdgeAll(12) },
		},
		"four-sided margin": {
			attr: "margin", value: "1 2 3 4", want: true,
			check: func(v *View) bool { return v.style.Margin == EdgeTRBL(1, 2, 3, 4) },
		},
		"horizontal alignment": {
			attr: "horizontalAlignment", value: "right", want: true,
			check: func(v *View) bool { return v.style.HorizontalAlignment == AlignEnd },
		},
		"vertical alignment": {
			attr: "verticalAlignment", value: "top", want: true,
			check: func(v *View) bool { return v.style.VerticalAlignment == AlignStart },
		},
		"visibility collapsed": {
			attr: "visibility", value: "collapsed", want: true,
			check: func(v *View) bool { return v.style.Visibility == Collapsed },
		},
		"min width": {
			attr: "minWidth", value: "30", want: true,
			check: func(v *View) bool { return v.style.MinWidth == Fixed(30) },
		},
		"unknown attribute": {
			attr: "backgroundColor", value: "#ff0000", want: false,
			check: func(v *View) bool { return true },
		},
		"malformed number": {
			attr: "width", value: "12px", want: false,
			check: func(v *View) bool { return v.style.Width.IsAuto() },
		},
		"malformed edges": {
			attr: "margin", value: "1 2 3", want: false,
			check: func(v *View) bool { return v.style.Margin.IsZero() },
		},
		"bad alignment keyword": {
			// "top" belongs to the vertical axis.
			attr: "horizontalAlignment", value: "top", want: false,
			check: func(v *View) bool { return v.style.HorizontalAlignment == AlignStretch },
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			v := New()
			got := v.ApplyXMLAttribute(tc.attr, tc.value)
			if got != tc.want {
				t.Errorf("ApplyXMLAttribute(%q, %q) = %v, want %v", tc.attr, tc.value, got, tc.want)
			}
			if !tc.check(v) {
				t.Errorf("style not applied as expected for %q=%q", tc.attr, tc.value)
			}
		})
	}
}

func TestApplyXMLAttribute_Invalidates(t *testing.T) {
	rootView := New()
	r := NewRoot(rootView)
	r.SetSize(100, 100)
	r.LayoutPass()

	if !rootView.ApplyXMLAttribute("width", "80") {
		t.Fatal("width attribute not recognized")
	}
	if rootView.IsLayoutValid() {
		t.Error("attribute application did not invalidate the view")
	}
	if !r.LayoutPending() {
		t.Error("attribute application did not schedule a pass")
	}
}

func TestAddChildFromBuilder(t *testing.T) {
	parent := New()
	a := New()
	b := New()
	c := New()

	parent.AddChildFromBuilder("content", a)
	parent.AddArrayFromBuilder("items", []*View{b, c})

	if parent.ChildCount() != 3 {
		t.Fatalf("child count = %d, want 3", parent.ChildCount())
	}
	// Document order is preserved.
	if parent.Children()[0] != a || parent.Children()[1] != b || parent.Children()[2] != c {
		t.Error("builder children out of document order")
	}
	if a.Parent() != parent {
		t.Error("builder child not parented")
	}
	if parent.IsLayoutValid() {
		t.Error("builder mutation left the parent valid")
	}
}
