package view

// Option configures a View at construction time.
type Option func(*View)

// --- Dimension Options ---

// WithWidth sets a fixed width in device-independent pixels.
func WithWidth(dp int) Option {
	return func(v *View) {
		v.style.Width = Fixed(dp)
	}
}

// WithWidthPercent sets width as a percentage of the parent's available width.
func WithWidthPercent(percent float64) Option {
	return func(v *View) {
		v.style.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in device-independent pixels.
func WithHeight(dp int) Option {
	return func(v *View) {
		v.style.Height = Fixed(dp)
	}
}

// WithHeightPercent sets height as a percentage of the parent's available height.
func WithHeightPercent(percent float64) Option {
	return func(v *View) {
		v.style.Height = Percent(percent)
	}
}

// WithSize sets both width and height in device-independent pixels.
func WithSize(width, height int) Option {
	return func(v *View) {
		v.style.Width = Fixed(width)
		v.style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(dp int) Option {
	return func(v *View) {
		v.style.MinWidth = Fixed(dp)
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(dp int) Option {
	return func(v *View) {
		v.style.MinHeight = Fixed(dp)
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(dp int) Option {
	return func(v *View) {
		v.style.MaxWidth = Fixed(dp)
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(dp int) Option {
	return func(v *View) {
		v.style.MaxHeight = Fixed(dp)
	}
}

// --- Box Options ---

// WithMargin sets the margins on all four sides.
func WithMargin(e Edges) Option {
	return func(v *View) {
		v.style.Margin = e
	}
}

// WithPadding sets the padding on all four sides.
func WithPadding(e Edges) Option {
	return func(v *View) {
		v.style.Padding = e
	}
}

// WithBorder sets the border widths on all four sides.
func WithBorder(e Edges) Option {
	return func(v *View) {
		v.style.Border = e
	}
}

// --- Placement Options ---

// WithHorizontalAlignment sets how the view is placed in its slot horizontally.
func WithHorizontalAlignment(a Alignment) Option {
	return func(v *View) {
		v.style.HorizontalAlignment = a
	}
}

// WithVerticalAlignment sets how the view is placed in its slot vertically.
func WithVerticalAlignment(a Alignment) Option {
	return func(v *View) {
		v.style.VerticalAlignment = a
	}
}

// WithAlignment sets both alignments at once.
func WithAlignment(horizontal, vertical Alignment) Option {
	return func(v *View) {
		v.style.HorizontalAlignment = horizontal
		v.style.VerticalAlignment = vertical
	}
}

// WithVisibility sets the view's visibility.
func WithVisibility(vis Visibility) Option {
	return func(v *View) {
		v.style.Visibility = vis
	}
}

// --- Behavior Options ---

// WithStyle replaces the entire layout style.
func WithStyle(s Style) Option {
	return func(v *View) {
		v.style = s
	}
}

// WithMeasurer installs a custom measurement hook.
func WithMeasurer(m Measurer) Option {
	return func(v *View) {
		v.measurer = m
	}
}

// WithLayouter installs a custom child-placement hook.
func WithLayouter(l Layouter) Option {
	return func(v *View) {
		v.layouter = l
	}
}

// WithSurface attaches a platform surface at construction time.
func WithSurface(s NativeSurface) Option {
	return func(v *View) {
		v.surface = s
	}
}

// WithChildren appends initial children.
func WithChildren(children ...*View) Option {
	return func(v *View) {
		for _, child := range children {
			child.parent = v
			v.children = append(v.children, child)
		}
	}
}
