package view

// Alignment specifies how a child is positioned within its parent slot
// along one axis. The same values serve both axes: Start means left or
// top, End means right or bottom.
type Alignment uint8

const (
	AlignStretch Alignment = iota // Fill the full slot (default)
	AlignStart                    // Flush to the leading edge
	AlignCenter                   // Centered; odd leftover goes to the trailing side
	AlignEnd                      // Flush to the trailing edge
)

// Visibility controls whether a view takes part in measurement, placement,
// and drawing.
type Visibility uint8

const (
	// Visible views are measured, placed, and drawn (default).
	Visible Visibility = iota
	// Hidden views keep their space but are not drawn.
	Hidden
	// Collapsed views contribute zero size and are skipped entirely by
	// both measurement and placement.
	Collapsed
)

// Style holds the layout properties consumed by the measure and layout
// passes. Margin, Padding, Border, and min/max values arrive already
// resolved to device-independent pixels by the style collaborator.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Box metrics
	Margin  Edges
	Padding Edges
	Border  Edges // border widths

	// Placement within the parent slot
	HorizontalAlignment Alignment
	VerticalAlignment   Alignment

	Visibility Visibility
}

// DefaultStyle returns a Style with sensible defaults: auto sizing, no
// maximum, and stretch alignment on both axes.
func DefaultStyle() Style {
	return Style{
		Width:               Auto(),
		Height:              Auto(),
		MinWidth:            Fixed(0),
		MinHeight:           Fixed(0),
		MaxWidth:            Auto(), // No maximum
		MaxHeight:           Auto(), // No maximum
		HorizontalAlignment: AlignStretch,
		VerticalAlignment:   AlignStretch,
	}
}

// chromeH returns the horizontal space consumed by padding and border widths.
func (s Style) chromeH() int {
	return s.Padding.Horizontal() + s.Border.Horizontal()
}

// chromeV returns the vertical space consumed by padding and border widths.
func (s Style) chromeV() int {
	return s.Padding.Vertical() + s.Border.Vertical()
}
