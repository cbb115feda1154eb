package view

import (
	"strconv"
	"strings"
)

// Structural mutation hooks for the tree-construction collaborator (the
// markup builder). The builder itself — parsing markup and instantiating
// views from it — lives outside this package; these entry points are what
// it calls while assembling a tree. Every hook invalidates the affected
// view, so a tree built before the first pass lays out correctly and
// mutations between passes trigger exactly one coalesced re-layout.

// AddChildFromBuilder accepts a single child produced by the builder.
// The name is the markup-declared slot and is ignored by the base view,
// which has one content area; variants may inspect it.
func (v *View) AddChildFromBuilder(name string, child *View) {
	_ = name
	v.AddChild(child)
}

// AddArrayFromBuilder accepts a collection of children produced by the
// builder, preserving document order.
func (v *View) AddArrayFromBuilder(name string, children []*View) {
	_ = name
	v.AddChild(children...)
}

// ApplyXMLAttribute applies one already-split markup attribute to the
// view's layout style. Returns true if the attribute was recognized;
// unknown attributes are left for other collaborators (styling, events).
//
// Dimension values accept "auto", "<n>", and "<n>%". Edge values accept
// one number for all sides or four in top/right/bottom/left order.
func (v *View) ApplyXMLAttribute(name, value string) bool {
	switch name {
	case "width":
		return v.applyDimension(&v.style.Width, value)
	case "height":
		return v.applyDimension(&v.style.Height, value)
	case "minWidth":
		return v.applyDimension(&v.style.MinWidth, value)
	case "minHeight":
		return v.applyDimension(&v.style.MinHeight, value)
	case "maxWidth":
		return v.applyDimension(&v.style.MaxWidth, value)
	case "maxHeight":
		return v.applyDimension(&v.style.MaxHeight, value)
	case "margin":
		return v.applyEdges(&v.style.Margin, value)
	case "padding":
		return v.applyEdges(&v.style.Padding, value)
	case "horizontalAlignment":
		a, ok := parseAlignment(value, "left", "right")
		if !ok {
			return false
		}
		v.style.HorizontalAlignment = a
		v.RequestLayout()
		return true
	case "verticalAlignment":
		a, ok := parseAlignment(value, "top", "bottom")
		if !ok {
			return false
		}
		v.style.VerticalAlignment = a
		v.RequestLayout()
		return true
	case "visibility":
		vis, ok := parseVisibility(value)
		if !ok {
			return false
		}
		v.SetVisibility(vis)
		return true
	default:
		return false
	}
}

func (v *View) applyDimension(dst *Value, raw string) bool {
	val, ok := parseDimension(raw)
	if !ok {
		return false
	}
	*dst = val
	v.RequestLayout()
	return true
}

func (v *View) applyEdges(dst *Edges, raw string) bool {
	e, ok := parseEdges(raw)
	if !ok {
		return false
	}
	*dst = e
	v.RequestLayout()
	return true
}

func parseDimension(raw string) (Value, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "auto" {
		return Auto(), true
	}
	if p, found := strings.CutSuffix(raw, "%"); found {
		amount, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Value{}, false
		}
		return Percent(amount), true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Value{}, false
	}
	return Fixed(n), true
}

func parseEdges(raw string) (Edges, bool) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Edges{}, false
		}
		return EdgeAll(n), true
	case 4:
		var vals [4]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Edges{}, false
			}
			vals[i] = n
		}
		return EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), true
	default:
		return Edges{}, false
	}
}

// parseAlignment maps a markup keyword to an Alignment. The start and end
// keywords differ per axis ("left"/"right" vs "top"/"bottom").
func parseAlignment(raw, start, end string) (Alignment, bool) {
	switch strings.TrimSpace(raw) {
	case start:
		return AlignStart, true
	case end:
		return AlignEnd, true
	case "center":
		return AlignCenter, true
	case "stretch":
		return AlignStretch, true
	default:
		return 0, false
	}
}

func parseVisibility(raw string) (Visibility, bool) {
	switch strings.TrimSpace(raw) {
	case "visible":
		return Visible, true
	case "hidden":
		return Hidden, true
	case "collapsed", "collapse":
		return Collapsed, true
	default:
		return 0, false
	}
}
