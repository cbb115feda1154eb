// Package measure implements the packed constraint and result encodings
// used by the measure pass: a Spec carries a (mode, size) constraint from
// parent to child along one axis, and a State carries a resolved size
// together with a too-small flag back up the tree.
package measure

import "fmt"

// SpecMode describes how a parent constrains a child along one axis.
type SpecMode uint32

const (
	// Unspecified imposes no constraint; the child reports its true
	// desired size.
	Unspecified SpecMode = iota
	// Exactly fixes the dimension; the child must be exactly this size.
	Exactly
	// AtMost gives an upper bound; the child may be any size up to it.
	AtMost
)

// String returns the mode name for debugging output.
func (m SpecMode) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Exactly:
		return "Exactly"
	case AtMost:
		return "AtMost"
	default:
		return fmt.Sprintf("SpecMode(%d)", uint32(m))
	}
}

// Spec is a measure constraint packed into a single word: the low 30 bits
// hold the size, the top 2 bits hold the mode. One Spec is passed down the
// tree per axis.
type Spec uint32

const (
	specModeShift = 30
	// SpecSizeMax is the largest size a Spec can carry.
	SpecSizeMax = 1<<specModeShift - 1

	specSizeMask = Spec(SpecSizeMax)
	specModeMask = ^specSizeMask
)

// MakeSpec packs a size and mode into a Spec. Sizes are clamped into the
// representable range; callers produce them internally, so out-of-range
// values indicate degenerate geometry rather than bad input.
func MakeSpec(size int, mode SpecMode) Spec {
	if size < 0 {
		size = 0
	}
	if size > SpecSizeMax {
		size = SpecSizeMax
	}
	return Spec(size)&specSizeMask | Spec(mode)<<specModeShift
}

// Size returns the size component of the spec.
func (s Spec) Size() int {
	return int(s & specSizeMask)
}

// Mode returns the mode component of the spec.
func (s Spec) Mode() SpecMode {
	return SpecMode(s >> specModeShift)
}

// String formats the spec as "Mode(size)" for debugging output.
func (s Spec) String() string {
	return fmt.Sprintf("%s(%d)", s.Mode(), s.Size())
}
