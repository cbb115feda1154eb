package measure

import "fmt"

// State is the per-axis outcome of a measure pass: a resolved size in the
// low 30 bits and a too-small flag in bit 30. The flag records that the
// resolved size was clamped below the node's desired size by an Exactly or
// AtMost constraint, and is OR-propagated upward so a too-small condition
// anywhere in a subtree is visible at the root.
//
// The bit layout is internal; nothing may persist a State across versions.
type State uint32

const (
	stateSizeMask State = 1<<specModeShift - 1
	// StateTooSmall is the flag bit indicating the measured size was
	// clamped below the desired size.
	StateTooSmall State = 1 << specModeShift
)

// MakeState packs a size and a too-small flag into a State.
func MakeState(size int, tooSmall bool) State {
	if size < 0 {
		size = 0
	}
	if size > int(stateSizeMask) {
		size = int(stateSizeMask)
	}
	s := State(size)
	if tooSmall {
		s |= StateTooSmall
	}
	return s
}

// Size returns the resolved size.
func (s State) Size() int {
	return int(s & stateSizeMask)
}

// TooSmall reports whether the resolved size was clamped below the
// desired size.
func (s State) TooSmall() bool {
	return s&StateTooSmall != 0
}

// String formats the state for debugging output.
func (s State) String() string {
	if s.TooSmall() {
		return fmt.Sprintf("%d(too small)", s.Size())
	}
	return fmt.Sprintf("%d", s.Size())
}

// Resolve reconciles a desired size against an imposed spec:
//
//	Exactly     -> spec size, flag false
//	AtMost      -> min(desired, spec size), flag iff desired > spec size
//	Unspecified -> desired, flag false
//
// childTooSmall is OR-combined into the result so a clamped descendant
// remains visible in the parent's state.
func Resolve(desired int, spec Spec, childTooSmall bool) State {
	size := desired
	tooSmall := false
	switch spec.Mode() {
	case Exactly:
		size = spec.Size()
	case AtMost:
		if desired > spec.Size() {
			size = spec.Size()
			tooSmall = true
		}
	case Unspecified:
		// Desired size stands.
	}
	return MakeState(size, tooSmall || childTooSmall)
}

// Combine merges the too-small flags of two states. The size fields do not
// participate: the result carries flag bits only, making Combine
// commutative and idempotent. Accumulate child states with it, then fold
// the aggregate into Resolve via childTooSmall.
func Combine(a, b State) State {
	return (a | b) & StateTooSmall
}
