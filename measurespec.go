// measurespec.go re-exports the packed constraint types from internal/measure.
// Any changes to internal/measure types must be mirrored here.
package view

import "github.com/grindlemire/go-view/internal/measure"

// MeasureSpec is a per-axis constraint handed from parent to child:
// a (mode, size) pair packed into a single word.
type MeasureSpec = measure.Spec

// MeasureMode describes how a MeasureSpec constrains a child.
type MeasureMode = measure.SpecMode

const (
	// Unspecified imposes no constraint; the child reports its true desired size.
	Unspecified = measure.Unspecified
	// Exactly fixes the dimension; the child must be exactly this size.
	Exactly = measure.Exactly
	// AtMost gives an upper bound; the child may be any size up to it.
	AtMost = measure.AtMost
)

// MeasureSpecSizeMax is the largest size a MeasureSpec can carry.
const MeasureSpecSizeMax = measure.SpecSizeMax

// MeasuredState is the per-axis outcome of a measure pass: a resolved size
// plus a flag recording that the size was clamped below the desired size.
type MeasuredState = measure.State

// MakeMeasureSpec packs a size and mode into a MeasureSpec.
func MakeMeasureSpec(size int, mode MeasureMode) MeasureSpec {
	return measure.MakeSpec(size, mode)
}

// MakeMeasuredState packs a size and a too-small flag into a MeasuredState.
func MakeMeasuredState(size int, tooSmall bool) MeasuredState {
	return measure.MakeState(size, tooSmall)
}

// ResolveSizeAndState reconciles a desired size against an imposed spec,
// forwarding a too-small condition from descendants. See measure.Resolve.
func ResolveSizeAndState(desired int, spec MeasureSpec, childTooSmall bool) MeasuredState {
	return measure.Resolve(desired, spec, childTooSmall)
}

// CombineMeasuredStates merges the too-small flags of two states.
// Commutative and idempotent; size fields do not participate.
func CombineMeasuredStates(a, b MeasuredState) MeasuredState {
	return measure.Combine(a, b)
}
