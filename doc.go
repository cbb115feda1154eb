// Package view implements a cross-platform view hierarchy built around a
// two-pass layout protocol: a measure pass that carries packed (mode, size)
// constraints down the tree and packed (size, too-small) results back up,
// followed by a layout pass that resolves each view's final rectangle from
// its measured size, margins, and alignment, and pushes it to a platform
// surface.
//
// The tree is driven by a Root, which owns the external size constraint and
// the coalesced re-layout scheduling; the host application's frame loop
// decides when a scheduled pass actually runs. Custom view variants plug
// into the protocol through the Measurer and Layouter hooks rather than
// inheritance: the sealed Measure/Layout entry points enforce the protocol
// and delegate the overridable steps.
//
// Platform bindings live in separate packages: fyneview positions Fyne
// canvas objects from committed frames, and termview renders a committed
// tree into a terminal grid. The core package has no rendering, styling,
// or input handling of its own.
//
// All types in this package assume a single logical UI goroutine; nothing
// here locks.
package view
