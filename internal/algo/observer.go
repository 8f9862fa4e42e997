package algo

import "github.com/elektrokombinacija/mp3d/internal/core"

// Observer is the "Scene glue interface" spec.md §2 names: the narrow
// contract to a host for progress, delay, and exploration readout,
// adapted from internal/vis/observer.Observer's ShouldPause/WaitForStep
// pair to a single search's expansion lifecycle rather than a multi-node
// CBS tree.
type Observer interface {
	// OnExpand is called once per expansion, after the node is popped and
	// marked closed but before its successors are generated, with the
	// node's world-space pose. It is a callback the host decides how to
	// use; the planner still applies its SetDelay sleep after it.
	OnExpand(pose core.Transform3D)

	// ShouldPause reports whether the planner should block before the next
	// expansion.
	ShouldPause() bool

	// WaitForStep blocks until the host allows the next expansion to
	// proceed. Only called when ShouldPause returns true.
	WaitForStep()
}

// NopObserver is the zero-cost default: never pauses, ignores expansions.
type NopObserver struct{}

// OnExpand does nothing.
func (NopObserver) OnExpand(core.Transform3D) {}

// ShouldPause always reports false.
func (NopObserver) ShouldPause() bool { return false }

// WaitForStep returns immediately.
func (NopObserver) WaitForStep() {}
