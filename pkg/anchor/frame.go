package anchor

import "github.com/go-drift/edgeframe/pkg/geometry"

// Frame is a tracked rectangle maintained by constraints relative to chosen
// reference frames. Frames are created through System.NewFrame and resolved
// during System.Layout.
//
// A frame holds a non-owning reference to its owner: the owner's rect is the
// fallback reference for any axis the active constraints leave undetermined.
type Frame struct {
	system    *System
	owner     Anchorable
	rect      geometry.Rect
	active    []*Constraint // activation order, oldest first
	dirty     bool
	removed   bool
	onResolve func(geometry.Rect)
}

// Rect returns the most recently resolved rectangle.
func (f *Frame) Rect() geometry.Rect {
	return f.rect
}

// AnchorRect returns the resolved rectangle, satisfying Anchorable so other
// frames can anchor against this one.
func (f *Frame) AnchorRect() geometry.Rect {
	return f.rect
}

// Owner returns the anchorable this frame falls back to when
// under-constrained.
func (f *Frame) Owner() Anchorable {
	return f.owner
}

// Anchor returns the anchor for one of the frame's edges.
func (f *Frame) Anchor(e geometry.Edge) Anchor {
	return Anchor{Item: f, Attr: EdgeAttr(e)}
}

// OnResolve registers a callback invoked whenever the frame's rect changes
// during a layout pass. At most one callback; nil clears it.
func (f *Frame) OnResolve(fn func(geometry.Rect)) {
	f.onResolve = fn
}

// ActiveConstraints returns the currently active constraints whose item is
// this frame, in activation order.
func (f *Frame) ActiveConstraints() []*Constraint {
	out := make([]*Constraint, len(f.active))
	copy(out, f.active)
	return out
}

func (f *Frame) markDirty() {
	f.dirty = true
	if f.system != nil {
		f.system.needsLayout = true
	}
}
