// Package view provides the minimal host view tree the edge-extension engine
// anchors against: plain rectangular views with parent/child structure,
// attachment notifications, and display metrics.
//
// Views here are passive. They carry bounds in root coordinates and a
// background color; layout of engine-managed rectangles happens in the
// anchor package's constraint system.
package view

import (
	"slices"

	"github.com/go-drift/edgeframe/pkg/geometry"
)

// View is a bounded rectangular element in a tree.
//
// Bounds are expressed in root coordinates and are set by the embedder (or a
// constraint resolution pass). The zero value is not usable; construct views
// with New.
type View struct {
	bounds          geometry.Rect
	BackgroundColor Color
	parent          *View
	subviews        []*View
	disposed        bool
	disposeHooks    []func()
}

// New constructs an empty view.
func New() *View {
	return &View{}
}

// Bounds returns the view's rectangle in root coordinates.
func (v *View) Bounds() geometry.Rect {
	return v.bounds
}

// SetBounds updates the view's rectangle.
func (v *View) SetBounds(r geometry.Rect) {
	v.bounds = r
}

// AnchorRect returns the rectangle used as an anchoring reference frame.
func (v *View) AnchorRect() geometry.Rect {
	return v.bounds
}

// Parent returns the view's parent, or nil if detached.
func (v *View) Parent() *View {
	return v.parent
}

// Subviews returns the view's children in order.
func (v *View) Subviews() []*View {
	return slices.Clone(v.subviews)
}

// Root returns the topmost ancestor, which is the view itself when detached.
func (v *View) Root() *View {
	root := v
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// IsDescendantOf reports whether ancestor is on the view's ancestor chain,
// the view itself included.
func (v *View) IsDescendantOf(ancestor *View) bool {
	for cur := v; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// AddSubview appends child to the view's children, detaching it from any
// previous parent first. Attachment notifications fire after the transition
// has fully settled.
func (v *View) AddSubview(child *View) {
	v.InsertSubview(child, len(v.subviews))
}

// InsertSubview inserts child at the given index, detaching it from any
// previous parent first. Attachment notifications fire after the transition
// has fully settled.
func (v *View) InsertSubview(child *View, index int) {
	if child == nil || child == v {
		return
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(v.subviews) {
		index = len(v.subviews)
	}
	v.subviews = slices.Insert(v.subviews, index, child)
	child.parent = v
	notifySubtreeAttached(child)
}

// RemoveFromParent detaches the view from its parent. No-op when already
// detached. Attachment notifications fire after the transition has fully
// settled.
func (v *View) RemoveFromParent() {
	if v.parent == nil {
		return
	}
	v.parent.removeChild(v)
	notifySubtreeAttached(v)
}

func (v *View) removeChild(child *View) {
	idx := slices.Index(v.subviews, child)
	if idx < 0 {
		return
	}
	v.subviews = slices.Delete(v.subviews, idx, idx+1)
	child.parent = nil
}

// VisitSubviews calls the visitor for each child in order.
func (v *View) VisitSubviews(visitor func(*View)) {
	for _, child := range v.subviews {
		visitor(child)
	}
}

// OnDispose registers a hook to run when the view is disposed.
func (v *View) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	v.disposeHooks = append(v.disposeHooks, fn)
}

// Disposed reports whether Dispose has run.
func (v *View) Disposed() bool {
	return v.disposed
}

// Dispose permanently tears the view down: it detaches from its parent,
// disposes all subviews, and runs registered dispose hooks. Idempotent.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.RemoveFromParent()
	for _, child := range slices.Clone(v.subviews) {
		child.Dispose()
	}
	for _, fn := range v.disposeHooks {
		fn()
	}
	v.disposeHooks = nil
	AttachEvents.removeAll(v)
}

// notifySubtreeAttached delivers attachment notifications to a moved view and
// every view below it, since all of their ancestor chains changed.
func notifySubtreeAttached(v *View) {
	AttachEvents.Notify(v)
	for _, child := range v.subviews {
		notifySubtreeAttached(child)
	}
}
