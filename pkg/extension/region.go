package extension

import (
	"github.com/go-drift/edgeframe/pkg/anchor"
	"github.com/go-drift/edgeframe/pkg/geometry"
	"github.com/go-drift/edgeframe/pkg/view"
)

// Region tracks a rectangle that covers its owning view and may extend
// selected edges outward to the owner's reference container.
//
// The region holds two parallel constraint quadruples: one binding each edge
// to the owner's own bounds, one binding each edge to the current reference
// container. For every edge exactly one of the two is active at any instant.
// Container anchors are rebuilt whenever the container identity changes;
// owner anchors are built once and never change, since the owner's own
// bounds are a stable reference frame for the region's whole life.
type Region struct {
	owner  *view.View // non-owning back reference; the view owns the region
	system *anchor.System
	frame  *anchor.Frame
	target Target

	extendedEdges    geometry.EdgeSet
	ownerAnchors     [4]*anchor.Constraint // indexed by geometry.Edge
	containerAnchors [4]*anchor.Constraint // indexed by geometry.Edge; nil when no container
	container        *view.View            // identity containerAnchors were built against

	cancelAttach      func()
	onContainerChange []func(*view.View)
	disposed          bool
}

// newRegion builds the region for a view, subscribes it to attachment
// events, and runs the initial recompute.
func newRegion(owner *view.View, system *anchor.System, source AttachmentEventSource, target Target) *Region {
	r := &Region{
		owner:  owner,
		system: system,
		target: target,
	}
	r.frame = system.NewFrame(owner)
	r.cancelAttach = source.Subscribe(owner, r.onAttachChanged)
	r.recompute()
	return r
}

// Frame returns the constraint frame the region maintains.
func (r *Region) Frame() *anchor.Frame {
	return r.frame
}

// Owner returns the view this region belongs to.
func (r *Region) Owner() *view.View {
	return r.owner
}

// ExtendedEdges returns the current edge-extension set. Always equal to the
// last value set.
func (r *Region) ExtendedEdges() geometry.EdgeSet {
	return r.extendedEdges
}

// SetExtendedEdges replaces the edge-extension set. No-op when identical to
// the current value.
func (r *Region) SetExtendedEdges(edges geometry.EdgeSet) {
	if edges == r.extendedEdges {
		return
	}
	r.extendedEdges = edges
	r.recompute()
}

// Container returns the reference container the region currently anchors
// against, or nil when none is known.
func (r *Region) Container() *view.View {
	return r.container
}

// ExtensionTarget returns the configured extension target.
func (r *Region) ExtensionTarget() Target {
	return r.target
}

// SetExtensionTarget switches between the container and root extension
// variants. No-op when unchanged.
func (r *Region) SetExtensionTarget(t Target) {
	if t == r.target {
		return
	}
	r.target = t
	r.recompute()
}

// OnContainerChange registers a callback invoked whenever the reference
// container identity changes, including changes to nil. The separator region
// uses this to stay positioned against whichever container the extension
// region currently uses.
func (r *Region) OnContainerChange(fn func(*view.View)) {
	if fn != nil {
		r.onContainerChange = append(r.onContainerChange, fn)
	}
}

// onAttachChanged handles an attachment event for the owning view. Safe to
// receive redundantly and after teardown.
func (r *Region) onAttachChanged() {
	if r.disposed {
		return
	}
	r.recompute()
}

// referenceContainer determines the current reference container: the nearest
// ancestor or the transitive root, depending on the configured target. Absent
// when the view is not in a tree.
func (r *Region) referenceContainer() *view.View {
	switch r.target {
	case TargetRoot:
		if root := r.owner.Root(); root != r.owner {
			return root
		}
		return nil
	default:
		return r.owner.Parent()
	}
}

// recompute re-derives the desired constraint state from current inputs.
//
// The per-edge application order is strict: the anchor not chosen is
// deactivated before the chosen one is activated, so no edge is ever bound
// to both reference frames at once, even transiently. Calls that would be
// no-ops are skipped.
func (r *Region) recompute() {
	if r.disposed {
		return
	}
	container := r.referenceContainer()

	if r.ownerAnchors[0] == nil {
		for _, e := range geometry.Edges() {
			r.ownerAnchors[e] = anchor.Equal(r.frame, anchor.EdgeAttr(e), r.owner, anchor.EdgeAttr(e))
		}
	}

	if container != r.container {
		for i, c := range r.containerAnchors {
			if c != nil {
				c.Deactivate()
				r.containerAnchors[i] = nil
			}
		}
		if container != nil {
			for _, e := range geometry.Edges() {
				r.containerAnchors[e] = anchor.Equal(r.frame, anchor.EdgeAttr(e), container, anchor.EdgeAttr(e))
			}
		}
		r.container = container
		for _, fn := range r.onContainerChange {
			fn(container)
		}
	}

	for _, e := range geometry.Edges() {
		chosen := r.ownerAnchors[e]
		other := r.containerAnchors[e]
		if r.extendedEdges.Contains(e) && r.containerAnchors[e] != nil {
			chosen, other = r.containerAnchors[e], r.ownerAnchors[e]
		}
		if other != nil && other.Active() {
			other.Deactivate()
		}
		if !chosen.Active() {
			chosen.Activate()
		}
	}
}

// dispose releases the attachment subscription and removes the region's
// frame from the constraint system. Idempotent.
func (r *Region) dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.cancelAttach != nil {
		r.cancelAttach()
		r.cancelAttach = nil
	}
	r.system.RemoveFrame(r.frame)
	r.onContainerChange = nil
}
