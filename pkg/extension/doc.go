// Package extension implements per-edge extension regions for views.
//
// A view either stays clipped to its own bounds or has selected edges extend
// outward to fill an enclosing container, for example to visually reach a
// device's physical screen edge behind safe-area insets. Each of the four
// edges is controlled independently, and a thin separator stripe can be
// attached to one edge of the extended region.
//
// # Model
//
// Every tracked view gets an [Extender] on first access through [For]. The
// extender owns an extension [Region] holding two parallel constraint
// quadruples: one anchoring each edge to the view's own bounds, one to the
// current reference container. For each edge, exactly one of the two is
// active; which one follows the extended-edge set and container availability.
// When no container is known, every edge stays owner-anchored regardless of
// the extension intent.
//
// Container identity is discovered lazily and tracked through an injected
// [AttachmentEventSource]: whenever the view's ancestor chain changes, the
// region re-derives its desired constraint state from current inputs.
// Constraint application always deactivates before activating, so the shared
// constraint system never sees an over-determined dimension, even
// transiently.
//
// # Usage
//
//	ext := extension.For(v)
//	ext.SetExtendedEdges(geometry.NewEdgeSet(geometry.EdgeTop, geometry.EdgeLeading))
//	ext.SetSeparatorEdge(geometry.EdgeBottom)
//
// The embedder runs extension.System().Layout() as part of its layout pass;
// all property mutations are synchronous and complete before returning.
//
// # Threading
//
// All operations are expected on the host framework's single layout/event
// thread. The engine takes no locks of its own beyond registry bookkeeping.
package extension
