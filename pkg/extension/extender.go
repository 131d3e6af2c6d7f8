package extension

import (
	"sync"

	"github.com/go-drift/edgeframe/pkg/geometry"
	"github.com/go-drift/edgeframe/pkg/view"
)

var (
	registryMu sync.Mutex
	registry   = make(map[*view.View]*Extender)
)

// For returns the extender for a view, creating it on first access. Repeated
// calls return the same instance. The extender lives exactly as long as the
// view: disposing the view tears the extender down and releases its
// attachment subscription.
func For(v *view.View) *Extender {
	registryMu.Lock()
	defer registryMu.Unlock()
	if e, ok := registry[v]; ok {
		return e
	}
	e := newExtender(v)
	registry[v] = e
	v.OnDispose(func() {
		registryMu.Lock()
		delete(registry, v)
		registryMu.Unlock()
		e.dispose()
	})
	return e
}

// Extender is the per-view surface of the edge-extension engine. It composes
// the extension region, separator region, and fixture slots behind the four
// public properties consumers use.
type Extender struct {
	view      *view.View
	region    *Region
	separator *Separator // created on first access
	slots     *FixtureSlot
	disposed  bool
}

func newExtender(v *view.View) *Extender {
	cfg := current
	e := &Extender{view: v}
	e.region = newRegion(v, cfg.System, cfg.Source, cfg.Target)
	e.slots = newFixtureSlot(v, cfg.System)
	return e
}

// View returns the tracked view.
func (e *Extender) View() *view.View {
	return e.view
}

// Region returns the extension region.
func (e *Extender) Region() *Region {
	return e.region
}

// ExtendedEdges returns the set of edges extended to the reference
// container. Default empty: the view stays clipped to its own bounds.
func (e *Extender) ExtendedEdges() geometry.EdgeSet {
	return e.region.ExtendedEdges()
}

// SetExtendedEdges replaces the extended edge set.
func (e *Extender) SetExtendedEdges(edges geometry.EdgeSet) {
	e.region.SetExtendedEdges(edges)
}

// BackgroundView returns the background fixture, creating a default
// transparent one on first access.
func (e *Extender) BackgroundView() *Fixture {
	return e.slots.Get(RoleBackground, e.region.Frame())
}

// SetBackgroundView replaces the background fixture. The previous fixture is
// fully removed; the new one is pinned to the extension region.
func (e *Extender) SetBackgroundView(f *Fixture) {
	e.slots.Set(RoleBackground, f, e.region.Frame())
}

// ensureSeparator lazily creates the separator region.
func (e *Extender) ensureSeparator() *Separator {
	if e.separator == nil {
		e.separator = newSeparator(e.region, current.System)
	}
	return e.separator
}

// SeparatorEdge returns the edge the separator is attached to. Default Top.
func (e *Extender) SeparatorEdge() geometry.Edge {
	return e.ensureSeparator().AttachedEdge()
}

// SetSeparatorEdge attaches the separator to another edge of the extension
// region. Setting the edge also ensures a separator fixture exists.
func (e *Extender) SetSeparatorEdge(edge geometry.Edge) {
	sep := e.ensureSeparator()
	sep.SetAttachedEdge(edge)
	e.slots.Get(RoleSeparator, sep.Frame())
}

// Separator returns the separator fixture, creating a default translucent
// hairline one on first access.
func (e *Extender) Separator() *Fixture {
	return e.slots.Get(RoleSeparator, e.ensureSeparator().Frame())
}

// SetSeparator replaces the separator fixture. The previous fixture is fully
// removed; the new one is pinned to the separator region.
func (e *Extender) SetSeparator(f *Fixture) {
	e.slots.Set(RoleSeparator, f, e.ensureSeparator().Frame())
}

// dispose tears down the regions and fixtures. Idempotent; attachment
// events received afterwards are no-ops.
func (e *Extender) dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.slots.dispose()
	if e.separator != nil {
		e.separator.dispose()
	}
	e.region.dispose()
}
