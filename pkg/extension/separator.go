package extension

import (
	"github.com/go-drift/edgeframe/pkg/anchor"
	"github.com/go-drift/edgeframe/pkg/geometry"
	"github.com/go-drift/edgeframe/pkg/view"
)

// Separator tracks a thin stripe flush against one edge of an extension
// region. Thickness is one physical device pixel, fixed for the process.
//
// The separator depends on, but does not own, the region it attaches to. Its
// four constraints are rebuilt wholesale whenever the attached edge or the
// region's reference container changes; the constraints for different edges
// bind different axis pairs, so nothing is reusable across a change.
type Separator struct {
	region       *Region
	system       *anchor.System
	frame        *anchor.Frame
	attachedEdge geometry.Edge
	constraints  [4]*anchor.Constraint
	thickness    float64
	disposed     bool
}

// newSeparator builds the separator for a region, attached to the top edge
// by default.
func newSeparator(region *Region, system *anchor.System) *Separator {
	s := &Separator{
		region:       region,
		system:       system,
		attachedEdge: geometry.EdgeTop,
		thickness:    view.Hairline(),
	}
	s.frame = system.NewFrame(region.Frame())
	region.OnContainerChange(func(*view.View) { s.recompute() })
	s.recompute()
	return s
}

// Frame returns the constraint frame the separator maintains.
func (s *Separator) Frame() *anchor.Frame {
	return s.frame
}

// AttachedEdge returns the edge of the region the separator sits against.
func (s *Separator) AttachedEdge() geometry.Edge {
	return s.attachedEdge
}

// SetAttachedEdge moves the separator to another edge of the region. No-op
// when unchanged.
func (s *Separator) SetAttachedEdge(edge geometry.Edge) {
	if edge == s.attachedEdge {
		return
	}
	s.attachedEdge = edge
	s.recompute()
}

// Thickness returns the separator's fixed thickness.
func (s *Separator) Thickness() float64 {
	return s.thickness
}

// recompute discards all four current constraints and builds the quadruple
// for the attached edge. The separator sits outside the region, flush
// against the named edge.
func (s *Separator) recompute() {
	if s.disposed {
		return
	}
	for i, c := range s.constraints {
		if c != nil {
			c.Deactivate()
			s.constraints[i] = nil
		}
	}

	rf := s.region.Frame()
	switch s.attachedEdge {
	case geometry.EdgeTop:
		s.constraints = [4]*anchor.Constraint{
			anchor.Equal(s.frame, anchor.AttrBottom, rf, anchor.AttrTop),
			anchor.Equal(s.frame, anchor.AttrLeading, rf, anchor.AttrLeading),
			anchor.Equal(s.frame, anchor.AttrTrailing, rf, anchor.AttrTrailing),
			anchor.Dimension(s.frame, anchor.AttrHeight, s.thickness),
		}
	case geometry.EdgeBottom:
		s.constraints = [4]*anchor.Constraint{
			anchor.Equal(s.frame, anchor.AttrTop, rf, anchor.AttrBottom),
			anchor.Equal(s.frame, anchor.AttrLeading, rf, anchor.AttrLeading),
			anchor.Equal(s.frame, anchor.AttrTrailing, rf, anchor.AttrTrailing),
			anchor.Dimension(s.frame, anchor.AttrHeight, s.thickness),
		}
	case geometry.EdgeLeading:
		s.constraints = [4]*anchor.Constraint{
			anchor.Equal(s.frame, anchor.AttrTrailing, rf, anchor.AttrLeading),
			anchor.Equal(s.frame, anchor.AttrTop, rf, anchor.AttrTop),
			anchor.Equal(s.frame, anchor.AttrBottom, rf, anchor.AttrBottom),
			anchor.Dimension(s.frame, anchor.AttrWidth, s.thickness),
		}
	case geometry.EdgeTrailing:
		s.constraints = [4]*anchor.Constraint{
			anchor.Equal(s.frame, anchor.AttrLeading, rf, anchor.AttrTrailing),
			anchor.Equal(s.frame, anchor.AttrTop, rf, anchor.AttrTop),
			anchor.Equal(s.frame, anchor.AttrBottom, rf, anchor.AttrBottom),
			anchor.Dimension(s.frame, anchor.AttrWidth, s.thickness),
		}
	}

	for _, c := range s.constraints {
		c.Activate()
	}
}

// dispose removes the separator's frame from the constraint system.
// Idempotent.
func (s *Separator) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.system.RemoveFrame(s.frame)
}
