// Package anchor provides the directional constraint layer the edge-extension
// engine is built on: per-rectangle frames, edge anchors, independently
// activatable equality constraints, and a batched resolution pass.
//
// The package deliberately stops far short of a general constraint solver.
// Every frame is determined axis by axis from at most three inputs (min edge,
// max edge, dimension); anything beyond that is reported as misuse rather
// than solved.
package anchor

import "github.com/go-drift/edgeframe/pkg/geometry"

// Attribute identifies a constrainable aspect of a rectangle.
type Attribute int

const (
	AttrTop Attribute = iota
	AttrLeading
	AttrTrailing
	AttrBottom
	AttrWidth
	AttrHeight
)

func (a Attribute) String() string {
	switch a {
	case AttrTop:
		return "top"
	case AttrLeading:
		return "leading"
	case AttrTrailing:
		return "trailing"
	case AttrBottom:
		return "bottom"
	case AttrWidth:
		return "width"
	case AttrHeight:
		return "height"
	default:
		return "invalid"
	}
}

// EdgeAttr returns the attribute for a rectangle edge.
func EdgeAttr(e geometry.Edge) Attribute {
	switch e {
	case geometry.EdgeTop:
		return AttrTop
	case geometry.EdgeLeading:
		return AttrLeading
	case geometry.EdgeTrailing:
		return AttrTrailing
	default:
		return AttrBottom
	}
}

// attrEdge returns the rectangle edge for an edge attribute.
// Only valid for the four edge attributes.
func attrEdge(a Attribute) geometry.Edge {
	switch a {
	case AttrTop:
		return geometry.EdgeTop
	case AttrLeading:
		return geometry.EdgeLeading
	case AttrTrailing:
		return geometry.EdgeTrailing
	default:
		return geometry.EdgeBottom
	}
}

// Anchorable is anything that exposes a rectangle usable as an anchoring
// reference frame: views and frames both qualify.
type Anchorable interface {
	AnchorRect() geometry.Rect
}

// Anchor names one attribute of an anchorable rectangle.
type Anchor struct {
	Item Anchorable
	Attr Attribute
}
