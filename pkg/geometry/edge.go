package geometry

import "strings"

// Edge identifies one side of a rectangle.
//
// Leading and Trailing are the horizontal edges in reading order. The engine
// resolves layout left-to-right, so Leading maps to the left coordinate and
// Trailing to the right.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeLeading
	EdgeTrailing
	EdgeBottom
)

// Axis identifies a layout direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	case EdgeBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// Axis returns the axis the edge constrains: Leading/Trailing bound the
// horizontal axis, Top/Bottom the vertical one.
func (e Edge) Axis() Axis {
	if e == EdgeLeading || e == EdgeTrailing {
		return AxisHorizontal
	}
	return AxisVertical
}

// Opposite returns the edge on the other side of the same axis.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeLeading:
		return EdgeTrailing
	case EdgeTrailing:
		return EdgeLeading
	default:
		return EdgeTop
	}
}

// Edges returns all four edges in a stable order.
func Edges() [4]Edge {
	return [4]Edge{EdgeTop, EdgeLeading, EdgeTrailing, EdgeBottom}
}

// EdgeSet is a set of edges stored as a bitmask.
//
// The zero value is the empty set.
type EdgeSet uint8

const (
	// EdgeSetNone is the empty edge set.
	EdgeSetNone EdgeSet = 0
	// EdgeSetAll contains all four edges.
	EdgeSetAll EdgeSet = 1<<4 - 1
)

// NewEdgeSet constructs a set containing the given edges.
func NewEdgeSet(edges ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s = s.Insert(e)
	}
	return s
}

// Contains reports whether the set includes the edge.
func (s EdgeSet) Contains(e Edge) bool {
	return s&(1<<uint(e)) != 0
}

// Insert returns the set with the edge added.
func (s EdgeSet) Insert(e Edge) EdgeSet {
	return s | 1<<uint(e)
}

// Remove returns the set with the edge removed.
func (s EdgeSet) Remove(e Edge) EdgeSet {
	return s &^ (1 << uint(e))
}

// Union returns the set combined with other.
func (s EdgeSet) Union(other EdgeSet) EdgeSet {
	return s | other
}

// IsEmpty reports whether the set contains no edges.
func (s EdgeSet) IsEmpty() bool {
	return s == 0
}

func (s EdgeSet) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	var parts []string
	for _, e := range Edges() {
		if s.Contains(e) {
			parts = append(parts, e.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
