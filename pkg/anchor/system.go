package anchor

import (
	"fmt"

	"github.com/go-drift/edgeframe/pkg/errors"
	"github.com/go-drift/edgeframe/pkg/geometry"
)

// System tracks frames and their active constraints and resolves frame
// rectangles in a batched layout pass.
//
// Activation and deactivation only mark frames dirty; nothing is resolved
// until Layout runs. Clean frames are skipped entirely, so redundant Layout
// calls are cheap no-ops.
type System struct {
	frames      []*Frame
	needsLayout bool
}

// NewSystem constructs an empty constraint system.
func NewSystem() *System {
	return &System{}
}

// NewFrame creates a frame owned by the given anchorable and starts tracking
// it. The owner's rect seeds the frame and remains the fallback for any axis
// the active constraints leave undetermined.
func (s *System) NewFrame(owner Anchorable) *Frame {
	f := &Frame{system: s, owner: owner, dirty: true}
	if owner != nil {
		f.rect = owner.AnchorRect()
	}
	s.frames = append(s.frames, f)
	s.needsLayout = true
	return f
}

// RemoveFrame deactivates the frame's constraints and stops tracking it.
// Frames anchored against the removed frame keep their last resolved values
// until their own constraints are rebuilt.
func (s *System) RemoveFrame(f *Frame) {
	if f == nil || f.removed {
		return
	}
	for _, c := range f.ActiveConstraints() {
		c.Deactivate()
	}
	f.removed = true
	for i, other := range s.frames {
		if other == f {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			break
		}
	}
	s.markDependents(f)
}

// InvalidateAll marks every frame dirty. The embedder calls this after view
// bounds change, since views are layout inputs the system does not observe.
func (s *System) InvalidateAll() {
	for _, f := range s.frames {
		f.dirty = true
	}
	if len(s.frames) > 0 {
		s.needsLayout = true
	}
}

// NeedsLayout reports whether any frame is dirty.
func (s *System) NeedsLayout() bool {
	return s.needsLayout
}

// Layout resolves every dirty frame. Frames anchored against other frames are
// re-resolved as their targets move, so the pass runs to a fixpoint; a
// dependency cycle is reported and abandoned rather than looped on.
func (s *System) Layout() {
	if !s.needsLayout {
		return
	}
	maxPasses := len(s.frames) + 1
	for pass := 0; ; pass++ {
		changed := false
		for _, f := range s.frames {
			if !f.dirty {
				continue
			}
			rect := s.resolve(f)
			f.dirty = false
			if rect != f.rect {
				f.rect = rect
				changed = true
				s.markDependents(f)
				if f.onResolve != nil {
					f.onResolve(rect)
				}
			}
		}
		if !changed {
			break
		}
		if pass >= maxPasses {
			errors.Report(&errors.FrameError{
				Op:   "anchor.System.Layout",
				Kind: errors.KindConstraint,
				Err:  fmt.Errorf("constraint graph did not settle after %d passes (dependency cycle?)", pass+1),
			})
			break
		}
	}
	s.needsLayout = false
}

// markDependents marks dirty every frame with an active constraint targeting
// the given frame.
func (s *System) markDependents(target *Frame) {
	for _, f := range s.frames {
		if f == target || f.dirty {
			continue
		}
		for _, c := range f.active {
			if c.target.Item == Anchorable(target) {
				f.dirty = true
				s.needsLayout = true
				break
			}
		}
	}
}

// resolve computes a frame's rect from its active constraints, axis by axis.
func (s *System) resolve(f *Frame) geometry.Rect {
	var fallback geometry.Rect
	if f.owner != nil {
		fallback = f.owner.AnchorRect()
	}

	left, right := s.resolveAxis(
		s.pick(f, AttrLeading), s.pick(f, AttrTrailing), s.pick(f, AttrWidth),
		fallback.Left, fallback.Right)
	top, bottom := s.resolveAxis(
		s.pick(f, AttrTop), s.pick(f, AttrBottom), s.pick(f, AttrHeight),
		fallback.Top, fallback.Bottom)

	return geometry.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// pick returns the active constraint for an attribute. Two active constraints
// on the same attribute make the dimension over-determined: the engine's
// deactivate-before-activate discipline is supposed to prevent this, so it is
// reported, and the most recently activated constraint wins.
func (s *System) pick(f *Frame, attr Attribute) *Constraint {
	var found *Constraint
	count := 0
	for _, c := range f.active {
		if c.attr == attr {
			found = c
			count++
		}
	}
	if count > 1 {
		errors.Report(&errors.FrameError{
			Op:   "anchor.System.Layout",
			Kind: errors.KindConstraint,
			Err:  fmt.Errorf("over-determined: %d active constraints on %s", count, attr),
		})
	}
	return found
}

// resolveAxis determines one axis from at most a min-edge, max-edge, and
// dimension constraint. Exactly two inputs determine the axis; all three are
// over-determined (the dimension is ignored after reporting); fewer fall back
// to the owner's edges.
func (s *System) resolveAxis(minC, maxC, dimC *Constraint, fbMin, fbMax float64) (float64, float64) {
	switch {
	case minC != nil && maxC != nil:
		if dimC != nil {
			errors.Report(&errors.FrameError{
				Op:   "anchor.System.Layout",
				Kind: errors.KindConstraint,
				Err:  fmt.Errorf("over-determined axis: %s, %s and %s all active", minC.attr, maxC.attr, dimC.attr),
			})
		}
		return s.anchorValue(minC.target), s.anchorValue(maxC.target)
	case minC != nil && dimC != nil:
		v := s.anchorValue(minC.target)
		return v, v + dimC.constant
	case maxC != nil && dimC != nil:
		v := s.anchorValue(maxC.target)
		return v - dimC.constant, v
	case minC != nil:
		return s.anchorValue(minC.target), fbMax
	case maxC != nil:
		return fbMin, s.anchorValue(maxC.target)
	case dimC != nil:
		return fbMin, fbMin + dimC.constant
	default:
		return fbMin, fbMax
	}
}

// anchorValue reads the current coordinate of an anchor.
func (s *System) anchorValue(a Anchor) float64 {
	if a.Item == nil {
		return 0
	}
	return a.Item.AnchorRect().Edge(attrEdge(a.Attr))
}
