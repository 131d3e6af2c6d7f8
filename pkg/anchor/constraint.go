package anchor

import "fmt"

// Constraint is a single directional equality: item.attr == target.attr, or
// item.dimension == constant.
//
// Constraints are inert when created. Activate and Deactivate are idempotent
// and only mark the owning system dirty; resolution happens in the system's
// batched Layout pass.
type Constraint struct {
	item     *Frame
	attr     Attribute
	target   Anchor // zero Item for dimension constraints
	constant float64
	active   bool
}

// Equal creates a zero-offset equality constraint binding item's attribute to
// the target's attribute.
func Equal(item *Frame, attr Attribute, target Anchorable, targetAttr Attribute) *Constraint {
	return &Constraint{
		item:   item,
		attr:   attr,
		target: Anchor{Item: target, Attr: targetAttr},
	}
}

// Dimension creates a constraint fixing item's width or height to a constant.
func Dimension(item *Frame, attr Attribute, constant float64) *Constraint {
	return &Constraint{
		item:     item,
		attr:     attr,
		constant: constant,
	}
}

// Item returns the constrained frame.
func (c *Constraint) Item() *Frame {
	return c.item
}

// Attr returns the constrained attribute.
func (c *Constraint) Attr() Attribute {
	return c.attr
}

// Target returns the anchor the item attribute is bound to. The zero Anchor
// for dimension constraints.
func (c *Constraint) Target() Anchor {
	return c.target
}

// Active reports whether the constraint currently participates in layout.
func (c *Constraint) Active() bool {
	return c.active
}

// Activate adds the constraint to its frame's active set. No-op when already
// active or when the frame has been removed from its system.
func (c *Constraint) Activate() {
	if c == nil || c.active || c.item == nil || c.item.removed {
		return
	}
	c.active = true
	c.item.active = append(c.item.active, c)
	c.item.markDirty()
}

// Deactivate removes the constraint from its frame's active set. No-op when
// already inactive.
func (c *Constraint) Deactivate() {
	if c == nil || !c.active {
		return
	}
	c.active = false
	for i, other := range c.item.active {
		if other == c {
			c.item.active = append(c.item.active[:i], c.item.active[i+1:]...)
			break
		}
	}
	c.item.markDirty()
}

func (c *Constraint) String() string {
	if c.target.Item == nil {
		return fmt.Sprintf("%s == %g", c.attr, c.constant)
	}
	return fmt.Sprintf("%s == target.%s", c.attr, c.target.Attr)
}
