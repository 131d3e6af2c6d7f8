package extension

import (
	"github.com/go-drift/edgeframe/pkg/anchor"
	"github.com/go-drift/edgeframe/pkg/errors"
	"github.com/go-drift/edgeframe/pkg/geometry"
	"github.com/go-drift/edgeframe/pkg/view"
)

// Role identifies which region a fixture fills.
type Role int

const (
	// RoleBackground fills the extension region behind the view's content.
	RoleBackground Role = iota
	// RoleSeparator fills the separator stripe.
	RoleSeparator
)

func (r Role) String() string {
	if r == RoleSeparator {
		return "separator"
	}
	return "background"
}

// DefaultSeparatorColor is the translucent color of a default separator
// fixture.
var DefaultSeparatorColor = view.RGBA(60, 60, 67, 0.36)

// Fixture is a passive filler view drawn to exactly fill a region.
//
// Fixtures must be materialized through NewFixture; installing a fixture
// constructed any other way is a programming error and fails fast.
type Fixture struct {
	*view.View
	role        Role
	constructed bool
}

// NewFixture constructs a passive fixture for the given role. Background
// fixtures default to transparent, separator fixtures to the standard
// translucent hairline color.
func NewFixture(role Role) *Fixture {
	f := &Fixture{View: view.New(), role: role, constructed: true}
	switch role {
	case RoleSeparator:
		f.BackgroundColor = DefaultSeparatorColor
	default:
		f.BackgroundColor = view.ColorTransparent
	}
	return f
}

// Role returns the role the fixture currently fills.
func (f *Fixture) Role() Role {
	return f.role
}

// FixtureSlot is a single-slot registry of fixtures per role for one view.
// At most one fixture is installed per role at any time; replacing removes
// exactly the previously installed instance.
type FixtureSlot struct {
	owner   *view.View
	system  *anchor.System
	entries map[Role]*fixtureEntry
}

type fixtureEntry struct {
	fixture *Fixture
	frame   *anchor.Frame
	pins    [4]*anchor.Constraint
}

func newFixtureSlot(owner *view.View, system *anchor.System) *FixtureSlot {
	return &FixtureSlot{
		owner:   owner,
		system:  system,
		entries: make(map[Role]*fixtureEntry),
	}
}

// Get returns the fixture installed for the role, constructing and
// installing a default instance on first access. The governing frame is the
// region the fixture is pinned to.
func (s *FixtureSlot) Get(role Role, governing *anchor.Frame) *Fixture {
	if e, ok := s.entries[role]; ok {
		return e.fixture
	}
	f := NewFixture(role)
	s.install(role, f, governing)
	return f
}

// Set replaces the fixture for the role: the previously installed instance,
// if any, is fully removed before the new one is installed pinned to the
// governing frame's four edges at zero offset. A nil fixture clears the slot.
func (s *FixtureSlot) Set(role Role, fixture *Fixture, governing *anchor.Frame) {
	s.remove(role)
	if fixture == nil {
		return
	}
	s.install(role, fixture, governing)
}

// Installed returns the fixture for the role without creating one, or nil.
func (s *FixtureSlot) Installed(role Role) *Fixture {
	if e, ok := s.entries[role]; ok {
		return e.fixture
	}
	return nil
}

func (s *FixtureSlot) install(role Role, fixture *Fixture, governing *anchor.Frame) {
	if fixture.View == nil || !fixture.constructed {
		err := &errors.FixtureError{Role: role.String(), Got: fixture}
		errors.Report(&errors.FrameError{
			Op:   "extension.FixtureSlot.Set",
			Kind: errors.KindFixture,
			Err:  err,
		})
		panic(err)
	}
	fixture.role = role

	// Backgrounds go behind the owner's content, separators in front.
	if role == RoleBackground {
		s.owner.InsertSubview(fixture.View, 0)
	} else {
		s.owner.AddSubview(fixture.View)
	}

	frame := s.system.NewFrame(fixture.View)
	var pins [4]*anchor.Constraint
	for _, e := range geometry.Edges() {
		pins[e] = anchor.Equal(frame, anchor.EdgeAttr(e), governing, anchor.EdgeAttr(e))
		pins[e].Activate()
	}
	fx := fixture
	frame.OnResolve(func(r geometry.Rect) { fx.SetBounds(r) })

	s.entries[role] = &fixtureEntry{fixture: fixture, frame: frame, pins: pins}
}

func (s *FixtureSlot) remove(role Role) {
	e, ok := s.entries[role]
	if !ok {
		return
	}
	s.system.RemoveFrame(e.frame)
	e.fixture.RemoveFromParent()
	delete(s.entries, role)
}

// dispose removes every installed fixture. Idempotent.
func (s *FixtureSlot) dispose() {
	for role := range s.entries {
		s.remove(role)
	}
}
