package extension

import (
	"testing"

	"github.com/go-drift/edgeframe/pkg/errors"
	"github.com/go-drift/edgeframe/pkg/geometry"
	"github.com/go-drift/edgeframe/pkg/view"
)

// TestFixtureSlot_GetCreatesDefault verifies find-or-create semantics and the
// default appearances.
func TestFixtureSlot_GetCreatesDefault(t *testing.T) {
	newTestSystem(t)
	v := view.New()
	ext := For(v)

	bg := ext.BackgroundView()
	if bg == nil {
		t.Fatal("default background fixture should be created")
	}
	if bg.BackgroundColor != view.ColorTransparent {
		t.Errorf("default background color = %08x, want transparent", uint32(bg.BackgroundColor))
	}
	if again := ext.BackgroundView(); again != bg {
		t.Error("repeated access should return the same fixture")
	}
	if bg.Parent() != v {
		t.Error("background fixture should be installed as a child of the view")
	}

	sep := ext.Separator()
	if sep.BackgroundColor != DefaultSeparatorColor {
		t.Errorf("default separator color = %08x", uint32(sep.BackgroundColor))
	}
	if sep.Role() != RoleSeparator {
		t.Errorf("separator role = %v", sep.Role())
	}
}

// TestFixtureSlot_SingleSlotReplace verifies replace removes exactly the
// previous instance and never leaves duplicates.
func TestFixtureSlot_SingleSlotReplace(t *testing.T) {
	newTestSystem(t)
	v := view.New()
	ext := For(v)

	f1 := NewFixture(RoleBackground)
	f2 := NewFixture(RoleBackground)
	ext.SetBackgroundView(f1)
	ext.SetBackgroundView(f2)

	if f1.Parent() != nil {
		t.Error("replaced fixture should be fully removed")
	}
	if f2.Parent() != v {
		t.Error("new fixture should be installed")
	}
	if got := ext.BackgroundView(); got != f2 {
		t.Error("slot should hold the replacement")
	}

	installed := 0
	for _, sub := range v.Subviews() {
		if sub == f1.View || sub == f2.View {
			installed++
		}
	}
	if installed != 1 {
		t.Errorf("%d fixture views installed, want exactly 1", installed)
	}
}

// TestFixtureSlot_BackgroundBehindContent verifies backgrounds install behind
// existing children.
func TestFixtureSlot_BackgroundBehindContent(t *testing.T) {
	newTestSystem(t)
	v := view.New()
	content := view.New()
	v.AddSubview(content)

	bg := For(v).BackgroundView()

	subs := v.Subviews()
	if len(subs) != 2 || subs[0] != bg.View {
		t.Error("background fixture should sit behind content")
	}
}

// TestFixture_RequiredConstructionPath verifies installing a fixture that
// bypassed NewFixture fails fast.
func TestFixture_RequiredConstructionPath(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	newTestSystem(t)
	v := view.New()
	ext := For(v)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("installing an unconstructed fixture should panic")
		}
		if _, ok := r.(*errors.FixtureError); !ok {
			t.Fatalf("panic value = %T, want *errors.FixtureError", r)
		}
		if len(capture.errs) != 1 || capture.errs[0].Kind != errors.KindFixture {
			t.Error("misuse should be reported before panicking")
		}
	}()
	ext.SetBackgroundView(&Fixture{})
}

// TestFixture_PinnedToGoverningRegion verifies fixtures resolve to exactly
// the rect of the region they fill.
func TestFixture_PinnedToGoverningRegion(t *testing.T) {
	sys := newTestSystem(t)
	container := view.New()
	container.SetBounds(geometry.RectFromLTWH(0, 0, 400, 800))
	v := view.New()
	v.SetBounds(geometry.Rect{Left: 20, Top: 40, Right: 380, Bottom: 760})
	container.AddSubview(v)

	ext := For(v)
	ext.SetExtendedEdges(geometry.NewEdgeSet(geometry.EdgeTop))
	bg := ext.BackgroundView()
	sep := ext.Separator()
	sys.Layout()

	regionRect := ext.Region().Frame().Rect()
	if bg.Bounds() != regionRect {
		t.Errorf("background bounds = %+v, want region rect %+v", bg.Bounds(), regionRect)
	}
	sepRect := ext.separator.frame.Rect()
	if sep.Bounds() != sepRect {
		t.Errorf("separator bounds = %+v, want separator rect %+v", sep.Bounds(), sepRect)
	}
}

// TestFixture_SetMarksRole verifies Set marks the incoming fixture with the
// slot's role.
func TestFixture_SetMarksRole(t *testing.T) {
	newTestSystem(t)
	v := view.New()
	ext := For(v)

	f := NewFixture(RoleBackground)
	ext.SetSeparator(f)

	if f.Role() != RoleSeparator {
		t.Errorf("role = %v, want separator", f.Role())
	}
	if got := ext.Separator(); got != f {
		t.Error("separator slot should hold the fixture")
	}
}

// TestFixture_SetNilClearsSlot verifies clearing leaves no installed fixture.
func TestFixture_SetNilClearsSlot(t *testing.T) {
	newTestSystem(t)
	v := view.New()
	ext := For(v)

	f := ext.BackgroundView()
	ext.SetBackgroundView(nil)

	if f.Parent() != nil {
		t.Error("cleared fixture should be removed from the view")
	}
	if got := ext.slots.Installed(RoleBackground); got != nil {
		t.Error("slot should be empty after clearing")
	}
}
