package view

import (
	"testing"

	"github.com/go-drift/edgeframe/pkg/errors"
	"github.com/go-drift/edgeframe/pkg/geometry"
)

// TestView_AddSubview verifies parent/child wiring.
func TestView_AddSubview(t *testing.T) {
	parent := New()
	child := New()

	parent.AddSubview(child)

	if child.Parent() != parent {
		t.Error("child parent not set")
	}
	if subs := parent.Subviews(); len(subs) != 1 || subs[0] != child {
		t.Errorf("subviews = %v", subs)
	}
}

// TestView_AddSubview_Reparents verifies that adding a child detaches it from
// its previous parent first.
func TestView_AddSubview_Reparents(t *testing.T) {
	a := New()
	b := New()
	child := New()

	a.AddSubview(child)
	b.AddSubview(child)

	if child.Parent() != b {
		t.Error("child should belong to b")
	}
	if len(a.Subviews()) != 0 {
		t.Error("a should have no subviews")
	}
}

// TestView_InsertSubview_Index verifies ordering and index clamping.
func TestView_InsertSubview_Index(t *testing.T) {
	parent := New()
	first := New()
	second := New()
	front := New()

	parent.AddSubview(first)
	parent.AddSubview(second)
	parent.InsertSubview(front, 0)

	subs := parent.Subviews()
	if len(subs) != 3 || subs[0] != front || subs[1] != first || subs[2] != second {
		t.Errorf("unexpected order: %v", subs)
	}

	clamped := New()
	parent.InsertSubview(clamped, 99)
	if subs := parent.Subviews(); subs[len(subs)-1] != clamped {
		t.Error("out-of-range index should clamp to append")
	}
}

// TestView_Root verifies root resolution for attached and detached views.
func TestView_Root(t *testing.T) {
	root := New()
	mid := New()
	leaf := New()
	root.AddSubview(mid)
	mid.AddSubview(leaf)

	if leaf.Root() != root {
		t.Error("leaf root should be the tree root")
	}
	if root.Root() != root {
		t.Error("a detached view is its own root")
	}
	if !leaf.IsDescendantOf(root) {
		t.Error("leaf should descend from root")
	}
	if root.IsDescendantOf(leaf) {
		t.Error("root should not descend from leaf")
	}
}

// TestView_RemoveFromParent verifies detach and its no-op when already
// detached.
func TestView_RemoveFromParent(t *testing.T) {
	parent := New()
	child := New()
	parent.AddSubview(child)

	child.RemoveFromParent()
	if child.Parent() != nil {
		t.Error("child should be detached")
	}

	// Already detached - must not panic or notify.
	child.RemoveFromParent()
}

// TestView_Dispose verifies hooks run once and the subtree is torn down.
func TestView_Dispose(t *testing.T) {
	parent := New()
	child := New()
	parent.AddSubview(child)

	hookRuns := 0
	parent.OnDispose(func() { hookRuns++ })

	parent.Dispose()
	parent.Dispose()

	if hookRuns != 1 {
		t.Errorf("dispose hook ran %d times, want 1", hookRuns)
	}
	if !parent.Disposed() || !child.Disposed() {
		t.Error("parent and subtree should be disposed")
	}
}

// TestView_Bounds verifies bounds round-trip and the anchor rect view.
func TestView_Bounds(t *testing.T) {
	v := New()
	r := geometry.RectFromLTWH(10, 20, 300, 400)
	v.SetBounds(r)

	if v.Bounds() != r {
		t.Errorf("bounds = %+v", v.Bounds())
	}
	if v.AnchorRect() != r {
		t.Errorf("anchor rect = %+v", v.AnchorRect())
	}
}

// TestAttachService_NotifiesOnAttach verifies handlers fire once per settled
// transition, for the moved view and its descendants.
func TestAttachService_NotifiesOnAttach(t *testing.T) {
	parent := New()
	child := New()
	grandchild := New()
	child.AddSubview(grandchild)

	childEvents := 0
	grandchildEvents := 0
	removeChild := AttachEvents.AddHandler(child, func() { childEvents++ })
	defer removeChild()
	removeGrandchild := AttachEvents.AddHandler(grandchild, func() { grandchildEvents++ })
	defer removeGrandchild()

	parent.AddSubview(child)

	if childEvents != 1 {
		t.Errorf("child events = %d, want 1", childEvents)
	}
	if grandchildEvents != 1 {
		t.Errorf("grandchild events = %d, want 1 (ancestor chain changed)", grandchildEvents)
	}

	child.RemoveFromParent()
	if childEvents != 2 {
		t.Errorf("child events after detach = %d, want 2", childEvents)
	}
}

// TestAttachService_HandlerSeesSettledState verifies the notification fires
// after the transition has fully completed.
func TestAttachService_HandlerSeesSettledState(t *testing.T) {
	parent := New()
	child := New()

	var seenParent *View
	remove := AttachEvents.AddHandler(child, func() { seenParent = child.Parent() })
	defer remove()

	parent.AddSubview(child)

	if seenParent != parent {
		t.Error("handler should observe the new parent already in place")
	}
}

// TestAttachService_RemoveHandler verifies removal is exact and idempotent.
func TestAttachService_RemoveHandler(t *testing.T) {
	parent := New()
	child := New()

	calls := 0
	remove := AttachEvents.AddHandler(child, func() { calls++ })
	remove()
	remove()

	parent.AddSubview(child)
	if calls != 0 {
		t.Errorf("removed handler fired %d times", calls)
	}
}

// TestAttachService_DisposeDropsHandlers verifies disposing a view drops its
// handlers.
func TestAttachService_DisposeDropsHandlers(t *testing.T) {
	parent := New()
	child := New()

	calls := 0
	AttachEvents.AddHandler(child, func() { calls++ })
	child.Dispose()

	parent.AddSubview(child)
	if calls != 0 {
		t.Errorf("handler fired %d times after dispose", calls)
	}
}

// TestColor_Components verifies the ARGB helpers.
func TestColor_Components(t *testing.T) {
	c := RGBA(60, 60, 67, 0.36)
	if a := c.Alpha(); a < 0.35 || a > 0.37 {
		t.Errorf("alpha = %g", a)
	}
	if RGB(1, 2, 3) != Color(0xFF010203) {
		t.Errorf("RGB packed wrong: %08x", uint32(RGB(1, 2, 3)))
	}
	if ColorTransparent.Alpha() != 0 {
		t.Error("transparent should have zero alpha")
	}
	if got := RGB(9, 9, 9).WithAlpha(0); got.Alpha() != 0 {
		t.Errorf("WithAlpha(0) alpha = %g", got.Alpha())
	}
}

// TestHairline_FixedForProcess verifies the hairline latches on first use
// and that a late scale change is rejected and reported.
func TestHairline_FixedForProcess(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	first := Hairline()
	SetDisplayScale(3)

	if got := Hairline(); got != first {
		t.Errorf("hairline changed after latch: %g -> %g", first, got)
	}
	if len(capture.errs) != 1 {
		t.Errorf("late SetDisplayScale reported %d errors, want 1", len(capture.errs))
	}
}

// captureHandler records reported errors for assertions.
type captureHandler struct {
	errs   []*errors.FrameError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.FrameError) {
	h.errs = append(h.errs, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}
