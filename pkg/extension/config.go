package extension

import (
	"github.com/go-drift/edgeframe/pkg/anchor"
	"github.com/go-drift/edgeframe/pkg/view"
)

// Target selects which ancestor coordinate space extended edges anchor to.
//
// Both variants are valid design points: TargetContainer extends to the
// nearest structural ancestor, TargetRoot to the transitive root of the view
// tree. The choice is explicit configuration, not guessed.
type Target int

const (
	// TargetContainer anchors extended edges to the view's nearest ancestor.
	TargetContainer Target = iota
	// TargetRoot anchors extended edges to the root of the view's tree.
	TargetRoot
)

func (t Target) String() string {
	if t == TargetRoot {
		return "root"
	}
	return "container"
}

// AttachmentEventSource supplies a notification whenever a tracked view's
// ancestor chain changes, meaning its reference container may have changed
// identity.
//
// Delivery is at-least-once per transition; subscribers must treat each
// delivery as idempotent and tolerate deliveries that correspond to no actual
// container change. The returned cancel function releases the subscription
// and is safe to call more than once.
type AttachmentEventSource interface {
	Subscribe(v *view.View, fn func()) (cancel func())
}

// hierarchyEventSource adapts the view package's attach service to the
// AttachmentEventSource interface. It is the default source.
type hierarchyEventSource struct{}

func (hierarchyEventSource) Subscribe(v *view.View, fn func()) func() {
	return view.AttachEvents.AddHandler(v, fn)
}

// Config carries the process-level collaborators of the extension engine.
type Config struct {
	// System is the shared constraint system regions activate against.
	System *anchor.System
	// Source delivers attachment change notifications.
	Source AttachmentEventSource
	// Target selects the extension target for new regions.
	Target Target
}

var current = defaultConfig()

func defaultConfig() Config {
	return Config{
		System: anchor.NewSystem(),
		Source: hierarchyEventSource{},
		Target: TargetContainer,
	}
}

// Configure installs process-level collaborators. Intended to be called once
// by the composition root before any extender is created; zero fields keep
// their defaults.
func Configure(c Config) {
	if c.System == nil {
		c.System = current.System
	}
	if c.Source == nil {
		c.Source = hierarchyEventSource{}
	}
	current = c
}

// System returns the constraint system in use. The embedder runs
// System().Layout() as part of its layout pass.
func System() *anchor.System {
	return current.System
}
