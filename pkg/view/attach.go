package view

import "sync"

// AttachEvents delivers "ancestor chain changed" notifications for tracked
// views. The view tree calls Notify after an attach/detach transition has
// fully settled; subscribers must tolerate redundant deliveries.
var AttachEvents = &AttachService{}

// AttachService manages per-view attachment change handlers.
//
// It is the in-process implementation of the engine's attachment event
// source. A composition root wires it into the extension package once per
// process; nothing here patches framework behavior ambiently.
type AttachService struct {
	mu       sync.Mutex
	handlers map[*View][]*attachHandler
}

type attachHandler struct {
	fn func()
}

// AddHandler registers a handler to be called whenever the view's ancestor
// chain changes. Returns a function that removes the handler.
func (s *AttachService) AddHandler(v *View, handler func()) func() {
	if v == nil || handler == nil {
		return func() {}
	}
	entry := &attachHandler{fn: handler}

	s.mu.Lock()
	if s.handlers == nil {
		s.handlers = make(map[*View][]*attachHandler)
	}
	s.handlers[v] = append(s.handlers[v], entry)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.handlers[v]
		for i, h := range list {
			if h == entry {
				s.handlers[v] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(s.handlers[v]) == 0 {
			delete(s.handlers, v)
		}
	}
}

// Notify calls every handler registered for the view. Safe to call for views
// with no handlers and safe to call redundantly.
func (s *AttachService) Notify(v *View) {
	s.mu.Lock()
	list := s.handlers[v]
	handlers := make([]*attachHandler, len(list))
	copy(handlers, list)
	s.mu.Unlock()

	for _, h := range handlers {
		h.fn()
	}
}

// removeAll drops every handler for a disposed view.
func (s *AttachService) removeAll(v *View) {
	s.mu.Lock()
	delete(s.handlers, v)
	s.mu.Unlock()
}
