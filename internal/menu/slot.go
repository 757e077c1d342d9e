package menu

import "sync/atomic"

var empty = &Model{}

// Slot is the single published location of a menu. Publishing swaps the
// whole model, so readers see either the previous or the new model, never a
// partial one.
//
// A model built during a host cycle is staged first and only published
// when the cycle commits, so an aborted cycle never leaves its menu behind.
type Slot struct {
	current   atomic.Pointer[Model]
	staged    atomic.Pointer[Model]
	published atomic.Uint64
}

// Publish replaces the current model. A nil model publishes an empty menu.
func (s *Slot) Publish(m *Model) {
	if m == nil {
		m = empty
	}
	s.current.Store(m)
	s.published.Add(1)
}

// Stage holds m until Commit or Discard. A later Stage replaces it.
func (s *Slot) Stage(m *Model) {
	if m == nil {
		m = empty
	}
	s.staged.Store(m)
}

// Commit publishes the staged model, if any, and reports whether it did.
func (s *Slot) Commit() bool {
	m := s.staged.Swap(nil)
	if m == nil {
		return false
	}
	s.Publish(m)
	return true
}

// Discard drops the staged model.
func (s *Slot) Discard() { s.staged.Store(nil) }

// Load returns the current model; an empty model before the first Publish.
func (s *Slot) Load() *Model {
	if m := s.current.Load(); m != nil {
		return m
	}
	return empty
}

// Generation returns how many times the slot has been published.
func (s *Slot) Generation() uint64 {
	return s.published.Load()
}
