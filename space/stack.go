package space

import (
	"fmt"
	"slices"
)

// stack holds the windows keyed by id plus their z-order. order[0] is the
// topmost window.
type stack struct {
	byID  map[ID]Window
	order []ID
}

func newStack() stack {
	return stack{byID: make(map[ID]Window)}
}

func (s *stack) len() int { return len(s.order) }

func (s *stack) has(id ID) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *stack) get(id ID) (Window, bool) {
	w, ok := s.byID[id]
	return w, ok
}

// push inserts w at the top of the z-order.
func (s *stack) push(w Window) {
	id := w.ID()
	if s.has(id) {
		panic(fmt.Sprintf("space: duplicate window id %d", id))
	}
	s.byID[id] = w
	s.order = slices.Insert(s.order, 0, id)
}

func (s *stack) index(id ID) int {
	return slices.Index(s.order, id)
}

// remove detaches id from the stack and returns the window it held.
func (s *stack) remove(id ID) (Window, error) {
	w, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("remove window %d: %w", id, ErrNotFound)
	}
	i := s.index(id)
	delete(s.byID, id)
	s.order = slices.Delete(s.order, i, i+1)
	return w, nil
}

// raise moves id to index 0 keeping the relative order of the rest.
func (s *stack) raise(id ID) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("raise window %d: %w", id, ErrNotFound)
	}
	copy(s.order[1:i+1], s.order[:i])
	s.order[0] = id
	return nil
}

// snapshot returns a copy of the z-order, topmost first.
func (s *stack) snapshot() []ID {
	return slices.Clone(s.order)
}
