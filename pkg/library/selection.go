package library

import "sync"

// Selection is the selection store: a set of item ids with the
// click-interaction semantics of the browser. The grid reads it for
// highlighting and invokes Toggle on item interaction, but the state is
// owned here.
type Selection struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle applies a click on id. A plain click (additive=false) replaces
// the selection with just this item; a modifier click (additive=true)
// toggles the item's membership and leaves the rest alone.
func (s *Selection) Toggle(id string, additive bool) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !additive {
		for k := range s.ids {
			delete(s.ids, k)
		}
		s.ids[id] = struct{}{}
		return
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// Selected reports whether id is selected.
func (s *Selection) Selected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected items.
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the selected ids in unspecified order.
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.ids {
		delete(s.ids, k)
	}
}
