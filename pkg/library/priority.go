package library

import "sync"

// PrioritySet holds the ids of items currently inside the render window.
// The grid replaces the set each frame; thumbnail and metadata workers on
// other goroutines read it to fetch on-screen items first. Hence the
// mutex, even though the grid itself is single-threaded.
type PrioritySet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewPrioritySet creates an empty priority set.
func NewPrioritySet() *PrioritySet {
	return &PrioritySet{ids: make(map[string]struct{})}
}

// SetPriority replaces the set with the given ids. It implements the
// grid's Publisher interface.
func (p *PrioritySet) SetPriority(ids []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.ids {
		delete(p.ids, k)
	}
	for _, id := range ids {
		p.ids[id] = struct{}{}
	}
}

// Contains reports whether id is currently prioritized.
func (p *PrioritySet) Contains(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ids[id]
	return ok
}

// IDs returns the prioritized ids in unspecified order.
func (p *PrioritySet) IDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.ids))
	for id := range p.ids {
		out = append(out, id)
	}
	return out
}

// Clear empties the set, e.g. when the viewport unmounts.
func (p *PrioritySet) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.ids {
		delete(p.ids, k)
	}
}
