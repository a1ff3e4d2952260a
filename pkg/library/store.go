package library

import (
	"context"
	"fmt"
	"sync"

	"github.com/tessellate/mosaic/pkg/masonry"
)

// =============================================================================
// Pager - Paged Item Source
// =============================================================================

// Pager supplies ordered pages of items. Implementations are the indexer,
// a manifest file, or the synthetic generator; the store does not care.
type Pager interface {
	// NextPage returns the items starting at offset, at most limit of
	// them, and whether more remain afterwards.
	NextPage(ctx context.Context, offset, limit int) ([]masonry.Item, bool, error)
}

// DefaultPageSize is the number of items fetched per LoadMore request.
const DefaultPageSize = 200

// =============================================================================
// Store - Ordered Item List Owner
// =============================================================================

// Store owns the ordered item list the grid consumes. It models the paged
// library feed: LoadMore appends the next page, and an is-fetching guard
// de-duplicates concurrent requests - the pagination trigger deliberately
// fires on every qualifying scroll event, so the guard lives here.
//
// The store is safe for concurrent use; LoadMore may be called from a
// fetch goroutine while the UI goroutine reads Items.
type Store struct {
	mu        sync.Mutex
	pager     Pager
	pageSize  int
	items     []masonry.Item
	version   uint64
	fetching  bool
	exhausted bool
}

// NewStore creates a store over the given pager. pageSize values below 1
// use DefaultPageSize.
func NewStore(pager Pager, pageSize int) *Store {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Store{pager: pager, pageSize: pageSize}
}

// Items returns the current ordered item list. The returned slice is a
// fresh copy per call, so the grid's "replace, don't mutate" discipline
// holds even while a fetch appends.
func (s *Store) Items() []masonry.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]masonry.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of loaded items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Version increments every time the item list changes. The grid host uses
// it to decide when to push a fresh slice into the grid.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Exhausted reports whether the pager has no further pages.
func (s *Store) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exhausted
}

// LoadMore fetches and appends the next page. Repeat calls while a fetch
// is in flight, or after the source is exhausted, return immediately with
// loaded=false. A completed load re-arms the guard so the next threshold
// crossing fetches again.
func (s *Store) LoadMore(ctx context.Context) (loaded bool, err error) {
	s.mu.Lock()
	if s.fetching || s.exhausted || s.pager == nil {
		s.mu.Unlock()
		return false, nil
	}
	s.fetching = true
	offset := len(s.items)
	s.mu.Unlock()

	page, more, err := s.pager.NextPage(ctx, offset, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false
	if err != nil {
		return false, fmt.Errorf("load page at offset %d: %w", offset, err)
	}
	s.items = append(s.items, page...)
	s.exhausted = !more
	if len(page) > 0 {
		s.version++
	}
	return len(page) > 0, nil
}

// UpdateDimensions resolves the natural size of an already-loaded item,
// e.g. after an asynchronous metadata probe completes. It reports whether
// the item was found and changed; a change bumps the version so the next
// layout pass positions the item.
func (s *Store) UpdateDimensions(id string, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].NaturalWidth == width && s.items[i].NaturalHeight == height {
			return false
		}
		s.items[i].NaturalWidth = width
		s.items[i].NaturalHeight = height
		s.version++
		return true
	}
	return false
}

// Replace swaps the entire item list, e.g. after a sort or filter change
// upstream. The pager offset restarts from the new length.
func (s *Store) Replace(items []masonry.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]masonry.Item, len(items))
	copy(s.items, items)
	s.exhausted = false
	s.version++
}
