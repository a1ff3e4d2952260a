package library

import (
	"context"

	"github.com/tessellate/mosaic/pkg/masonry"
)

// SlicePager serves pages from an in-memory item list. It adapts a fully
// loaded manifest to the paged Store so the browser exercises the same
// pagination path regardless of source.
type SlicePager struct {
	items []masonry.Item
}

// NewSlicePager creates a pager over a copy of items.
func NewSlicePager(items []masonry.Item) *SlicePager {
	out := make([]masonry.Item, len(items))
	copy(out, items)
	return &SlicePager{items: out}
}

// NextPage implements Pager.
func (p *SlicePager) NextPage(_ context.Context, offset, limit int) ([]masonry.Item, bool, error) {
	if offset < 0 || offset >= len(p.items) {
		return nil, false, nil
	}
	end := offset + limit
	if limit < 1 || end > len(p.items) {
		end = len(p.items)
	}
	page := make([]masonry.Item, end-offset)
	copy(page, p.items[offset:end])
	return page, end < len(p.items), nil
}

// Total returns the number of items behind the pager.
func (p *SlicePager) Total() int {
	return len(p.items)
}
