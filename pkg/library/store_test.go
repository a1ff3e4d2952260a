package library

import (
	"context"
	"errors"
	"testing"

	"github.com/tessellate/mosaic/pkg/masonry"
)

// countingPager hands out pre-built pages and records call counts, so
// tests can observe the is-fetching and exhaustion guards.
type countingPager struct {
	calls int
	pages [][]masonry.Item
	err   error
}

func (p *countingPager) NextPage(_ context.Context, offset, limit int) ([]masonry.Item, bool, error) {
	p.calls++
	if p.err != nil {
		return nil, false, p.err
	}
	page := p.calls - 1
	if page >= len(p.pages) {
		return nil, false, nil
	}
	return p.pages[page], page < len(p.pages)-1, nil
}

func page(prefix string, n int) []masonry.Item {
	items := make([]masonry.Item, n)
	for i := range items {
		items[i] = masonry.Item{ID: prefix + string(rune('a'+i)), NaturalWidth: 100, NaturalHeight: 100}
	}
	return items
}

func TestStoreLoadMoreAppendsInOrder(t *testing.T) {
	pager := &countingPager{pages: [][]masonry.Item{page("p1-", 3), page("p2-", 2)}}
	s := NewStore(pager, 10)
	ctx := context.Background()

	loaded, err := s.LoadMore(ctx)
	if err != nil || !loaded {
		t.Fatalf("first LoadMore = (%v, %v), want (true, nil)", loaded, err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.Exhausted() {
		t.Fatal("store exhausted after first page")
	}

	loaded, err = s.LoadMore(ctx)
	if err != nil || !loaded {
		t.Fatalf("second LoadMore = (%v, %v), want (true, nil)", loaded, err)
	}
	items := s.Items()
	if len(items) != 5 {
		t.Fatalf("Len = %d, want 5", len(items))
	}
	if items[0].ID != "p1-a" || items[4].ID != "p2-b" {
		t.Errorf("page order broken: first=%s last=%s", items[0].ID, items[4].ID)
	}
	if !s.Exhausted() {
		t.Error("store should be exhausted")
	}

	// Further calls are no-ops once exhausted.
	loaded, _ = s.LoadMore(ctx)
	if loaded || pager.calls != 2 {
		t.Errorf("exhausted store still fetched (loaded=%v calls=%d)", loaded, pager.calls)
	}
}

func TestStoreLoadMoreError(t *testing.T) {
	wantErr := errors.New("index offline")
	s := NewStore(&countingPager{err: wantErr}, 10)

	_, err := s.LoadMore(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}

	// A failed fetch re-arms the guard; the next crossing may retry.
	if s.Exhausted() {
		t.Error("error must not mark the store exhausted")
	}
}

func TestStoreVersionTracksChanges(t *testing.T) {
	pager := &countingPager{pages: [][]masonry.Item{page("p1-", 2)}}
	s := NewStore(pager, 10)

	v0 := s.Version()
	_, _ = s.LoadMore(context.Background())
	if s.Version() == v0 {
		t.Error("version should change after an append")
	}

	v1 := s.Version()
	if s.UpdateDimensions("p1-a", 640, 480) != true {
		t.Fatal("UpdateDimensions should apply")
	}
	if s.Version() == v1 {
		t.Error("version should change after a dimension update")
	}

	// Same dimensions again: no change, no version bump.
	v2 := s.Version()
	if s.UpdateDimensions("p1-a", 640, 480) {
		t.Error("identical dimensions should be a no-op")
	}
	if s.Version() != v2 {
		t.Error("no-op update must not bump version")
	}
}

func TestStoreUpdateDimensionsValidation(t *testing.T) {
	s := NewStore(nil, 10)
	s.Replace(page("x-", 1))

	if s.UpdateDimensions("x-a", 0, 100) || s.UpdateDimensions("x-a", 100, -1) {
		t.Error("non-positive dimensions must be rejected")
	}
	if s.UpdateDimensions("missing", 100, 100) {
		t.Error("unknown id must report false")
	}
}

func TestStoreItemsReturnsCopy(t *testing.T) {
	s := NewStore(nil, 10)
	s.Replace(page("x-", 2))

	items := s.Items()
	items[0].ID = "mutated"
	if s.Items()[0].ID != "x-a" {
		t.Error("Items must return an independent copy")
	}
}

func TestSyntheticPagerPaging(t *testing.T) {
	p := NewSyntheticPager(25, 42)

	first, more, err := p.NextPage(context.Background(), 0, 10)
	if err != nil || len(first) != 10 || !more {
		t.Fatalf("NextPage(0,10) = (%d items, more=%v, err=%v)", len(first), more, err)
	}
	last, more, err := p.NextPage(context.Background(), 20, 10)
	if err != nil || len(last) != 5 || more {
		t.Fatalf("NextPage(20,10) = (%d items, more=%v, err=%v)", len(last), more, err)
	}

	// Same seed, same library.
	q := NewSyntheticPager(25, 42)
	qFirst, _, _ := q.NextPage(context.Background(), 0, 10)
	for i := range first {
		if first[i] != qFirst[i] {
			t.Fatalf("seeded generation not deterministic at %d", i)
		}
	}
}
