package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessellate/mosaic/pkg/masonry"
)

func testItems(n int) []masonry.Item {
	items := make([]masonry.Item, n)
	for i := range items {
		items[i] = masonry.Item{
			ID:            fmt.Sprintf("item-%d", i),
			NaturalWidth:  400,
			NaturalHeight: 300 + (i%5)*80,
		}
	}
	return items
}

func newTestGrid(loadMore func()) *Grid {
	return New(Options{
		Config: masonry.Config{
			MinColumnWidth:      200,
			Gap:                 10,
			Buffer:              100,
			PaginationThreshold: 500,
		},
		LoadMore: loadMore,
	})
}

func TestGridFirstFrame(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(20))
	g.Resize(800, 600)

	frame := g.Frame()
	require.NotEmpty(t, frame.Layout.Positions)
	require.Equal(t, uint64(1), frame.Version)
	assert.Greater(t, frame.Layout.TotalHeight, 0.0)
	assert.NotEmpty(t, frame.Visible)
}

func TestGridNoTearing(t *testing.T) {
	// Two consecutive frames without input changes must be identical:
	// same version, same visible set, same geometry.
	g := newTestGrid(nil)
	g.SetItems(testItems(40))
	g.Resize(900, 500)
	g.SetScrollTop(300)

	a := g.Frame()
	b := g.Frame()
	require.Equal(t, a.Version, b.Version)
	require.Equal(t, a.Visible, b.Visible)
	require.Equal(t, a.Layout, b.Layout)
	require.Equal(t, a.Viewport, b.Viewport)
}

func TestGridResizeIdempotence(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(10))
	g.Resize(800, 600)
	first := g.Frame()

	// Re-measuring the same width must not produce a new layout version.
	g.Resize(800, 600)
	second := g.Frame()
	assert.Equal(t, first.Version, second.Version)

	// Sub-pixel jitter is below the publish threshold.
	g.Resize(800.4, 600)
	third := g.Frame()
	assert.Equal(t, first.Version, third.Version)

	// A real width change recomputes.
	g.Resize(640, 600)
	fourth := g.Frame()
	assert.Equal(t, first.Version+1, fourth.Version)
}

func TestGridScrollDoesNotRelayout(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(60))
	g.Resize(800, 400)
	first := g.Frame()

	g.SetScrollTop(500)
	second := g.Frame()
	require.Equal(t, first.Version, second.Version)
	require.Equal(t, first.Layout.TotalHeight, second.Layout.TotalHeight)
	assert.NotEqual(t, first.Visible, second.Visible)
}

func TestGridCoalescesBurstsIntoOneRecompute(t *testing.T) {
	g := newTestGrid(nil)

	// A storm of mutations between frames runs the layout engine once.
	g.SetItems(testItems(10))
	g.Resize(500, 400)
	g.Resize(700, 400)
	g.SetItems(testItems(12))
	g.Resize(800, 400)

	frame := g.Frame()
	assert.Equal(t, uint64(1), frame.Version)
}

func TestGridHeightOnlyResizeSkipsRecompute(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(10))
	g.Resize(800, 400)
	first := g.Frame()

	g.Resize(800, 900)
	second := g.Frame()
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, 900.0, second.Viewport.ContainerHeight)
}

func TestGridPagination(t *testing.T) {
	calls := 0
	g := newTestGrid(func() { calls++ })
	g.SetItems(testItems(100))
	g.Resize(400, 400)
	g.Frame()

	// Way above the threshold: quiet.
	g.SetScrollTop(0)
	require.Zero(t, calls)

	// Pin to the bottom: fires.
	g.SetScrollTop(g.MaxScroll())
	assert.Equal(t, 1, calls)

	// Each further qualifying scroll event fires again; the store's
	// is-fetching guard de-duplicates, not the grid.
	g.SetScrollTop(g.MaxScroll() - 1)
	assert.Equal(t, 2, calls)
}

func TestGridConfigChangeRecomputes(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(10))
	g.Resize(800, 400)
	first := g.Frame()

	cfg := g.Config()
	cfg.MinColumnWidth = 400
	g.SetConfig(cfg)
	second := g.Frame()
	require.Equal(t, first.Version+1, second.Version)
	assert.Less(t, second.Layout.ColumnCount, first.Layout.ColumnCount)

	// Setting the identical config schedules nothing.
	g.SetConfig(cfg)
	third := g.Frame()
	assert.Equal(t, second.Version, third.Version)
}

func TestGridUnmeasuredContainerFallback(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(8))

	// No Resize yet: the first paint uses the fallback estimate rather
	// than collapsing to zero-width geometry.
	frame := g.Frame()
	require.NotEmpty(t, frame.Layout.Positions)
	assert.Equal(t, masonry.DefaultColumnCount, frame.Layout.ColumnCount)
}

type capturedPriority struct {
	last []string
}

func (p *capturedPriority) SetPriority(ids []string) { p.last = ids }

func TestGridPublishesPriority(t *testing.T) {
	pub := &capturedPriority{}
	g := New(Options{
		Config:   masonry.Config{MinColumnWidth: 200, Gap: 0, Buffer: 0},
		Priority: pub,
	})
	g.SetItems(testItems(30))
	g.Resize(400, 400)

	frame := g.Frame()
	require.Len(t, pub.last, len(frame.Visible))
	for i, it := range frame.Visible {
		assert.Equal(t, it.ID, pub.last[i])
	}
}

func TestGridHitTest(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(4))
	g.Resize(810, 600)
	frame := g.Frame()

	for id, pos := range frame.Layout.Positions {
		got := g.HitTest(pos.X+pos.Width/2, pos.Y+pos.Height/2)
		require.Equal(t, id, got)
	}
	assert.Empty(t, g.HitTest(-5, -5))
	assert.Empty(t, g.HitTest(0, frame.Layout.TotalHeight+1000))
}

func TestGridClose(t *testing.T) {
	g := newTestGrid(nil)
	g.SetItems(testItems(10))
	g.Resize(800, 400)
	g.Frame()

	g.Close()

	// Mutations after teardown are ignored and frames come back empty.
	g.SetItems(testItems(50))
	frame := g.Frame()
	assert.Empty(t, frame.Visible)
	assert.Empty(t, frame.Layout.Positions)
}
