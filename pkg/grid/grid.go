package grid

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tessellate/mosaic/pkg/masonry"
	"github.com/tessellate/mosaic/pkg/observability"
)

// =============================================================================
// Options & Frame
// =============================================================================

// Publisher receives the ids of items inside the current render window.
// The library's priority set implements it so external loaders can fetch
// on-screen thumbnails first.
type Publisher interface {
	SetPriority(ids []string)
}

// Options configures a Grid.
type Options struct {
	// Config holds the layout parameters. Zero values are replaced with
	// defaults via Normalize.
	Config masonry.Config

	// FallbackWidth is the estimated container width used before the
	// first real measurement. 0 keeps the package default.
	FallbackWidth float64

	// LoadMore is invoked when scrolling approaches the bottom edge.
	// The item-list owner is responsible for de-duplicating in-flight
	// fetches; the grid fires on every qualifying scroll event.
	LoadMore func()

	// Priority, when non-nil, receives visible item ids each frame.
	Priority Publisher

	// Logger receives debug output for recomputes. Nil uses log.Default.
	Logger *log.Logger
}

// Frame is one consistent rendering pass: the layout Result, the viewport
// it was windowed against, and the visible subsequence - all derived from
// the same layout version, never mixed across versions.
type Frame struct {
	// Version increments on every layout recompute. Frames produced
	// between recomputes share a version.
	Version uint64

	Layout   masonry.Result
	Viewport masonry.Viewport
	Visible  []masonry.Item
}

// =============================================================================
// Grid
// =============================================================================

// layoutKey is the memoization key for layout recomputation. A recompute
// with an unchanged key reuses the previous Result.
type layoutKey struct {
	itemsVersion uint64
	columnCount  int
	width        float64
	gap          float64
}

// Grid glues the pure layout core to a scrolling host. It owns the
// viewport state, the frame-coalesced recompute schedule, the layout memo,
// and the pagination trigger.
//
// All methods must be called from the host's event loop; see the package
// documentation for the concurrency contract.
type Grid struct {
	cfg        masonry.Config
	controller *Controller
	scheduler  *Scheduler
	trigger    *Trigger
	priority   Publisher
	logger     *log.Logger

	items        []masonry.Item
	itemsVersion uint64

	layout    masonry.Result
	layoutKey layoutKey
	version   uint64
	closed    bool
}

// New creates a grid with no items and an unmeasured viewport.
func New(opts Options) *Grid {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config.Normalize()

	g := &Grid{
		cfg:        cfg,
		controller: NewController(opts.FallbackWidth),
		trigger:    &Trigger{Threshold: cfg.PaginationThreshold, LoadMore: opts.LoadMore},
		priority:   opts.Priority,
		logger:     logger,
		layout:     masonry.Result{Positions: map[string]masonry.Position{}},
	}
	g.scheduler = NewScheduler(g.recompute)
	return g
}

// Config returns the active layout parameters.
func (g *Grid) Config() masonry.Config {
	return g.cfg
}

// Viewport returns the current viewport snapshot.
func (g *Grid) Viewport() masonry.Viewport {
	return g.controller.State()
}

// Layout returns the most recently computed layout Result. Callers must
// treat it as immutable.
func (g *Grid) Layout() masonry.Result {
	return g.layout
}

// SetItems replaces the ordered item list. The grid does not copy the
// slice; the owner must hand over a fresh slice per update rather than
// mutating a shared one.
func (g *Grid) SetItems(items []masonry.Item) {
	g.items = items
	g.itemsVersion++
	g.scheduler.Request()
}

// SetConfig replaces the layout parameters. An unchanged config schedules
// nothing.
func (g *Grid) SetConfig(cfg masonry.Config) {
	cfg = cfg.Normalize()
	if cfg == g.cfg {
		return
	}
	g.cfg = cfg
	g.trigger.Threshold = cfg.PaginationThreshold
	g.scheduler.Request()
}

// Resize applies a container measurement. Width changes past the jitter
// threshold schedule a recompute; height-only changes do not, since height
// affects only windowing.
func (g *Grid) Resize(width, height float64) {
	if g.controller.SetSize(width, height) {
		g.scheduler.Request()
	}
}

// SetScrollTop records an absolute scroll position and evaluates the
// pagination trigger. Scrolling never schedules a layout recompute.
func (g *Grid) SetScrollTop(top float64) {
	if g.controller.SetScrollTop(top) {
		g.checkPagination()
	}
}

// ScrollBy adjusts the scroll position by delta, clamped to the content
// extent, and evaluates the pagination trigger.
func (g *Grid) ScrollBy(delta float64) {
	vp := g.controller.State()
	g.controller.ScrollBy(delta, g.layout.TotalHeight-vp.ContainerHeight)
	g.checkPagination()
}

// MaxScroll returns the largest useful scrollTop for the current layout.
func (g *Grid) MaxScroll() float64 {
	m := g.layout.TotalHeight - g.controller.State().ContainerHeight
	if m < 0 {
		return 0
	}
	return m
}

// Frame produces one consistent rendering pass: any pending recompute runs
// first, then the visible set is derived from that same layout. Without
// input changes, consecutive frames are identical.
func (g *Grid) Frame() Frame {
	if g.closed {
		return Frame{Layout: masonry.Result{Positions: map[string]masonry.Position{}}}
	}
	g.scheduler.Flush()

	vp := g.controller.State()
	visible := masonry.Visible(g.items, g.layout, vp, g.cfg.Buffer)
	observability.Window().OnWindow(len(visible), len(g.items))

	if g.priority != nil {
		ids := make([]string, len(visible))
		for i, it := range visible {
			ids[i] = it.ID
		}
		g.priority.SetPriority(ids)
	}

	return Frame{
		Version:  g.version,
		Layout:   g.layout,
		Viewport: vp,
		Visible:  visible,
	}
}

// HitTest maps a point in content coordinates (x across the grid, y down
// the full scroll extent) to the id of the item placed there. It returns
// "" when the point lands in a gap or past the content.
func (g *Grid) HitTest(x, y float64) string {
	for id, pos := range g.layout.Positions {
		if x >= pos.X && x < pos.X+pos.Width && y >= pos.Y && y < pos.Y+pos.Height {
			return id
		}
	}
	return ""
}

// Close tears the grid down: the pending recompute (if any) is cancelled
// and later requests are ignored. Frames after Close are empty.
func (g *Grid) Close() {
	g.scheduler.Cancel()
	g.closed = true
}

// recompute runs the layout pass, reusing the previous Result when the
// memo key (items version, column count, width, gap) is unchanged.
func (g *Grid) recompute() {
	vp := g.controller.State()
	cols := masonry.ColumnCount(vp.ContainerWidth, g.cfg.MinColumnWidth, g.cfg.Gap)
	width := vp.ContainerWidth
	if width <= 0 {
		// Unmeasured container: lay out against the fallback estimate so
		// the first paint has geometry.
		width = g.controller.fallbackWidth
	}

	key := layoutKey{
		itemsVersion: g.itemsVersion,
		columnCount:  cols,
		width:        width,
		gap:          g.cfg.Gap,
	}
	if key == g.layoutKey && g.version > 0 {
		observability.Layout().OnLayoutMemoHit(len(g.items))
		return
	}

	observability.Layout().OnLayoutStart(len(g.items), cols)
	start := time.Now()
	g.layout = masonry.Layout(g.items, cols, width, g.cfg.Gap)
	g.layoutKey = key
	g.version++
	elapsed := time.Since(start)
	observability.Layout().OnLayoutComplete(len(g.items), len(g.layout.Positions), elapsed)

	g.logger.Debug("layout recomputed",
		"version", g.version,
		"items", len(g.items),
		"positioned", len(g.layout.Positions),
		"columns", cols,
		"totalHeight", g.layout.TotalHeight,
		"duration", elapsed)
}

// checkPagination evaluates the near-bottom trigger against the current
// layout extent.
func (g *Grid) checkPagination() {
	vp := g.controller.State()
	g.trigger.Check(g.layout.TotalHeight, vp.ScrollTop, vp.ContainerHeight)
}
