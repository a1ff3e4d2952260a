package grid

import "github.com/tessellate/mosaic/pkg/masonry"

// =============================================================================
// Viewport Controller
// =============================================================================

// widthThreshold is the minimum container width change, in pixels, that
// publishes a new width. Sub-pixel layout jitter in hosts can produce
// alternating measurements half a pixel apart; those must not trigger
// relayout oscillation.
const widthThreshold = 1.0

// Controller owns the numeric viewport state. It has exactly one writer
// (the host's resize and scroll callbacks) and many readers (windowing,
// rendering). All methods must be called from the host's event loop.
type Controller struct {
	state masonry.Viewport

	// fallbackWidth is used when the host reports a zero initial width
	// (container hidden or not laid out yet), so the first paint is not
	// degenerate.
	fallbackWidth float64
}

// NewController creates a viewport controller. fallbackWidth is the
// estimated container width used until a real measurement arrives; pass 0
// to keep the default estimate.
func NewController(fallbackWidth float64) *Controller {
	if fallbackWidth <= 0 {
		fallbackWidth = masonry.DefaultMinColumnWidth * masonry.DefaultColumnCount
	}
	return &Controller{fallbackWidth: fallbackWidth}
}

// State returns the current viewport snapshot.
func (c *Controller) State() masonry.Viewport {
	return c.state
}

// SetSize applies a size measurement and reports whether the published
// width changed. A zero or negative measured width falls back to the
// estimate; width deltas below widthThreshold are ignored. Height updates
// are always applied (they only affect windowing, which is cheap).
func (c *Controller) SetSize(width, height float64) (widthChanged bool) {
	if height < 0 {
		height = 0
	}
	c.state.ContainerHeight = height

	if width <= 0 {
		width = c.fallbackWidth
	}
	if diff := width - c.state.ContainerWidth; diff > -widthThreshold && diff < widthThreshold {
		return false
	}
	c.state.ContainerWidth = width
	return true
}

// SetScrollTop records the scroll position, clamped at 0, and reports
// whether it changed.
func (c *Controller) SetScrollTop(top float64) bool {
	if top < 0 {
		top = 0
	}
	if top == c.state.ScrollTop {
		return false
	}
	c.state.ScrollTop = top
	return true
}

// ScrollBy adjusts the scroll position by delta, clamping to
// [0, maxScroll], and returns the resulting scrollTop.
func (c *Controller) ScrollBy(delta, maxScroll float64) float64 {
	top := c.state.ScrollTop + delta
	if maxScroll < 0 {
		maxScroll = 0
	}
	if top > maxScroll {
		top = maxScroll
	}
	if top < 0 {
		top = 0
	}
	c.state.ScrollTop = top
	return top
}
