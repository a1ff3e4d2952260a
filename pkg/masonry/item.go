package masonry

// =============================================================================
// Item - Externally Owned Media Entry
// =============================================================================

// Kind classifies a media item. The layout core ignores it; renderers use
// it for badges and placeholder glyphs.
type Kind string

// Media kinds known to the browser.
const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindFont  Kind = "font"
	KindModel Kind = "model"
)

// Item is the layout view of a media entry. Items are owned by the library
// store; the grid only reads them. Identity is by ID, and the order of the
// supplied slice is the packing order.
//
// NaturalWidth and NaturalHeight are the source dimensions in pixels. An
// item whose dimensions are not yet known (either ≤ 0) is skipped by Layout
// until an upstream metadata fetch resolves them and triggers a new pass.
type Item struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Kind          Kind   `json:"kind,omitempty"`
	NaturalWidth  int    `json:"naturalWidth,omitempty"`
	NaturalHeight int    `json:"naturalHeight,omitempty"`
}

// Measured reports whether the item carries usable natural dimensions.
func (it Item) Measured() bool {
	return it.NaturalWidth > 0 && it.NaturalHeight > 0
}

// =============================================================================
// Config - Layout Parameters
// =============================================================================

// Default layout parameters. These match the browser defaults; the config
// file and CLI flags override them.
const (
	// DefaultMinColumnWidth is the minimum column width in pixels.
	DefaultMinColumnWidth = 240.0

	// DefaultGap is the spacing between columns and between items in a
	// column, in pixels.
	DefaultGap = 12.0

	// DefaultBuffer is the pre-render margin above and below the viewport,
	// in pixels. It hides pop-in during fast scrolling.
	DefaultBuffer = 1000.0

	// DefaultColumnCount is used when the container has not been measured
	// yet (width ≤ 0), so downstream math never divides by zero.
	DefaultColumnCount = 4

	// DefaultPaginationThreshold is the remaining-scroll distance, in
	// pixels, at which more items are requested.
	DefaultPaginationThreshold = 500.0
)

// Config holds the externally supplied layout parameters. It is immutable
// per layout pass; the thumbnail-size control produces a new Config.
type Config struct {
	// MinColumnWidth is the smallest acceptable column width in pixels.
	MinColumnWidth float64 `toml:"min_column_width" json:"minColumnWidth"`

	// Gap is the spacing between columns and stacked items in pixels.
	Gap float64 `toml:"gap" json:"gap"`

	// Buffer is the windowing pre-render margin in pixels.
	Buffer float64 `toml:"buffer" json:"buffer"`

	// PaginationThreshold is the near-bottom distance that triggers a
	// LoadMore request.
	PaginationThreshold float64 `toml:"pagination_threshold" json:"paginationThreshold"`
}

// DefaultConfig returns the browser default layout parameters.
func DefaultConfig() Config {
	return Config{
		MinColumnWidth:      DefaultMinColumnWidth,
		Gap:                 DefaultGap,
		Buffer:              DefaultBuffer,
		PaginationThreshold: DefaultPaginationThreshold,
	}
}

// Normalize clamps out-of-range parameters to safe values. Negative gaps
// and non-positive column widths are never propagated into packing math.
func (c Config) Normalize() Config {
	if c.MinColumnWidth <= 0 {
		c.MinColumnWidth = DefaultMinColumnWidth
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.Buffer < 0 {
		c.Buffer = 0
	}
	if c.PaginationThreshold < 0 {
		c.PaginationThreshold = 0
	}
	return c
}
