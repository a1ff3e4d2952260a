package masonry

import "math"

// =============================================================================
// Position & Result
// =============================================================================

// Position is the placed geometry of a single item, in pixels, relative to
// the top-left corner of the grid content area.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Result is the outcome of one layout pass. It is a derived, disposable
// value: consumers never mutate it, they request a fresh one when any input
// changes.
//
// Positions holds one entry per input item that was measured; items with
// unknown dimensions are absent and reappear once their dimensions resolve.
// TotalHeight is the height of the tallest column without its trailing gap.
type Result struct {
	ColumnCount int                 `json:"columnCount"`
	ColumnWidth float64             `json:"columnWidth"`
	Positions   map[string]Position `json:"positions"`
	TotalHeight float64             `json:"totalHeight"`
}

// maxAspect caps rendered item height at this multiple of the column width.
// Extremely tall sources (panoramas, film strips) would otherwise dominate
// a column and ruin the greedy balance.
const maxAspect = 6.0

// =============================================================================
// Layout - Greedy Shortest-Column Packing
// =============================================================================

// Layout packs items into columnCount columns of equal width inside
// containerWidth, with gap pixels between columns and between stacked
// items. It is a pure function: no hidden state, deterministic output.
//
// Items are placed in input order. Each measured item goes into the column
// with the smallest accumulated height; ties pick the lowest index. Item
// height preserves the natural aspect ratio at the computed column width,
// clamped to [1, maxAspect×columnWidth]. Unmeasured items and any item
// whose geometry would be NaN or infinite are skipped for this pass.
//
// Degenerate inputs fail soft: an empty item list, or a container too
// narrow to give columns positive width, yields a Result with no positions
// and TotalHeight 0.
func Layout(items []Item, columnCount int, containerWidth, gap float64) Result {
	if columnCount < 1 {
		columnCount = 1
	}
	if gap < 0 {
		gap = 0
	}

	colWidth := ColumnWidth(containerWidth, columnCount, gap)
	res := Result{
		ColumnCount: columnCount,
		ColumnWidth: colWidth,
		Positions:   make(map[string]Position, len(items)),
	}
	if !isFinite(colWidth) || colWidth <= 0 {
		res.ColumnWidth = 0
		return res
	}

	heights := make([]float64, columnCount)
	for _, it := range items {
		if !it.Measured() {
			continue
		}

		h := colWidth * float64(it.NaturalHeight) / float64(it.NaturalWidth)
		if !isFinite(h) {
			continue
		}
		if h < 1 {
			h = 1
		}
		if limit := maxAspect * colWidth; h > limit {
			h = limit
		}

		col := shortestColumn(heights)
		res.Positions[it.ID] = Position{
			X:      float64(col) * (colWidth + gap),
			Y:      heights[col],
			Width:  colWidth,
			Height: h,
		}
		heights[col] += h + gap
	}

	tallest := 0.0
	for _, h := range heights {
		if h > tallest {
			tallest = h
		}
	}
	if tallest > 0 {
		res.TotalHeight = tallest - gap
	}
	return res
}

// shortestColumn returns the index of the smallest value in heights,
// preferring the lowest index on ties. heights is never empty.
func shortestColumn(heights []float64) int {
	col := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[col] {
			col = i
		}
	}
	return col
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
