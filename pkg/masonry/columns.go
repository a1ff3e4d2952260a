package masonry

import "math"

// ColumnCount derives the number of columns that fit in containerWidth with
// columns at least minColumnWidth wide and gap pixels between them.
//
// The gap is treated as if prepended to every column, so that n columns of
// width ≥ minColumnWidth plus n-1 gaps fit exactly:
//
//	n = floor((containerWidth + gap) / (minColumnWidth + gap))
//
// The result is always ≥ 1. When containerWidth ≤ 0 (the container has not
// been measured yet) the safe default of DefaultColumnCount is returned
// instead of 0.
func ColumnCount(containerWidth, minColumnWidth, gap float64) int {
	if containerWidth <= 0 {
		return DefaultColumnCount
	}
	if minColumnWidth <= 0 {
		minColumnWidth = DefaultMinColumnWidth
	}
	if gap < 0 {
		gap = 0
	}
	n := int(math.Floor((containerWidth + gap) / (minColumnWidth + gap)))
	if n < 1 {
		return 1
	}
	return n
}

// ColumnWidth returns the width of each column when columnCount columns and
// columnCount-1 gaps share containerWidth. columnCount values below 1 are
// clamped to 1.
func ColumnWidth(containerWidth float64, columnCount int, gap float64) float64 {
	if columnCount < 1 {
		columnCount = 1
	}
	if gap < 0 {
		gap = 0
	}
	w := (containerWidth - gap*float64(columnCount-1)) / float64(columnCount)
	if w < 0 {
		return 0
	}
	return w
}
