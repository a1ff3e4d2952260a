// Package masonry implements the pure layout core of the mosaic grid: a
// greedy shortest-column packing of variable-height items into fixed-width
// columns, plus the windowing function that selects the subset of placed
// items intersecting a scroll viewport.
//
// # Design
//
// Everything in this package is a pure function over value inputs. Layout
// holds no state between calls, so calling it twice with identical arguments
// yields identical results. This determinism is what lets the stateful grid
// (pkg/grid) treat a Result as a disposable derived value: recompute on
// input change, never patch in place.
//
// # Algorithm
//
// Items are placed in input order into whichever column currently has the
// least accumulated height, with ties broken by the lowest column index.
// This is the standard balanced-packing heuristic for masonry grids: O(n·k)
// for n items and k columns, with the guarantee that after packing the
// tallest and shortest columns differ by at most the height of the single
// tallest item placed.
//
// # Usage
//
//	cols := masonry.ColumnCount(width, cfg.MinColumnWidth, cfg.Gap)
//	res := masonry.Layout(items, cols, width, cfg.Gap)
//	visible := masonry.Visible(items, res, viewport, cfg.Buffer)
package masonry
