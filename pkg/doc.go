// Package pkg provides the core libraries for mosaic masonry layout.
//
// # Overview
//
// Mosaic lays out media libraries as masonry grids and windows them for
// virtualized rendering. The pkg directory is organized into four main
// areas:
//
//  1. [masonry] - Pure layout core (column packing, windowing math)
//  2. [grid] - Host glue (viewport state, frame coalescing, pagination)
//  3. [library] - Item ownership (paged store, selection, load priority)
//  4. [manifest], [cache] - IO and persistence of layouts
//
// # Architecture
//
// The typical data flow through mosaic:
//
//	Manifest / Paged Source
//	         ↓
//	    [library] package (ordered items, paging, dimension updates)
//	         ↓
//	    [masonry] package (column packing, visible window)
//	         ↓
//	    [grid] package (frames: layout + viewport + window, one version)
//	         ↓
//	    TUI cells / JSON layout / HTTP inspection API
//
// # Quick Start
//
//	items := []masonry.Item{{ID: "a", NaturalWidth: 400, NaturalHeight: 300}}
//	res := masonry.Layout(items, 4, 1200, 12)
//	vp := masonry.Viewport{ContainerWidth: 1200, ContainerHeight: 800}
//	visible := masonry.Visible(items, res, vp, masonry.DefaultBuffer)
//
// Supporting packages: [errors] for structured error codes,
// [observability] for pluggable layout/window/cache hooks, and
// [buildinfo] for ldflags version stamping.
package pkg
