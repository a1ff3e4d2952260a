// Package grid is the stateful half of the mosaic core: it owns the
// viewport state, coalesces resize notifications, memoizes layout
// recomputation, evaluates the pagination trigger on scroll, and produces
// consistent render frames.
//
// # Concurrency model
//
// The grid is single-threaded by design, mirroring an event-loop UI: all
// mutation happens from one goroutine (the host's update loop), and derived
// values are replaced rather than mutated. A Grid is therefore not safe for
// concurrent use; callers that need cross-goroutine reads take the values a
// Frame carries, which are immutable once produced.
//
// # Frames
//
// Frame is the no-tearing contract: the visible item set and the positions
// used to draw them are always derived from the same layout Result inside
// one Frame call. Two consecutive Frame calls without any input change
// return identical frames.
//
// # Recompute discipline
//
// Item-list and size changes only mark the layout dirty; the actual
// recompute happens at most once per frame, when Frame flushes the
// scheduler. Scroll updates never mark the layout dirty - they only change
// which slice of the existing layout is visible.
package grid
