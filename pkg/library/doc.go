// Package library implements the collaborators the grid calls out to: the
// ordered item store with paged fetching, the selection store, and the
// visible-priority set consumed by thumbnail loaders.
//
// The grid itself never owns item or selection state (it only signals
// "more data is needed" and "these ids are on screen"); this package is
// where that state lives in the mosaic application. Hosts embedding
// pkg/grid in another application can supply their own equivalents.
package library
