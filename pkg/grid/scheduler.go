package grid

// Scheduler coalesces bursts of invalidation requests into at most one
// callback execution per frame. It is the host-agnostic equivalent of
// "schedule once per animation frame, re-armed on each raw notification":
// any number of Request calls between two Flush calls collapse into a
// single execution.
//
// The host drives Flush once per frame from its event loop. Scheduler is
// not goroutine-safe; it shares the grid's single-writer discipline.
type Scheduler struct {
	fn       func()
	pending  bool
	canceled bool
}

// NewScheduler creates a scheduler that runs fn on flush.
func NewScheduler(fn func()) *Scheduler {
	return &Scheduler{fn: fn}
}

// Request marks the callback as pending. Requests after Cancel are
// ignored; a torn-down viewport must not schedule work against a detached
// container.
func (s *Scheduler) Request() {
	if s.canceled {
		return
	}
	s.pending = true
}

// Pending reports whether a flush would run the callback.
func (s *Scheduler) Pending() bool {
	return s.pending && !s.canceled
}

// Flush runs the callback if a request is pending and reports whether it
// ran. The pending flag clears before the callback executes, so a callback
// that re-requests schedules for the next frame rather than looping.
func (s *Scheduler) Flush() bool {
	if !s.pending || s.canceled {
		return false
	}
	s.pending = false
	s.fn()
	return true
}

// Cancel discards any pending request and ignores future ones. Called on
// viewport teardown.
func (s *Scheduler) Cancel() {
	s.canceled = true
	s.pending = false
}
