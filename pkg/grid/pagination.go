package grid

// Trigger evaluates scroll proximity to the bottom edge and asks the
// external data source for more items. It deliberately carries no
// in-flight guard: once a previous load completes and the threshold is
// crossed again, the next scroll event must be allowed to fire LoadMore
// again. De-duplicating concurrent requests is the item-list owner's job.
type Trigger struct {
	// Threshold is the remaining scroll distance, in pixels, at or below
	// which LoadMore fires.
	Threshold float64

	// LoadMore requests the next page from the library store. A nil
	// LoadMore disables the trigger.
	LoadMore func()
}

// Check evaluates one scroll event. scrollHeight is the total content
// height, clientHeight the visible container height, scrollTop the current
// offset. It reports whether LoadMore fired.
func (t *Trigger) Check(scrollHeight, scrollTop, clientHeight float64) bool {
	if t == nil || t.LoadMore == nil {
		return false
	}
	remaining := scrollHeight - (scrollTop + clientHeight)
	if remaining > t.Threshold {
		return false
	}
	t.LoadMore()
	return true
}
