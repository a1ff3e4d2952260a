package masonry

// Viewport is the numeric view of the scrollable container at one instant.
// It is owned by the grid controller; windowing only reads it.
type Viewport struct {
	ContainerWidth  float64 `json:"containerWidth"`
	ContainerHeight float64 `json:"containerHeight"`
	ScrollTop       float64 `json:"scrollTop"`
}

// Visible selects the subsequence of items whose placed vertical extent
// [y, y+height) intersects the scroll window [scrollTop-buffer,
// scrollTop+containerHeight+buffer]. Input order is preserved.
//
// Items without a position in res (unmeasured this pass) are never
// returned, so an empty Result yields an empty selection. The caller must
// pair the returned items with positions from the same Result it passed in;
// mixing Results from different passes produces torn geometry.
func Visible(items []Item, res Result, vp Viewport, buffer float64) []Item {
	if len(res.Positions) == 0 {
		return nil
	}
	if buffer < 0 {
		buffer = 0
	}

	top := vp.ScrollTop - buffer
	bottom := vp.ScrollTop + vp.ContainerHeight + buffer

	visible := make([]Item, 0, len(items))
	for _, it := range items {
		pos, ok := res.Positions[it.ID]
		if !ok {
			continue
		}
		if pos.Y+pos.Height > top && pos.Y <= bottom {
			visible = append(visible, it)
		}
	}
	return visible
}

// VisibleIDs is Visible reduced to item ids, in input order. The grid
// publishes this set so external loaders (thumbnails, metadata) can
// prioritize on-screen items.
func VisibleIDs(items []Item, res Result, vp Viewport, buffer float64) []string {
	vis := Visible(items, res, vp, buffer)
	ids := make([]string, len(vis))
	for i, it := range vis {
		ids[i] = it.ID
	}
	return ids
}
