package library

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/tessellate/mosaic/pkg/masonry"
)

// SyntheticPager generates a fixed-size library of fake media items for
// the demo browser and for load testing the grid. Dimensions are drawn
// from a seeded source, so a given seed always yields the same library.
type SyntheticPager struct {
	total int
	items []masonry.Item
}

// syntheticKinds is the rotation of media kinds for generated items.
var syntheticKinds = []masonry.Kind{
	masonry.KindImage,
	masonry.KindImage,
	masonry.KindImage,
	masonry.KindVideo,
	masonry.KindAudio,
	masonry.KindFont,
	masonry.KindModel,
}

// NewSyntheticPager generates total items with the given seed. Roughly
// one in twelve items is left unmeasured, exercising the "dimensions not
// yet known" path of the layout engine.
func NewSyntheticPager(total int, seed int64) *SyntheticPager {
	if total < 0 {
		total = 0
	}
	rng := rand.New(rand.NewSource(seed))
	items := make([]masonry.Item, total)
	for i := range items {
		it := masonry.Item{
			ID:   uuid.Must(uuid.NewRandomFromReader(rng)).String(),
			Name: fmt.Sprintf("asset-%04d", i),
			Kind: syntheticKinds[i%len(syntheticKinds)],
		}
		if rng.Intn(12) != 0 {
			it.NaturalWidth = 320 + rng.Intn(1600)
			it.NaturalHeight = 240 + rng.Intn(1600)
		}
		items[i] = it
	}
	return &SyntheticPager{total: total, items: items}
}

// NextPage implements Pager.
func (p *SyntheticPager) NextPage(_ context.Context, offset, limit int) ([]masonry.Item, bool, error) {
	if offset < 0 || offset >= len(p.items) {
		return nil, false, nil
	}
	end := offset + limit
	if limit < 1 || end > len(p.items) {
		end = len(p.items)
	}
	page := make([]masonry.Item, end-offset)
	copy(page, p.items[offset:end])
	return page, end < len(p.items), nil
}

// Total returns the generated library size.
func (p *SyntheticPager) Total() int {
	return p.total
}
