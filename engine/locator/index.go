package locator

import (
	"sync/atomic"

	"github.com/indiepages/indiepages/engine/shop"
)

// Index maps canonical slug to shop id for a single snapshot of the shop
// set. It is immutable after BuildIndex; rebuilds replace it wholesale.
type Index struct {
	bySlug map[string]int64
}

// BuildIndex computes the slug index over live shops. When two live shops
// normalize to the same slug the one appearing later in the input wins;
// directory names legitimately repeat and the directory favors availability
// over strict uniqueness.
func BuildIndex(shops []shop.Shop) *Index {
	bySlug := make(map[string]int64, len(shops))
	for i := range shops {
		if !shops[i].Live {
			continue
		}
		slug := Slugify(shops[i].Name)
		if slug == "" {
			continue
		}
		bySlug[slug] = shops[i].ID
	}
	return &Index{bySlug: bySlug}
}

// Lookup returns the shop id owning the given slug.
func (i *Index) Lookup(slug string) (int64, bool) {
	if i == nil {
		return 0, false
	}
	id, ok := i.bySlug[slug]
	return id, ok
}

// Size reports how many slugs the snapshot covers.
func (i *Index) Size() int {
	if i == nil {
		return 0
	}
	return len(i.bySlug)
}

// Holder publishes index snapshots to concurrent readers. Readers always see
// either the previous complete snapshot or the new one, never a partially
// built index. Before the first Publish, Index returns an empty snapshot so
// lookups miss instead of blocking or failing.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder returns a holder primed with an empty index.
func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(&Index{bySlug: map[string]int64{}})
	return h
}

// Index returns the current snapshot.
func (h *Holder) Index() *Index {
	return h.current.Load()
}

// Publish atomically swaps in a freshly built snapshot.
func (h *Holder) Publish(idx *Index) {
	if idx == nil {
		return
	}
	h.current.Store(idx)
}

// Rebuild builds a new snapshot from the given shops and publishes it.
func (h *Holder) Rebuild(shops []shop.Shop) *Index {
	idx := BuildIndex(shops)
	h.Publish(idx)
	return idx
}
