// Package memstore is the in-memory shop store used for demos and tests.
package memstore

import (
	"context"
	"sync"

	"github.com/indiepages/indiepages/engine/shop"
)

// Store holds a snapshot of shops in memory. Reads return copies so callers
// never alias the internal slice.
type Store struct {
	mu    sync.RWMutex
	shops []shop.Shop
}

// NewStore returns a store seeded with the given shops.
func NewStore(shops []shop.Shop) *Store {
	s := &Store{}
	s.Replace(shops)
	return s
}

// Replace swaps the full shop set, mirroring an upstream data refresh.
func (s *Store) Replace(shops []shop.Shop) {
	copied := make([]shop.Shop, len(shops))
	copy(copied, shops)
	s.mu.Lock()
	s.shops = copied
	s.mu.Unlock()
}

// ListShops returns the full current snapshot.
func (s *Store) ListShops(_ context.Context) ([]shop.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]shop.Shop, len(s.shops))
	copy(out, s.shops)
	return out, nil
}

// GetShopByID returns a single shop or shop.ErrNotFound.
func (s *Store) GetShopByID(_ context.Context, id int64) (*shop.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.shops {
		if s.shops[i].ID == id {
			found := s.shops[i]
			return &found, nil
		}
	}
	return nil, shop.ErrNotFound
}
