package locator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiepages/indiepages/engine/shop"
)

// flakyStore fails the first N ListShops calls, then succeeds.
type flakyStore struct {
	mu       sync.Mutex
	failures int
	calls    int
	shops    []shop.Shop
}

func (s *flakyStore) ListShops(_ context.Context) ([]shop.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return nil, fmt.Errorf("store unavailable")
	}
	return s.shops, nil
}

func (s *flakyStore) GetShopByID(_ context.Context, id int64) (*shop.Shop, error) {
	for i := range s.shops {
		if s.shops[i].ID == id {
			return &s.shops[i], nil
		}
	}
	return nil, shop.ErrNotFound
}

// gatedStore blocks ListShops until released.
type gatedStore struct {
	release chan struct{}
	shops   []shop.Shop
}

func (s *gatedStore) ListShops(_ context.Context) ([]shop.Shop, error) {
	<-s.release
	return s.shops, nil
}

func (s *gatedStore) GetShopByID(_ context.Context, _ int64) (*shop.Shop, error) {
	return nil, shop.ErrNotFound
}

func TestRefresher(t *testing.T) {
	shops := []shop.Shop{{ID: 1, Name: "Oak Books", Live: true}}

	t.Run("Should rebuild and publish the index", func(t *testing.T) {
		holder := NewHolder()
		r := NewRefresher(&flakyStore{shops: shops}, holder, RefresherConfig{})

		require.NoError(t, r.Refresh(t.Context()))

		_, ok := holder.Index().Lookup("oak-books")
		assert.True(t, ok)
	})

	t.Run("Should retry transient store failures", func(t *testing.T) {
		holder := NewHolder()
		store := &flakyStore{shops: shops, failures: 2}
		r := NewRefresher(store, holder, RefresherConfig{RetryAttempts: 3, RetryBase: time.Millisecond})

		require.NoError(t, r.Refresh(t.Context()))
		assert.Equal(t, 1, holder.Index().Size())
	})

	t.Run("Should keep the previous snapshot when all retries fail", func(t *testing.T) {
		holder := NewHolder()
		holder.Rebuild(shops)
		store := &flakyStore{shops: nil, failures: 100}
		rebuilds := 0
		r := NewRefresher(store, holder, RefresherConfig{
			RetryAttempts: 2,
			RetryBase:     time.Millisecond,
			OnRebuild:     func(int) { rebuilds++ },
		})

		err := r.Refresh(t.Context())

		require.Error(t, err)
		assert.Equal(t, 1, holder.Index().Size(), "stale snapshot must survive a failed refresh")
		assert.Zero(t, rebuilds, "failed refreshes must not report a rebuild")
	})

	t.Run("Should notify the rebuild observer on every publish", func(t *testing.T) {
		holder := NewHolder()
		var reported []int
		r := NewRefresher(&flakyStore{shops: shops}, holder, RefresherConfig{
			OnRebuild: func(slugs int) { reported = append(reported, slugs) },
		})

		require.NoError(t, r.Refresh(t.Context()))
		require.NoError(t, r.Refresh(t.Context()))

		assert.Equal(t, []int{1, 1}, reported)
	})

	t.Run("Should reject an invalid cron spec", func(t *testing.T) {
		r := NewRefresher(&flakyStore{shops: shops}, NewHolder(), RefresherConfig{CronSpec: "not a schedule"})
		err := r.Start(t.Context())
		require.Error(t, err)
	})

	t.Run("Should start and stop a valid schedule", func(t *testing.T) {
		holder := NewHolder()
		r := NewRefresher(&flakyStore{shops: shops}, holder, RefresherConfig{CronSpec: "@every 1h"})

		require.NoError(t, r.Start(t.Context()))
		defer r.Stop()

		assert.Eventually(t, func() bool {
			return holder.Index().Size() == 1
		}, time.Second, 10*time.Millisecond, "eager initial build should publish")
	})

	t.Run("Should wait for the eager initial build on Stop", func(t *testing.T) {
		holder := NewHolder()
		store := &gatedStore{release: make(chan struct{}), shops: shops}
		r := NewRefresher(store, holder, RefresherConfig{CronSpec: "@every 1h"})

		require.NoError(t, r.Start(t.Context()))
		close(store.release)
		r.Stop()

		assert.Equal(t, 1, holder.Index().Size(), "Stop must return only after the initial build published")
	})
}
