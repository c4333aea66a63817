package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiepages/indiepages/engine/shop"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.Context(), &Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	t.Run("Should migrate an empty database and list nothing", func(t *testing.T) {
		store := openTestStore(t)
		shops, err := store.ListShops(t.Context())
		require.NoError(t, err)
		assert.Empty(t, shops)
	})

	t.Run("Should round-trip shops through upsert and list", func(t *testing.T) {
		store := openTestStore(t)
		require.NoError(t, store.UpsertShop(t.Context(), shop.Shop{
			ID: 1, Name: "Oak Books", Region: "Colorado", Locality: "Denver", Live: true,
		}))
		require.NoError(t, store.UpsertShop(t.Context(), shop.Shop{
			ID: 2, Name: "Closed Chapter", Region: "Maine", Live: false,
		}))

		shops, err := store.ListShops(t.Context())
		require.NoError(t, err)
		require.Len(t, shops, 2)
		assert.Equal(t, "Oak Books", shops[0].Name)
		assert.True(t, shops[0].Live)
		assert.False(t, shops[1].Live)
	})

	t.Run("Should get a shop by id", func(t *testing.T) {
		store := openTestStore(t)
		require.NoError(t, store.UpsertShop(t.Context(), shop.Shop{ID: 7, Name: "Village Books", Live: true}))

		got, err := store.GetShopByID(t.Context(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Village Books", got.Name)
	})

	t.Run("Should return ErrNotFound for missing ids", func(t *testing.T) {
		store := openTestStore(t)
		_, err := store.GetShopByID(t.Context(), 42)
		assert.ErrorIs(t, err, shop.ErrNotFound)
	})

	t.Run("Should update on conflicting upsert", func(t *testing.T) {
		store := openTestStore(t)
		require.NoError(t, store.UpsertShop(t.Context(), shop.Shop{ID: 1, Name: "Old Name", Live: true}))
		require.NoError(t, store.UpsertShop(t.Context(), shop.Shop{ID: 1, Name: "New Name", Live: true}))

		got, err := store.GetShopByID(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
	})

	t.Run("Should reject a missing path", func(t *testing.T) {
		_, err := NewStore(t.Context(), &Config{})
		require.Error(t, err)
	})
}
