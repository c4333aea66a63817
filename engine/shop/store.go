package shop

import (
	"context"
	"fmt"
)

// ErrNotFound is returned when a shop does not exist in the active store.
var ErrNotFound = fmt.Errorf("shop not found")

// Store is the read interface every backend driver implements. The canonical
// index and the redirect layer only ever consume this interface, so slug and
// region handling stays identical regardless of which driver is active.
type Store interface {
	// ListShops returns the full current snapshot, live and non-live.
	ListShops(ctx context.Context) ([]Shop, error)

	// GetShopByID returns a single shop or ErrNotFound.
	GetShopByID(ctx context.Context, id int64) (*Shop, error)
}
