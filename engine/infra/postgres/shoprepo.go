package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/indiepages/indiepages/engine/shop"
)

// ShopRepo implements the shop.Store interface over postgres.
type ShopRepo struct {
	db DBInterface
}

// NewShopRepo returns a repo reading from the given database.
func NewShopRepo(db DBInterface) *ShopRepo {
	return &ShopRepo{db: db}
}

// ListShops returns the full current snapshot, live and non-live.
func (r *ShopRepo) ListShops(ctx context.Context) ([]shop.Shop, error) {
	sql, args, err := squirrel.Select("id", "name", "region", "locality", "live").
		From("shops").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}
	var shops []shop.Shop
	if err := pgxscan.Select(ctx, r.db, &shops, sql, args...); err != nil {
		return nil, fmt.Errorf("scanning shops: %w", err)
	}
	return shops, nil
}

// GetShopByID returns a single shop or shop.ErrNotFound.
func (r *ShopRepo) GetShopByID(ctx context.Context, id int64) (*shop.Shop, error) {
	sql, args, err := squirrel.Select("id", "name", "region", "locality", "live").
		From("shops").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}
	var item shop.Shop
	if err := pgxscan.Get(ctx, r.db, &item, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shop.ErrNotFound
		}
		return nil, fmt.Errorf("scanning shop: %w", err)
	}
	return &item, nil
}
