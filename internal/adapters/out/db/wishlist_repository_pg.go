// internal/adapters/out/db/wishlist_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	wishlistdom "urbanthreads/internal/domain/wishlist"
)

// WishlistRepositoryPG is a PostgreSQL implementation of wishlist.Repository.
// One row per user; product_ids keeps insertion order.
type WishlistRepositoryPG struct {
	DB *sql.DB
}

func NewWishlistRepositoryPG(conn *sql.DB) *WishlistRepositoryPG {
	return &WishlistRepositoryPG{DB: conn}
}

func (r *WishlistRepositoryPG) Get(ctx context.Context, userID string) (wishlistdom.Wishlist, error) {
	if r == nil || r.DB == nil {
		return wishlistdom.Wishlist{}, errors.New("wishlist_repository_pg: db is nil")
	}

	uid := strings.TrimSpace(userID)
	w := wishlistdom.New(uid)
	if uid == "" {
		return w, nil
	}

	row := r.DB.QueryRowContext(ctx,
		"SELECT product_ids, updated_at FROM wishlists WHERE user_id = $1", uid)
	err := row.Scan(pq.Array(&w.ProductIDs), &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wishlistdom.New(uid), nil
		}
		return wishlistdom.Wishlist{}, err
	}
	if w.ProductIDs == nil {
		w.ProductIDs = []string{}
	}
	return w, nil
}

func (r *WishlistRepositoryPG) Save(ctx context.Context, w wishlistdom.Wishlist) error {
	if r == nil || r.DB == nil {
		return errors.New("wishlist_repository_pg: db is nil")
	}

	uid := strings.TrimSpace(w.UserID)
	if uid == "" {
		return errors.New("wishlist_repository_pg: empty user id")
	}

	const q = `
INSERT INTO wishlists (user_id, product_ids, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET
  product_ids = EXCLUDED.product_ids,
  updated_at = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, q, uid, pq.Array(w.ProductIDs), w.UpdatedAt)
	return err
}
