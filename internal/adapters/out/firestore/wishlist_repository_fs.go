// internal/adapters/out/firestore/wishlist_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	wishlistdom "urbanthreads/internal/domain/wishlist"
)

// WishlistRepositoryFS implements wishlist.Repository using Firestore.
//
// Collection design:
// - collection: wishlists
// - docId: user id (one document per user)
// - productIds keeps insertion order, so the array is stored as-is
type WishlistRepositoryFS struct {
	Client *firestore.Client
}

func NewWishlistRepositoryFS(client *firestore.Client) *WishlistRepositoryFS {
	return &WishlistRepositoryFS{Client: client}
}

func (r *WishlistRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("wishlists")
}

func (r *WishlistRepositoryFS) Get(ctx context.Context, userID string) (wishlistdom.Wishlist, error) {
	if r == nil || r.Client == nil {
		return wishlistdom.Wishlist{}, errors.New("wishlist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return wishlistdom.New(uid), nil
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return wishlistdom.New(uid), nil
		}
		return wishlistdom.Wishlist{}, err
	}

	raw := snap.Data()
	w := wishlistdom.New(uid)
	w.ProductIDs = asStringSlice(raw["productIds"])
	if t, ok := asTime(raw["updatedAt"]); ok {
		w.UpdatedAt = t
	}
	return w, nil
}

func (r *WishlistRepositoryFS) Save(ctx context.Context, w wishlistdom.Wishlist) error {
	if r == nil || r.Client == nil {
		return errors.New("wishlist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(w.UserID)
	if uid == "" {
		return errors.New("wishlist_repository_fs: empty user id")
	}

	_, err := r.col().Doc(uid).Set(ctx, w)
	return err
}
