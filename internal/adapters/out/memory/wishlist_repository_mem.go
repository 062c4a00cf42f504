// internal/adapters/out/memory/wishlist_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	wishdom "urbanthreads/internal/domain/wishlist"
)

// WishlistRepositoryMem implements wishlist.Repository on an instance-scoped map.
type WishlistRepositoryMem struct {
	mu     sync.RWMutex
	byUser map[string]wishdom.Wishlist
}

func NewWishlistRepositoryMem() *WishlistRepositoryMem {
	return &WishlistRepositoryMem{byUser: map[string]wishdom.Wishlist{}}
}

// Get returns an empty wishlist for unknown users (wishlists start empty).
func (r *WishlistRepositoryMem) Get(_ context.Context, userID string) (wishdom.Wishlist, error) {
	uid := strings.TrimSpace(userID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.byUser[uid]
	if !ok {
		return wishdom.New(uid), nil
	}
	w.ProductIDs = append([]string(nil), w.ProductIDs...)
	return w, nil
}

func (r *WishlistRepositoryMem) Save(_ context.Context, w wishdom.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w.ProductIDs = append([]string(nil), w.ProductIDs...)
	r.byUser[w.UserID] = w
	return nil
}
