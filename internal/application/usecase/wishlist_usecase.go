// internal/application/usecase/wishlist_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"urbanthreads/internal/domain/common"
	productdom "urbanthreads/internal/domain/product"
	wishdom "urbanthreads/internal/domain/wishlist"
)

// WishlistUsecase maintains the per-user wishlist set.
// Add and Remove are idempotent; only Add requires the product to exist.
type WishlistUsecase struct {
	wishlists wishdom.Repository
	products  productdom.Repository
	clock     Clock
}

func NewWishlistUsecase(wishlists wishdom.Repository, products productdom.Repository) *WishlistUsecase {
	return &WishlistUsecase{wishlists: wishlists, products: products, clock: systemClock{}}
}

// List returns the user's product-id set (empty for a new user).
func (uc *WishlistUsecase) List(ctx context.Context, userID string) ([]string, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, common.Auth("user not authenticated")
	}

	w, err := uc.wishlists.Get(ctx, uid)
	if err != nil {
		log.Printf("[wishlist_usecase] get failed user=%s: %v", uid, err)
		return nil, common.Internal("failed to fetch wishlist")
	}
	if w.ProductIDs == nil {
		w.ProductIDs = []string{}
	}
	return w.ProductIDs, nil
}

// Add puts productID on the user's wishlist. Duplicate adds are no-ops.
func (uc *WishlistUsecase) Add(ctx context.Context, userID, productID string) ([]string, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" {
		return nil, common.Auth("user not authenticated")
	}
	if pid == "" {
		return nil, common.Validation("product id is required")
	}

	if _, err := uc.products.GetByID(ctx, pid); err != nil {
		if errors.Is(err, productdom.ErrNotFound) {
			return nil, common.NotFound("product not found")
		}
		log.Printf("[wishlist_usecase] product lookup failed id=%s: %v", pid, err)
		return nil, common.Internal("failed to fetch product")
	}

	w, err := uc.wishlists.Get(ctx, uid)
	if err != nil {
		log.Printf("[wishlist_usecase] get failed user=%s: %v", uid, err)
		return nil, common.Internal("failed to fetch wishlist")
	}
	if w.UserID == "" {
		w = wishdom.New(uid)
	}

	if w.Add(pid, uc.clock.Now()) {
		if err := uc.wishlists.Save(ctx, w); err != nil {
			log.Printf("[wishlist_usecase] save failed user=%s: %v", uid, err)
			return nil, common.Internal("failed to update wishlist")
		}
	}
	return w.ProductIDs, nil
}

// Remove takes productID off the user's wishlist. Missing removes are no-ops.
func (uc *WishlistUsecase) Remove(ctx context.Context, userID, productID string) ([]string, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" {
		return nil, common.Auth("user not authenticated")
	}
	if pid == "" {
		return nil, common.Validation("product id is required")
	}

	w, err := uc.wishlists.Get(ctx, uid)
	if err != nil {
		log.Printf("[wishlist_usecase] get failed user=%s: %v", uid, err)
		return nil, common.Internal("failed to fetch wishlist")
	}
	if w.UserID == "" {
		w = wishdom.New(uid)
	}

	if w.Remove(pid, uc.clock.Now()) {
		if err := uc.wishlists.Save(ctx, w); err != nil {
			log.Printf("[wishlist_usecase] save failed user=%s: %v", uid, err)
			return nil, common.Internal("failed to update wishlist")
		}
	}
	if w.ProductIDs == nil {
		w.ProductIDs = []string{}
	}
	return w.ProductIDs, nil
}
