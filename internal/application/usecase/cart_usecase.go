// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	cartdom "urbanthreads/internal/domain/cart"
)

var ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")

// CartUsecase is the persistence bridge around the cart store.
//
// Every operation hydrates the owner's cart from the durable slot before
// mutating (read-before-first-write: an unreadable or absent slot is an empty
// cart, and nothing is written until a mutation happens), applies the store
// transition, and writes the slot back. Slot failures on either side are
// swallowed — the cart itself never fails, the caller always gets a
// consistent state. Last write wins across sessions.
type CartUsecase struct {
	slot cartdom.SlotStore
}

func NewCartUsecase(slot cartdom.SlotStore) *CartUsecase {
	return &CartUsecase{slot: slot}
}

// Get returns the cart for owner. Absent or malformed slots read as empty.
func (uc *CartUsecase) Get(ctx context.Context, ownerID string) (cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return cartdom.Cart{}, ErrCartInvalidArgument
	}
	return uc.hydrate(ctx, oid), nil
}

// AddItem merges item into the owner's cart (quantity clamped to stock) and
// persists the result.
func (uc *CartUsecase) AddItem(ctx context.Context, ownerID string, item cartdom.LineItem) (cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return cartdom.Cart{}, ErrCartInvalidArgument
	}

	c := uc.hydrate(ctx, oid)
	c.Add(item)
	uc.persist(ctx, oid, c)
	return c, nil
}

// SetItemQuantity sets the quantity for key (clamped to [0, stock]; 0 removes)
// and persists the result.
func (uc *CartUsecase) SetItemQuantity(ctx context.Context, ownerID string, key cartdom.ItemKey, quantity int) (cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return cartdom.Cart{}, ErrCartInvalidArgument
	}

	c := uc.hydrate(ctx, oid)
	c.SetQuantity(key, quantity)
	uc.persist(ctx, oid, c)
	return c, nil
}

// RemoveItem removes key from the owner's cart. Idempotent.
func (uc *CartUsecase) RemoveItem(ctx context.Context, ownerID string, key cartdom.ItemKey) (cartdom.Cart, error) {
	return uc.SetItemQuantity(ctx, ownerID, key, 0)
}

// Clear empties the cart and deletes the slot.
func (uc *CartUsecase) Clear(ctx context.Context, ownerID string) (cartdom.Cart, error) {
	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return cartdom.Cart{}, ErrCartInvalidArgument
	}

	if err := uc.slot.Delete(ctx, oid); err != nil {
		log.Printf("[cart_usecase] WARN: slot delete failed owner=%s: %v", oid, err)
	}
	return cartdom.Cart{}, nil
}

// hydrate reads the slot and seeds a store from it. Failures read as empty:
// a broken slot must never surface to the user or crash the store.
func (uc *CartUsecase) hydrate(ctx context.Context, ownerID string) cartdom.Cart {
	items, ok, err := uc.slot.Read(ctx, ownerID)
	if err != nil {
		log.Printf("[cart_usecase] WARN: slot read failed owner=%s (treating as empty): %v", ownerID, err)
		return cartdom.Cart{}
	}
	if !ok {
		return cartdom.Cart{}
	}
	return cartdom.New(items)
}

func (uc *CartUsecase) persist(ctx context.Context, ownerID string, c cartdom.Cart) {
	if err := uc.slot.Write(ctx, ownerID, c.Items); err != nil {
		log.Printf("[cart_usecase] WARN: slot write failed owner=%s: %v", ownerID, err)
	}
}
