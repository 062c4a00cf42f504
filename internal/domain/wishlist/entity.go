// internal/domain/wishlist/entity.go
package wishlist

import (
	"strings"
	"time"
)

// Wishlist is a per-user ordered set of product ids.
// Add and Remove are idempotent: duplicate adds and missing removes are no-ops.
type Wishlist struct {
	UserID     string    `json:"userId" firestore:"userId"`
	ProductIDs []string  `json:"productIds" firestore:"productIds"`
	UpdatedAt  time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// New returns an empty wishlist for userID.
func New(userID string) Wishlist {
	return Wishlist{UserID: strings.TrimSpace(userID), ProductIDs: []string{}}
}

// Add appends productID if absent. Reports whether the set changed.
func (w *Wishlist) Add(productID string, now time.Time) bool {
	pid := strings.TrimSpace(productID)
	if pid == "" || w.Contains(pid) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, pid)
	w.UpdatedAt = now
	return true
}

// Remove deletes productID if present. Reports whether the set changed.
func (w *Wishlist) Remove(productID string, now time.Time) bool {
	pid := strings.TrimSpace(productID)
	for i, id := range w.ProductIDs {
		if id == pid {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			w.UpdatedAt = now
			return true
		}
	}
	return false
}

func (w Wishlist) Contains(productID string) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
