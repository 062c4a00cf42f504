// internal/domain/wishlist/repository_port.go
package wishlist

import "context"

// Repository is the persistence port for wishlists.
//
// Not-found policy: Get returns an empty wishlist for an unknown user
// (a wishlist always "exists", it just starts empty).
type Repository interface {
	Get(ctx context.Context, userID string) (Wishlist, error)
	Save(ctx context.Context, w Wishlist) error
}
