// internal/domain/cart/slot_port.go
package cart

import "context"

// SlotField is the field/key name under which the serialized item sequence is stored.
const SlotField = "cart"

// SlotStore is the persistence port for the durable cart slot.
//
// The slot holds the serialized []LineItem for one owner, last write wins.
// Concurrent writers (e.g. two sessions of the same user) are not reconciled.
//
// Storage recommendation (Firestore):
// - collection: carts
// - docId: ownerId
// - fields: cart(array), updatedAt, expiresAt
// - configure Firestore TTL on "expiresAt", refreshed on each write
type SlotStore interface {
	// Read returns the persisted items for owner.
	// ok=false means the slot is absent; callers treat that as an empty cart.
	Read(ctx context.Context, ownerID string) (items []LineItem, ok bool, err error)

	// Write overwrites the slot with items (create or update).
	Write(ctx context.Context, ownerID string, items []LineItem) error

	// Delete removes the slot for owner.
	Delete(ctx context.Context, ownerID string) error
}
