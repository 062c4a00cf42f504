// internal/adapters/out/firestore/cart_slot_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "urbanthreads/internal/domain/cart"
)

// DefaultCartTTL is the inactivity window after which a slot becomes eligible
// for auto deletion (configure Firestore TTL on expiresAt).
const DefaultCartTTL = 7 * 24 * time.Hour

// CartSlotFS implements cart.SlotStore using Firestore.
//
// Collection design:
// - collection: carts
// - docId: ownerId (docId is the source of truth)
// - fields: cart(array of line items), updatedAt, expiresAt
type CartSlotFS struct {
	Client *firestore.Client

	// now is swappable for tests; nil means time.Now.
	now func() time.Time
}

func NewCartSlotFS(client *firestore.Client) *CartSlotFS {
	return &CartSlotFS{Client: client}
}

func (s *CartSlotFS) col() *firestore.CollectionRef {
	return s.Client.Collection("carts")
}

type cartSlotDoc struct {
	Items     []cartdom.LineItem `firestore:"cart"`
	UpdatedAt time.Time          `firestore:"updatedAt"`
	ExpiresAt time.Time          `firestore:"expiresAt"`
}

// Read returns (nil, false, nil) when the slot is absent. A document that
// exists but cannot be decoded also reads as absent: a malformed slot is
// "no persisted cart", never an error surfaced to the user.
func (s *CartSlotFS) Read(ctx context.Context, ownerID string) ([]cartdom.LineItem, bool, error) {
	if s == nil || s.Client == nil {
		return nil, false, errors.New("cart_slot_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return nil, false, errors.New("cart_slot_fs: ownerID is empty")
	}

	snap, err := s.col().Doc(oid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	// Parse snap.Data() by hand instead of DataTo: older documents may carry a
	// different items shape, and a type mismatch must degrade to "empty slot"
	// rather than a 500.
	raw := snap.Data()
	if raw == nil {
		return nil, false, nil
	}

	itemsRaw, ok := raw[cartdom.SlotField]
	if !ok {
		return nil, false, nil
	}

	items := decodeSlotItems(itemsRaw)
	return items, true, nil
}

func (s *CartSlotFS) Write(ctx context.Context, ownerID string, items []cartdom.LineItem) error {
	if s == nil || s.Client == nil {
		return errors.New("cart_slot_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return errors.New("cart_slot_fs: ownerID is empty")
	}

	now := s.clock()
	if items == nil {
		items = []cartdom.LineItem{}
	}

	// Overwrite full doc (simple & predictable), refreshing the TTL basis.
	_, err := s.col().Doc(oid).Set(ctx, cartSlotDoc{
		Items:     items,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	})
	return err
}

func (s *CartSlotFS) Delete(ctx context.Context, ownerID string) error {
	if s == nil || s.Client == nil {
		return errors.New("cart_slot_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return errors.New("cart_slot_fs: ownerID is empty")
	}

	_, err := s.col().Doc(oid).Delete(ctx)
	return err
}

func (s *CartSlotFS) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

func decodeSlotItems(v any) []cartdom.LineItem {
	raw := asSlice(v)
	out := make([]cartdom.LineItem, 0, len(raw))
	for _, e := range raw {
		m := asMap(e)
		if m == nil {
			continue
		}
		it := cartdom.LineItem{
			ProductID: strings.TrimSpace(asString(m["id"])),
			Title:     asString(m["title"]),
			UnitPrice: asFloat(m["price"]),
			Image:     asString(m["image"]),
			Size:      strings.TrimSpace(asString(m["size"])),
			Color:     strings.TrimSpace(asString(m["color"])),
			Quantity:  asInt(m["quantity"]),
			Stock:     asInt(m["stock"]),
		}
		if it.ProductID == "" || it.Quantity <= 0 {
			continue
		}
		out = append(out, it)
	}
	return out
}
