// internal/adapters/out/db/cart_slot_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	cartdom "urbanthreads/internal/domain/cart"
)

// CartSlotPG is a PostgreSQL implementation of cart.SlotStore. The whole item
// list is written as one jsonb value per owner: the slot is an opaque blob and
// last write wins, matching the other backings.
type CartSlotPG struct {
	DB  *sql.DB
	now func() time.Time
}

func NewCartSlotPG(conn *sql.DB) *CartSlotPG {
	return &CartSlotPG{DB: conn, now: time.Now}
}

func (s *CartSlotPG) Read(ctx context.Context, ownerID string) ([]cartdom.LineItem, bool, error) {
	if s == nil || s.DB == nil {
		return nil, false, errors.New("cart_slot_pg: db is nil")
	}

	uid := strings.TrimSpace(ownerID)
	if uid == "" {
		return nil, false, nil
	}

	var raw []byte
	row := s.DB.QueryRowContext(ctx, "SELECT cart FROM cart_slots WHERE owner_id = $1", uid)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var items []cartdom.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// A corrupt slot degrades to an empty cart rather than failing the read.
		return nil, true, nil
	}
	return items, true, nil
}

func (s *CartSlotPG) Write(ctx context.Context, ownerID string, items []cartdom.LineItem) error {
	if s == nil || s.DB == nil {
		return errors.New("cart_slot_pg: db is nil")
	}

	uid := strings.TrimSpace(ownerID)
	if uid == "" {
		return errors.New("cart_slot_pg: empty owner id")
	}

	if items == nil {
		items = []cartdom.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO cart_slots (owner_id, cart, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (owner_id) DO UPDATE SET
  cart = EXCLUDED.cart,
  updated_at = EXCLUDED.updated_at`

	_, err = s.DB.ExecContext(ctx, q, uid, raw, s.now().UTC())
	return err
}

func (s *CartSlotPG) Delete(ctx context.Context, ownerID string) error {
	if s == nil || s.DB == nil {
		return errors.New("cart_slot_pg: db is nil")
	}

	uid := strings.TrimSpace(ownerID)
	if uid == "" {
		return nil
	}

	_, err := s.DB.ExecContext(ctx, "DELETE FROM cart_slots WHERE owner_id = $1", uid)
	return err
}
