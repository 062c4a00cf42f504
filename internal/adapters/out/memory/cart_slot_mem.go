// internal/adapters/out/memory/cart_slot_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	cartdom "urbanthreads/internal/domain/cart"
)

// CartSlotMem implements cart.SlotStore on an instance-scoped map.
// Last write wins, same as the durable backings.
type CartSlotMem struct {
	mu    sync.RWMutex
	slots map[string][]cartdom.LineItem
}

func NewCartSlotMem() *CartSlotMem {
	return &CartSlotMem{slots: map[string][]cartdom.LineItem{}}
}

func (s *CartSlotMem) Read(_ context.Context, ownerID string) ([]cartdom.LineItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.slots[strings.TrimSpace(ownerID)]
	if !ok {
		return nil, false, nil
	}
	return append([]cartdom.LineItem(nil), items...), true, nil
}

func (s *CartSlotMem) Write(_ context.Context, ownerID string, items []cartdom.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[strings.TrimSpace(ownerID)] = append([]cartdom.LineItem(nil), items...)
	return nil
}

func (s *CartSlotMem) Delete(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, strings.TrimSpace(ownerID))
	return nil
}
