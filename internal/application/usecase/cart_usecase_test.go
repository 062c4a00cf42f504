package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "urbanthreads/internal/domain/cart"
)

// fakeSlot records slot traffic so tests can assert bridge ordering.
type fakeSlot struct {
	items     map[string][]cartdom.LineItem
	reads     int
	writes    int
	readErr   error
	failWrite bool
}

func newFakeSlot() *fakeSlot {
	return &fakeSlot{items: map[string][]cartdom.LineItem{}}
}

func (s *fakeSlot) Read(_ context.Context, ownerID string) ([]cartdom.LineItem, bool, error) {
	s.reads++
	if s.readErr != nil {
		return nil, false, s.readErr
	}
	items, ok := s.items[ownerID]
	return items, ok, nil
}

func (s *fakeSlot) Write(_ context.Context, ownerID string, items []cartdom.LineItem) error {
	if s.failWrite {
		return errors.New("quota exceeded")
	}
	s.writes++
	s.items[ownerID] = append([]cartdom.LineItem(nil), items...)
	return nil
}

func (s *fakeSlot) Delete(_ context.Context, ownerID string) error {
	delete(s.items, ownerID)
	return nil
}

func lineItem(qty int) cartdom.LineItem {
	return cartdom.LineItem{
		ProductID: "1", Title: "Classic White T-Shirt", UnitPrice: 24.99,
		Size: "M", Color: "black", Quantity: qty, Stock: 5,
	}
}

func TestCartGetReadsSlotBeforeAnyWrite(t *testing.T) {
	slot := newFakeSlot()
	slot.items["ava"] = []cartdom.LineItem{lineItem(2)}
	uc := NewCartUsecase(slot)

	c, err := uc.Get(context.Background(), "ava")
	require.NoError(t, err)

	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, 1, slot.reads)
	// a plain read must never clobber the saved cart with an empty write
	assert.Equal(t, 0, slot.writes)
}

func TestCartMutationsPersistEveryTime(t *testing.T) {
	slot := newFakeSlot()
	uc := NewCartUsecase(slot)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "ava", lineItem(2))
	require.NoError(t, err)
	_, err = uc.SetItemQuantity(ctx, "ava", lineItem(0).Key(), 4)
	require.NoError(t, err)
	_, err = uc.RemoveItem(ctx, "ava", lineItem(0).Key())
	require.NoError(t, err)

	assert.Equal(t, 3, slot.writes)
	assert.Empty(t, slot.items["ava"])
}

func TestCartAddClampsAcrossSessions(t *testing.T) {
	slot := newFakeSlot()
	ctx := context.Background()

	// first session adds 2, a later bridge instance adds 4 of the same key
	_, err := NewCartUsecase(slot).AddItem(ctx, "ava", lineItem(2))
	require.NoError(t, err)
	c, err := NewCartUsecase(slot).AddItem(ctx, "ava", lineItem(4))
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, slot.items["ava"][0].Quantity)
}

func TestCartUnreadableSlotReadsAsEmpty(t *testing.T) {
	slot := newFakeSlot()
	slot.readErr = errors.New("parse failure")
	uc := NewCartUsecase(slot)

	c, err := uc.Get(context.Background(), "ava")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount())
}

func TestCartWriteFailureIsSwallowed(t *testing.T) {
	slot := newFakeSlot()
	slot.failWrite = true
	uc := NewCartUsecase(slot)

	c, err := uc.AddItem(context.Background(), "ava", lineItem(1))
	require.NoError(t, err)
	// the in-memory state is still consistent even though persistence failed
	assert.Equal(t, 1, c.ItemCount())
}

func TestCartClearDeletesSlot(t *testing.T) {
	slot := newFakeSlot()
	uc := NewCartUsecase(slot)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "ava", lineItem(2))
	require.NoError(t, err)

	c, err := uc.Clear(ctx, "ava")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	_, ok := slot.items["ava"]
	assert.False(t, ok)
}

func TestCartBlankOwnerRejected(t *testing.T) {
	uc := NewCartUsecase(newFakeSlot())
	_, err := uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}
