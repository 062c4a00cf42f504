package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanthreads/internal/domain/common"
	wishdom "urbanthreads/internal/domain/wishlist"
)

type fakeWishlistRepo struct {
	byUser map[string]wishdom.Wishlist
	saves  int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{byUser: map[string]wishdom.Wishlist{}}
}

func (r *fakeWishlistRepo) Get(_ context.Context, userID string) (wishdom.Wishlist, error) {
	w, ok := r.byUser[userID]
	if !ok {
		return wishdom.New(userID), nil
	}
	return w, nil
}

func (r *fakeWishlistRepo) Save(_ context.Context, w wishdom.Wishlist) error {
	r.saves++
	r.byUser[w.UserID] = w
	return nil
}

func TestWishlistListStartsEmpty(t *testing.T) {
	uc := NewWishlistUsecase(newFakeWishlistRepo(), &fakeProductRepo{products: testProducts()})

	ids, err := uc.List(context.Background(), "ava")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	repo := newFakeWishlistRepo()
	uc := NewWishlistUsecase(repo, &fakeProductRepo{products: testProducts()})
	ctx := context.Background()

	ids, err := uc.Add(ctx, "ava", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)

	ids, err = uc.Add(ctx, "ava", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)
	// the duplicate add must not rewrite storage
	assert.Equal(t, 1, repo.saves)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	uc := NewWishlistUsecase(newFakeWishlistRepo(), &fakeProductRepo{products: testProducts()})

	_, err := uc.Add(context.Background(), "ava", "missing")
	assert.Equal(t, common.CodeNotFound, common.CodeOf(err))
}

func TestWishlistRemoveIsIdempotent(t *testing.T) {
	repo := newFakeWishlistRepo()
	uc := NewWishlistUsecase(repo, &fakeProductRepo{products: testProducts()})
	ctx := context.Background()

	_, err := uc.Add(ctx, "ava", "1")
	require.NoError(t, err)
	_, err = uc.Add(ctx, "ava", "2")
	require.NoError(t, err)

	ids, err := uc.Remove(ctx, "ava", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)

	// removing a product that was never wishlisted succeeds and changes nothing
	ids, err = uc.Remove(ctx, "ava", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)
}

func TestWishlistRequiresUser(t *testing.T) {
	uc := NewWishlistUsecase(newFakeWishlistRepo(), &fakeProductRepo{products: testProducts()})

	_, err := uc.List(context.Background(), " ")
	assert.Equal(t, common.CodeAuth, common.CodeOf(err))
}
