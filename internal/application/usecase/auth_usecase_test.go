package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanthreads/internal/domain/common"
	userdom "urbanthreads/internal/domain/user"
)

type fakeUserRepo struct {
	byID    map[string]userdom.User
	byEmail map[string]userdom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]userdom.User{}, byEmail: map[string]userdom.User{}}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (userdom.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (userdom.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u userdom.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return userdom.ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

// staticTokens maps tokens to user ids without real signing.
type staticTokens struct{ n int }

func (t *staticTokens) Issue(userID string) (string, error) {
	t.n++
	return fmt.Sprintf("tok-%d|%s", t.n, userID), nil
}

func (t *staticTokens) Verify(token string) (string, error) {
	_, uid, ok := strings.Cut(token, "|")
	if !ok {
		return "", fmt.Errorf("bad token")
	}
	return uid, nil
}

func TestSignupLoginIdentifyRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, &staticTokens{})
	ctx := context.Background()

	token, pub, err := uc.Signup(ctx, "Ava Chen", "Ava@Example.com ", "sup3rsecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ava@example.com", pub.Email)
	assert.Equal(t, userdom.RoleUser, pub.Role)

	token2, pub2, err := uc.Login(ctx, "ava@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, pub.ID, pub2.ID)

	u, err := uc.Identify(ctx, token2)
	require.NoError(t, err)
	assert.Equal(t, pub.ID, u.ID)
	assert.Equal(t, "Ava Chen", u.Name)
}

func TestSignupValidation(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), &staticTokens{})
	ctx := context.Background()

	_, _, err := uc.Signup(ctx, "", "a@b.c", "longenough")
	assert.Equal(t, common.CodeValidation, common.CodeOf(err))

	_, _, err = uc.Signup(ctx, "Ava", "a@b.c", "short")
	assert.Equal(t, common.CodeValidation, common.CodeOf(err))

	_, _, err = uc.Signup(ctx, "Ava", "not-an-email", "longenough")
	assert.Equal(t, common.CodeValidation, common.CodeOf(err))
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), &staticTokens{})
	ctx := context.Background()

	_, _, err := uc.Signup(ctx, "Ava", "ava@example.com", "sup3rsecret")
	require.NoError(t, err)

	_, _, err = uc.Signup(ctx, "Other Ava", "AVA@example.com", "different1")
	assert.Equal(t, common.CodeValidation, common.CodeOf(err))
}

func TestLoginRejectsWrongEmailAndWrongPasswordAlike(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), &staticTokens{})
	ctx := context.Background()

	_, _, err := uc.Signup(ctx, "Ava", "ava@example.com", "sup3rsecret")
	require.NoError(t, err)

	_, _, errEmail := uc.Login(ctx, "nobody@example.com", "sup3rsecret")
	_, _, errPass := uc.Login(ctx, "ava@example.com", "wrongpass")

	assert.Equal(t, common.CodeValidation, common.CodeOf(errEmail))
	assert.Equal(t, common.CodeValidation, common.CodeOf(errPass))
	assert.Equal(t, common.MessageOf(errEmail), common.MessageOf(errPass))
}

func TestIdentifyRejectsGarbageToken(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), &staticTokens{})

	_, err := uc.Identify(context.Background(), "")
	assert.Equal(t, common.CodeAuth, common.CodeOf(err))

	_, err = uc.Identify(context.Background(), "garbage")
	assert.Equal(t, common.CodeAuth, common.CodeOf(err))
}

func TestIdentifyUnknownUserIs404(t *testing.T) {
	tokens := &staticTokens{}
	uc := NewAuthUsecase(newFakeUserRepo(), tokens)

	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	_, idErr := uc.Identify(context.Background(), token)
	assert.Equal(t, common.CodeNotFound, common.CodeOf(idErr))
}
