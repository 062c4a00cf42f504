// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "urbanthreads/internal/domain/user"
)

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: user id
// - email is stored normalized, uniqueness enforced by a pre-create query
//   (single-writer signup flow; no transaction needed at this scale)
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *UserRepositoryFS) GetByID(ctx context.Context, id string) (userdom.User, error) {
	if r == nil || r.Client == nil {
		return userdom.User{}, errors.New("user_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(id)
	if uid == "" {
		return userdom.User{}, userdom.ErrNotFound
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return userdom.User{}, userdom.ErrNotFound
		}
		return userdom.User{}, err
	}

	u := userFromSnapshot(snap.Data())
	u.ID = uid
	return u, nil
}

func (r *UserRepositoryFS) GetByEmail(ctx context.Context, email string) (userdom.User, error) {
	if r == nil || r.Client == nil {
		return userdom.User{}, errors.New("user_repository_fs: firestore client is nil")
	}

	addr := userdom.NormalizeEmail(email)
	if addr == "" {
		return userdom.User{}, userdom.ErrNotFound
	}

	snaps, err := r.col().Where("email", "==", addr).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return userdom.User{}, err
	}
	if len(snaps) == 0 {
		return userdom.User{}, userdom.ErrNotFound
	}

	u := userFromSnapshot(snaps[0].Data())
	u.ID = snaps[0].Ref.ID
	return u, nil
}

func (r *UserRepositoryFS) Create(ctx context.Context, u userdom.User) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}

	if _, err := r.GetByEmail(ctx, u.Email); err == nil {
		return userdom.ErrEmailTaken
	} else if !errors.Is(err, userdom.ErrNotFound) {
		return err
	}

	_, err := r.col().Doc(u.ID).Set(ctx, u)
	return err
}

func userFromSnapshot(raw map[string]any) userdom.User {
	if raw == nil {
		return userdom.User{}
	}

	u := userdom.User{
		ID:           asString(raw["id"]),
		Name:         asString(raw["name"]),
		Email:        asString(raw["email"]),
		PasswordHash: asString(raw["passwordHash"]),
		Role:         asString(raw["role"]),
	}
	if u.Role == "" {
		u.Role = userdom.RoleUser
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		u.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		u.UpdatedAt = t
	}
	return u
}
