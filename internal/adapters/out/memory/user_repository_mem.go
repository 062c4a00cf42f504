// internal/adapters/out/memory/user_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	userdom "urbanthreads/internal/domain/user"
)

// UserRepositoryMem implements user.Repository on instance-scoped maps.
type UserRepositoryMem struct {
	mu      sync.RWMutex
	byID    map[string]userdom.User
	byEmail map[string]userdom.User
}

func NewUserRepositoryMem() *UserRepositoryMem {
	return &UserRepositoryMem{
		byID:    map[string]userdom.User{},
		byEmail: map[string]userdom.User{},
	}
}

func (r *UserRepositoryMem) GetByID(_ context.Context, id string) (userdom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *UserRepositoryMem) GetByEmail(_ context.Context, email string) (userdom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[userdom.NormalizeEmail(email)]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *UserRepositoryMem) Create(_ context.Context, u userdom.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return userdom.ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}
