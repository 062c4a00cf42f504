// internal/domain/user/repository_port.go
package user

import "context"

// Repository is the persistence port for accounts.
//
// Not-found policy: GetByID / GetByEmail return ErrNotFound.
// Create returns ErrEmailTaken when the normalized email already exists.
type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) error
}
