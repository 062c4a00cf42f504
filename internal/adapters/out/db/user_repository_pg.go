// internal/adapters/out/db/user_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	userdom "urbanthreads/internal/domain/user"
)

// UserRepositoryPG is a PostgreSQL implementation of user.Repository.
// Email uniqueness rides on the users_email_key constraint.
type UserRepositoryPG struct {
	DB *sql.DB
}

func NewUserRepositoryPG(conn *sql.DB) *UserRepositoryPG {
	return &UserRepositoryPG{DB: conn}
}

const userColumns = "id, name, email, password_hash, role, created_at, updated_at"

func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (userdom.User, error) {
	if r == nil || r.DB == nil {
		return userdom.User{}, errors.New("user_repository_pg: db is nil")
	}

	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", strings.TrimSpace(id))
	return scanUser(row)
}

func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (userdom.User, error) {
	if r == nil || r.DB == nil {
		return userdom.User{}, errors.New("user_repository_pg: db is nil")
	}

	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", userdom.NormalizeEmail(email))
	return scanUser(row)
}

func (r *UserRepositoryPG) Create(ctx context.Context, u userdom.User) error {
	if r == nil || r.DB == nil {
		return errors.New("user_repository_pg: db is nil")
	}

	const q = `
INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctx, q,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		// 23505 = unique_violation
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return userdom.ErrEmailTaken
		}
		return err
	}
	return nil
}

func scanUser(row rowScanner) (userdom.User, error) {
	var u userdom.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userdom.User{}, userdom.ErrNotFound
		}
		return userdom.User{}, err
	}
	return u, nil
}
