package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsernameAndEmail(ctx context.Context, username, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// User represents a stored user identity. PasswordHash holds the bcrypt
// hash of the password; the plaintext is never persisted.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
