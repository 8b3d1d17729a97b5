package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/noveltopia/noveltopia-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The user's HashedPassword must already be populated; the store
	// never sees the plaintext password.
	// Returns ErrUserExists if the username or email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// UsernameOrEmailTaken reports whether any existing user already
	// holds the given username or email. This is a fast-path pre-check
	// only; the unique indexes remain the source of truth for the
	// uniqueness invariant.
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)
}
