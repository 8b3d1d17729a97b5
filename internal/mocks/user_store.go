package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/noveltopia/noveltopia-api/internal/domain"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn               func(ctx context.Context, user *domain.User) error
	GetByIDFn              func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn        func(ctx context.Context, username string) (*domain.User, error)
	UsernameOrEmailTakenFn func(ctx context.Context, username, email string) (bool, error)

	// Data for the default implementation, keyed by username
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if user.HashedPassword == "" {
		return fmt.Errorf("%w: user has no hashed password", store.ErrInvalidEntity)
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return store.ErrUserExists
		}
	}

	m.Users[user.Username] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// UsernameOrEmailTaken implements the UserStore interface
func (m *MockUserStore) UsernameOrEmailTaken(
	ctx context.Context,
	username, email string,
) (bool, error) {
	if m.UsernameOrEmailTakenFn != nil {
		return m.UsernameOrEmailTakenFn(ctx, username, email)
	}

	for _, user := range m.Users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}

	return false, nil
}
