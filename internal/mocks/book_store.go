package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/noveltopia/noveltopia-api/internal/domain"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// MockBookStore implements store.BookStore for testing
type MockBookStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, book *domain.Book) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	TitleTakenFn func(ctx context.Context, title string) (bool, error)

	// Data for the default implementation, keyed by title
	Books map[string]*domain.Book
}

// NewMockBookStore creates a new mock store with initialized defaults
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Books: make(map[string]*domain.Book),
	}
}

// Ensure MockBookStore implements store.BookStore interface
var _ store.BookStore = (*MockBookStore)(nil)

// Create implements the BookStore interface
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	if _, exists := m.Books[book.BookTitle]; exists {
		return store.ErrBookTitleExists
	}

	m.Books[book.BookTitle] = book
	return nil
}

// GetByID implements the BookStore interface
func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, book := range m.Books {
		if book.ID == id {
			return book, nil
		}
	}

	return nil, store.ErrBookNotFound
}

// TitleTaken implements the BookStore interface
func (m *MockBookStore) TitleTaken(ctx context.Context, title string) (bool, error) {
	if m.TitleTakenFn != nil {
		return m.TitleTakenFn(ctx, title)
	}

	_, exists := m.Books[title]
	return exists, nil
}
