package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/noveltopia/noveltopia-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
type BookStore interface {
	// Create saves a new book to the store.
	// Returns ErrBookTitleExists if the title is already taken.
	// Returns validation errors from the domain Book if data is invalid.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its unique ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// TitleTaken reports whether a book with the given title already
	// exists. Pre-check only; the unique index on the title remains the
	// source of truth.
	TitleTaken(ctx context.Context, title string) (bool, error)
}
