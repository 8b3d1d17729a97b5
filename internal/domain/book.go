package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Book
var (
	ErrEmptyBookID     = errors.New("book ID cannot be empty")
	ErrEmptyBookTitle  = errors.New("book title cannot be empty")
	ErrEmptyBookAuthor = errors.New("book author cannot be empty")
	ErrEmptyBookGenre  = errors.New("book genre cannot be empty")
)

// Book represents a book record submitted by an author.
// The title is globally unique; the storage layer enforces this with a
// unique index.
type Book struct {
	ID         uuid.UUID `json:"id"`
	BookTitle  string    `json:"booktitle"`
	BookAuthor string    `json:"bookauthor"`
	BookGenre  string    `json:"bookgenre"`
	BookDesc   string    `json:"bookdesc,omitempty"`
	Content    string    `json:"content,omitempty"`
	BookCover  string    `json:"bookcover,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewBook creates a new Book with the given fields. Description, content
// and cover are optional and may be empty.
// It generates a new UUID for the book ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewBook(title, author, genre, desc, content, cover string) (*Book, error) {
	book := &Book{
		ID:         uuid.New(),
		BookTitle:  title,
		BookAuthor: author,
		BookGenre:  genre,
		BookDesc:   desc,
		Content:    content,
		BookCover:  cover,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any required field is missing.
func (b *Book) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBookID
	}

	if b.BookTitle == "" {
		return ErrEmptyBookTitle
	}

	if b.BookAuthor == "" {
		return ErrEmptyBookAuthor
	}

	if b.BookGenre == "" {
		return ErrEmptyBookGenre
	}

	return nil
}
