package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Chapter
var (
	ErrEmptyChapterID      = errors.New("chapter ID cannot be empty")
	ErrEmptyChapterBookID  = errors.New("chapter book ID cannot be empty")
	ErrEmptyChapterTitle   = errors.New("chapter title cannot be empty")
	ErrEmptyChapterContent = errors.New("chapter content cannot be empty")
	ErrInvalidChapterNum   = errors.New("chapter number must be positive")
)

// Chapter represents one chapter of a book. The entity is declared and
// persisted but no routes operate on it yet.
type Chapter struct {
	ID             uuid.UUID `json:"id"`
	BookID         uuid.UUID `json:"bookId"`
	ChapterTitle   string    `json:"chapterTitle"`
	ChapterContent string    `json:"chapterContent"`
	ChapterNumber  int       `json:"chapterNumber"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewChapter creates a new Chapter for the given book.
func NewChapter(bookID uuid.UUID, title, content string, number int) (*Chapter, error) {
	chapter := &Chapter{
		ID:             uuid.New(),
		BookID:         bookID,
		ChapterTitle:   title,
		ChapterContent: content,
		ChapterNumber:  number,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := chapter.Validate(); err != nil {
		return nil, err
	}

	return chapter, nil
}

// Validate checks if the Chapter has valid data.
func (c *Chapter) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyChapterID
	}

	if c.BookID == uuid.Nil {
		return ErrEmptyChapterBookID
	}

	if c.ChapterTitle == "" {
		return ErrEmptyChapterTitle
	}

	if c.ChapterContent == "" {
		return ErrEmptyChapterContent
	}

	if c.ChapterNumber <= 0 {
		return ErrInvalidChapterNum
	}

	return nil
}
