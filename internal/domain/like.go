package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for Like
var (
	ErrEmptyLikeID        = errors.New("like ID cannot be empty")
	ErrEmptyLikeUserID    = errors.New("like user ID cannot be empty")
	ErrEmptyLikeChapterID = errors.New("like chapter ID cannot be empty")
	ErrEmptyLikeValue     = errors.New("like value cannot be empty")
)

// Like represents a like marker left by a user on a chapter of a blog
// or a book. The marker value is a free-text string rather than a
// boolean, matching the original schema; it likely was meant to encode
// like/unlike and is kept as-is for compatibility. The entity is
// declared and persisted but no routes operate on it yet. The original
// schema carries no timestamps here.
type Like struct {
	ID        uuid.UUID  `json:"id"`
	BlogID    *uuid.UUID `json:"blogsid,omitempty"`
	BookID    *uuid.UUID `json:"bookId,omitempty"`
	UserID    uuid.UUID  `json:"userId"`
	ChapterID uuid.UUID  `json:"chaptersId"`
	Like      string     `json:"like"`
}

// NewLike creates a new Like by the given user on the given chapter.
// Either blogID or bookID may be nil.
func NewLike(blogID, bookID *uuid.UUID, userID, chapterID uuid.UUID, value string) (*Like, error) {
	like := &Like{
		ID:        uuid.New(),
		BlogID:    blogID,
		BookID:    bookID,
		UserID:    userID,
		ChapterID: chapterID,
		Like:      value,
	}

	if err := like.Validate(); err != nil {
		return nil, err
	}

	return like, nil
}

// Validate checks if the Like has valid data.
func (l *Like) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyLikeID
	}

	if l.UserID == uuid.Nil {
		return ErrEmptyLikeUserID
	}

	if l.ChapterID == uuid.Nil {
		return ErrEmptyLikeChapterID
	}

	if l.Like == "" {
		return ErrEmptyLikeValue
	}

	return nil
}
