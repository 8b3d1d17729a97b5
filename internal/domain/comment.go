package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Comment
var (
	ErrEmptyCommentID     = errors.New("comment ID cannot be empty")
	ErrEmptyCommentUserID = errors.New("comment user ID cannot be empty")
	ErrEmptyCommentText   = errors.New("comment text cannot be empty")
)

// Comment represents free-text feedback left by a user on a blog or a
// book. The original schema allows both references to be absent and
// does not enforce exactly-one; that behavior is kept. The entity is
// declared and persisted but no routes operate on it yet.
type Comment struct {
	ID        uuid.UUID  `json:"id"`
	BlogID    *uuid.UUID `json:"blogsid,omitempty"`
	BookID    *uuid.UUID `json:"bookId,omitempty"`
	UserID    uuid.UUID  `json:"userId"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewComment creates a new Comment by the given user. Either blogID or
// bookID may be nil.
func NewComment(blogID, bookID *uuid.UUID, userID uuid.UUID, text string) (*Comment, error) {
	comment := &Comment{
		ID:        uuid.New(),
		BlogID:    blogID,
		BookID:    bookID,
		UserID:    userID,
		Comment:   text,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCommentUserID
	}

	if c.Comment == "" {
		return ErrEmptyCommentText
	}

	return nil
}
