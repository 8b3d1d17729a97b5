package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Blog
var (
	ErrEmptyBlogID      = errors.New("blog ID cannot be empty")
	ErrEmptyBlogTitle   = errors.New("blog title cannot be empty")
	ErrEmptyBlogAuthor  = errors.New("blog author cannot be empty")
	ErrEmptyBlogContent = errors.New("blog content cannot be empty")
)

// Blog represents a blog post. The entity is declared and persisted but
// no routes operate on it yet; publishing is a planned extension.
type Blog struct {
	ID          uuid.UUID `json:"id"`
	BlogTitle   string    `json:"blogtitle"`
	BlogAuthor  string    `json:"blogauthor"`
	BlogContent string    `json:"blogcontent"`
	BlogDate    time.Time `json:"blogdate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog with the given title, author and content.
// BlogDate defaults to the creation time.
func NewBlog(title, author, content string) (*Blog, error) {
	now := time.Now().UTC()
	blog := &Blog{
		ID:          uuid.New(),
		BlogTitle:   title,
		BlogAuthor:  author,
		BlogContent: content,
		BlogDate:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks if the Blog has valid data.
func (b *Blog) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBlogID
	}

	if b.BlogTitle == "" {
		return ErrEmptyBlogTitle
	}

	if b.BlogAuthor == "" {
		return ErrEmptyBlogAuthor
	}

	if b.BlogContent == "" {
		return ErrEmptyBlogContent
	}

	return nil
}
