package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noveltopia/noveltopia-api/internal/domain"
)

func TestNewBook(t *testing.T) {
	t.Run("valid book", func(t *testing.T) {
		book, err := domain.NewBook("My Novel", "alice", "Fantasy", "desc", "content", "cover.png")
		require.NoError(t, err)
		require.NotNil(t, book)

		assert.NotEqual(t, uuid.Nil, book.ID)
		assert.Equal(t, "My Novel", book.BookTitle)
		assert.Equal(t, "alice", book.BookAuthor)
		assert.Equal(t, "Fantasy", book.BookGenre)
		assert.False(t, book.CreatedAt.IsZero())
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		book, err := domain.NewBook("My Novel", "alice", "Fantasy", "", "", "")
		require.NoError(t, err)
		assert.Empty(t, book.BookDesc)
		assert.Empty(t, book.Content)
		assert.Empty(t, book.BookCover)
	})

	t.Run("missing title", func(t *testing.T) {
		book, err := domain.NewBook("", "alice", "Fantasy", "", "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyBookTitle)
		assert.Nil(t, book)
	})

	t.Run("missing author", func(t *testing.T) {
		book, err := domain.NewBook("My Novel", "", "Fantasy", "", "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyBookAuthor)
		assert.Nil(t, book)
	})

	t.Run("missing genre", func(t *testing.T) {
		book, err := domain.NewBook("My Novel", "alice", "", "", "", "")
		assert.ErrorIs(t, err, domain.ErrEmptyBookGenre)
		assert.Nil(t, book)
	})
}

// The JSON field names are part of the published contract: clients
// submit and receive booktitle/bookauthor/bookgenre, and empty optional
// fields are omitted.
func TestBookJSONShape(t *testing.T) {
	book, err := domain.NewBook("My Novel", "alice", "Fantasy", "", "", "")
	require.NoError(t, err)

	payload, err := json.Marshal(book)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &fields))

	assert.Equal(t, "My Novel", fields["booktitle"])
	assert.Equal(t, "alice", fields["bookauthor"])
	assert.Equal(t, "Fantasy", fields["bookgenre"])
	assert.NotContains(t, fields, "bookdesc")
	assert.NotContains(t, fields, "content")
	assert.NotContains(t, fields, "bookcover")
}
