package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/noveltopia/noveltopia-api/internal/domain"
	"github.com/noveltopia/noveltopia-api/internal/platform/logger"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
// A duplicate title that races past the handler's pre-check is caught
// by the unique index and surfaced as store.ErrBookTitleExists.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return err
	}

	query := `
		INSERT INTO books (id, booktitle, bookauthor, bookgenre, bookdesc, content, bookcover, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		book.ID,
		book.BookTitle,
		book.BookAuthor,
		book.BookGenre,
		book.BookDesc,
		book.Content,
		book.BookCover,
		book.CreatedAt,
		book.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("unique violation during book creation",
				slog.String("book_id", book.ID.String()),
				slog.String("booktitle", book.BookTitle))
			return fmt.Errorf("%w: %v", store.ErrBookTitleExists, err)
		}

		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("book_id", book.ID.String()))
		return MapError(err)
	}

	log.Info("book created successfully",
		slog.String("book_id", book.ID.String()),
		slog.String("booktitle", book.BookTitle))
	return nil
}

// GetByID implements store.BookStore.GetByID
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, booktitle, bookauthor, bookgenre, bookdesc, content, bookcover, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.BookTitle,
		&book.BookAuthor,
		&book.BookGenre,
		&book.BookDesc,
		&book.Content,
		&book.BookCover,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.String("book_id", id.String()))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.String("book_id", id.String()))
		return nil, MapError(err)
	}

	return &book, nil
}

// TitleTaken implements store.BookStore.TitleTaken
func (s *PostgresBookStore) TitleTaken(ctx context.Context, title string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM books WHERE booktitle = $1
		)
	`

	var taken bool
	if err := s.db.QueryRowContext(ctx, query, title).Scan(&taken); err != nil {
		log.Error("failed to check book title availability",
			slog.String("error", err.Error()),
			slog.String("booktitle", title))
		return false, MapError(err)
	}

	return taken, nil
}
