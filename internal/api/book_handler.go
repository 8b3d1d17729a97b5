package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/noveltopia/noveltopia-api/internal/api/shared"
	"github.com/noveltopia/noveltopia-api/internal/domain"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// Client-facing messages for the book creation endpoint.
const (
	msgBookMissingFields = "Book title, author, and genre are required"
	msgBookConflict      = "Book title already exists"
	msgBookCreated       = "Book created successfully"
	msgBookServerError   = "Server error during book creation"
)

// BookHandler handles the book creation endpoint.
type BookHandler struct {
	bookStore store.BookStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewBookHandler creates a new BookHandler with the given dependencies.
// If logger is nil, the default logger is used.
func NewBookHandler(bookStore store.BookStore, logger *slog.Logger) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{
		bookStore: bookStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "book_handler")),
	}
}

// WriteBook handles POST /writebook.
// It validates field presence, rejects duplicate titles with a 409 and
// persists the new book, returning the stored record.
func (h *BookHandler) WriteBook(w http.ResponseWriter, r *http.Request) {
	var req WriteBookRequest

	if err := shared.DecodeRequest(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBookMissingFields)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBookMissingFields)
		return
	}

	// Fast-path rejection only; the unique index on the title is the
	// invariant enforcer for concurrent submissions.
	taken, err := h.bookStore.TitleTaken(r.Context(), req.BookTitle)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgBookServerError, err)
		return
	}
	if taken {
		shared.RespondWithError(w, r, http.StatusConflict, msgBookConflict)
		return
	}

	book, err := domain.NewBook(
		req.BookTitle,
		req.BookAuthor,
		req.BookGenre,
		req.BookDesc,
		req.Content,
		req.BookCover,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBookMissingFields)
		return
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, msgBookConflict)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgBookServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, WriteBookResponse{
		Message: msgBookCreated,
		Book:    book,
	})
}
