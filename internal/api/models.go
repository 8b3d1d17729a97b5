package api

import (
	"net/url"

	"github.com/noveltopia/noveltopia-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required"`
}

// DecodeForm populates the request from URL-encoded form values.
func (req *SignupRequest) DecodeForm(values url.Values) {
	req.Username = values.Get("username")
	req.Password = values.Get("password")
	req.Email = values.Get("email")
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DecodeForm populates the request from URL-encoded form values.
func (req *LoginRequest) DecodeForm(values url.Values) {
	req.Username = values.Get("username")
	req.Password = values.Get("password")
}

// WriteBookRequest defines the payload for the book creation endpoint.
// Description, content and cover are optional.
type WriteBookRequest struct {
	BookTitle  string `json:"booktitle"  validate:"required"`
	BookAuthor string `json:"bookauthor" validate:"required"`
	BookGenre  string `json:"bookgenre"  validate:"required"`
	BookDesc   string `json:"bookdesc"`
	Content    string `json:"content"`
	BookCover  string `json:"bookcover"`
}

// DecodeForm populates the request from URL-encoded form values.
func (req *WriteBookRequest) DecodeForm(values url.Values) {
	req.BookTitle = values.Get("booktitle")
	req.BookAuthor = values.Get("bookauthor")
	req.BookGenre = values.Get("bookgenre")
	req.BookDesc = values.Get("bookdesc")
	req.Content = values.Get("content")
	req.BookCover = values.Get("bookcover")
}

// MessageResponse defines a success response carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteBookResponse defines the successful response for the book
// creation endpoint, returning the stored record including its
// server-generated ID and timestamps.
type WriteBookResponse struct {
	Message string       `json:"message"`
	Book    *domain.Book `json:"book"`
}

// UserProjection is the minimal user view returned on login.
// It deliberately contains no password field, hashed or plain.
type UserProjection struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse defines the response body for the login endpoint, used
// for both the success case and the two authentication failures. The
// original contract keys these on a success flag rather than on the
// error envelope used elsewhere.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    *UserProjection `json:"user,omitempty"`
}
