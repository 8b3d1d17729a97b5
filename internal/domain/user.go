package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Default values applied to new users when the caller does not supply them.
const (
	DefaultGenre          = "General"
	DefaultProfilePicture = ""
)

// Common validation errors for User
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User represents a registered user of the Noveltopia application.
// Username and email are globally unique; the storage layer enforces
// this with unique indexes.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, held only between decode and hashing
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	Genre          string    `json:"genre"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, email and password.
// It generates a new UUID for the user ID, applies the genre and profile
// picture defaults, and sets the creation/update timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, email, password string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		Password:       password, // Plaintext password - must be hashed before storage
		Genre:          DefaultGenre,
		ProfilePicture: DefaultProfilePicture,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Only presence is checked: the original contract rejects nothing beyond
// missing fields.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	// Either a plaintext password (pre-hash, during registration) or a
	// stored hash (users loaded from the database) must be present.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
