package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/noveltopia/noveltopia-api/internal/api/shared"
	"github.com/noveltopia/noveltopia-api/internal/domain"
	"github.com/noveltopia/noveltopia-api/internal/service/auth"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// Client-facing messages for the signup and login endpoints. These are
// part of the published contract and must not change wording.
const (
	msgSignupMissingFields = "Username, password and email are required"
	msgSignupConflict      = "Username or email already taken"
	msgSignupServerError   = "Server error during signup"

	msgLoginUnknownUser   = "Cannot find username!"
	msgLoginWrongPassword = "Wrong password!"
	msgLoginSuccess       = "Login successful"
	msgLoginServerError   = "Server error during login"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	userStore        store.UserStore
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// If logger is nil, the default logger is used.
func NewAuthHandler(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup.
// It validates field presence, rejects taken usernames/emails with a
// 409, hashes the password and persists the new user.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := shared.DecodeRequest(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgSignupMissingFields)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgSignupMissingFields)
		return
	}

	// Fast-path rejection only. The unique indexes on username and
	// email remain the invariant enforcers for concurrent signups.
	taken, err := h.userStore.UsernameOrEmailTaken(r.Context(), req.Username, req.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSignupServerError, err)
		return
	}
	if taken {
		shared.RespondWithError(w, r, http.StatusConflict, msgSignupConflict)
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgSignupMissingFields)
		return
	}

	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSignupServerError, err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		// A concurrent signup may have raced past the pre-check; the
		// unique index turns that into a duplicate error, which maps to
		// the same 409 as the fast path.
		if store.IsDuplicateError(err) {
			shared.RespondWithError(w, r, http.StatusConflict, msgSignupConflict)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgSignupServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("Registration successful. Welcome, %s!", user.Username),
	})
}

// Login handles POST /login.
// The two 401 messages deliberately disclose whether the username or
// the password was wrong; this mirrors the original contract and is
// preserved for compatibility.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeRequest(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusUnauthorized, LoginResponse{
				Success: false,
				Message: msgLoginUnknownUser,
			})
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgLoginServerError, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithJSON(w, r, http.StatusUnauthorized, LoginResponse{
			Success: false,
			Message: msgLoginWrongPassword,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Success: true,
		Message: msgLoginSuccess,
		User: &UserProjection{
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
