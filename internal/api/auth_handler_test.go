package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noveltopia/noveltopia-api/internal/domain"
	"github.com/noveltopia/noveltopia-api/internal/mocks"
	"github.com/noveltopia/noveltopia-api/internal/service/auth"
	"github.com/noveltopia/noveltopia-api/internal/store"
)

// newAuthHandler builds an AuthHandler over a fresh mock store with a
// fast bcrypt cost for tests.
func newAuthHandler(userStore *mocks.MockUserStore) *AuthHandler {
	return NewAuthHandler(
		userStore,
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewBcryptVerifier(),
		nil,
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// seedUser stores a user with a real bcrypt hash of the given password.
func seedUser(t *testing.T, userStore *mocks.MockUserStore, username, email, password string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(username, email, password)
	require.NoError(t, err)

	hash, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	user.HashedPassword = hash
	user.Password = ""

	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestSignupMissingFields(t *testing.T) {
	testCases := []struct {
		name string
		body map[string]string
	}{
		{"missing username", map[string]string{"password": "secret1", "email": "a@x.com"}},
		{"missing password", map[string]string{"username": "alice", "email": "a@x.com"}},
		{"missing email", map[string]string{"username": "alice", "password": "secret1"}},
		{"empty username", map[string]string{"username": "", "password": "secret1", "email": "a@x.com"}},
		{"empty body", map[string]string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userStore := mocks.NewMockUserStore()
			handler := newAuthHandler(userStore)

			rr := postJSON(t, handler.Signup, "/signup", tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "Username, password and email are required", decodeBody(t, rr)["error"])
			assert.Empty(t, userStore.Users, "no user record may be created on a 400")
		})
	}
}

func TestSignupSuccess(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)

	rr := postJSON(t, handler.Signup, "/signup", map[string]string{
		"username": "alice",
		"password": "secret1",
		"email":    "a@x.com",
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Registration successful. Welcome, alice!", decodeBody(t, rr)["message"])

	created := userStore.Users["alice"]
	require.NotNil(t, created, "user record must be persisted")
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, domain.DefaultGenre, created.Genre)
	assert.Empty(t, created.Password, "plaintext password must not be retained")

	// The stored hash is never the plaintext, and the plaintext
	// verifies against it.
	require.NotEmpty(t, created.HashedPassword)
	assert.NotEqual(t, "secret1", created.HashedPassword)
	assert.NoError(t, auth.NewBcryptVerifier().Compare(created.HashedPassword, "secret1"))
}

func TestSignupFormURLEncoded(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "secret1")
	form.Set("email", "a@x.com")

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	handler.Signup(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotNil(t, userStore.Users["alice"])
}

func TestSignupConflict(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)
	existing := seedUser(t, userStore, "alice", "a@x.com", "secret1")

	testCases := []struct {
		name string
		body map[string]string
	}{
		{"same username", map[string]string{"username": "alice", "password": "other", "email": "b@x.com"}},
		{"same email", map[string]string{"username": "bob", "password": "other", "email": "a@x.com"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postJSON(t, handler.Signup, "/signup", tc.body)

			assert.Equal(t, http.StatusConflict, rr.Code)
			assert.Equal(t, "Username or email already taken", decodeBody(t, rr)["error"])
			assert.Len(t, userStore.Users, 1, "no new record may be created on a 409")
			assert.Equal(t, existing, userStore.Users["alice"], "existing record must be unchanged")
		})
	}
}

// TestSignupConflictOnRacedInsert covers the path where a concurrent
// signup slips past the pre-check and the unique index rejects the
// insert: the client still sees the same 409.
func TestSignupConflictOnRacedInsert(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	userStore.UsernameOrEmailTakenFn = func(ctx context.Context, username, email string) (bool, error) {
		return false, nil
	}
	userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		return store.ErrUserExists
	}
	handler := newAuthHandler(userStore)

	rr := postJSON(t, handler.Signup, "/signup", map[string]string{
		"username": "alice",
		"password": "secret1",
		"email":    "a@x.com",
	})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Username or email already taken", decodeBody(t, rr)["error"])
}

func TestSignupStoreFailure(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	userStore.UsernameOrEmailTakenFn = func(ctx context.Context, username, email string) (bool, error) {
		return false, errors.New("connection refused")
	}
	handler := newAuthHandler(userStore)

	rr := postJSON(t, handler.Signup, "/signup", map[string]string{
		"username": "alice",
		"password": "secret1",
		"email":    "a@x.com",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Server error during signup", decodeBody(t, rr)["error"])
}

func TestLoginUnknownUsername(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)

	rr := postJSON(t, handler.Login, "/login", map[string]string{
		"username": "nobody",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Cannot find username!", body["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)
	seedUser(t, userStore, "alice", "a@x.com", "secret1")

	rr := postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Wrong password!", body["message"])
}

func TestLoginSuccess(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)
	seedUser(t, userStore, "alice", "a@x.com", "secret1")

	rr := postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])

	// The user projection carries exactly username and email; no
	// password field, hashed or plain, may appear.
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "response must carry a user object")
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "hashed_password")
	assert.Len(t, user, 2)
}

func TestLoginStoreFailure(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	userStore.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return nil, errors.New("connection refused")
	}
	handler := newAuthHandler(userStore)

	rr := postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Server error during login", decodeBody(t, rr)["error"])
}

// TestSignupLoginFlow walks the documented end-to-end scenario:
// signup succeeds, a second signup with the same username conflicts,
// login succeeds with the right password and fails with the wrong one.
func TestSignupLoginFlow(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore)

	rr := postJSON(t, handler.Signup, "/signup", map[string]string{
		"username": "alice", "password": "secret1", "email": "a@x.com",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = postJSON(t, handler.Signup, "/signup", map[string]string{
		"username": "alice", "password": "secret1", "email": "other@x.com",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice", "password": "secret1",
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeBody(t, rr)["success"])

	rr = postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
