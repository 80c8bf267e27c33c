package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gedeon/andikacv/internal/config"
	"github.com/gedeon/andikacv/internal/server/middleware"
	"github.com/gedeon/andikacv/internal/session"
	"github.com/gedeon/andikacv/internal/types"
)

func testAuthHandler() (*AuthHandler, *fakeProfileStore) {
	store := newFakeProfileStore()
	userService := NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
	return NewAuthHandler(userService, testJWTService(), session.NewStore(nil)), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	h, _ := testAuthHandler()

	rec := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Email:    "alice@example.com",
		Password: "long-enough-password",
		FullName: "Alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Profile.Email)
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h, _ := testAuthHandler()

	tests := []struct {
		name string
		req  types.RegisterRequest
	}{
		{"missing email", types.RegisterRequest{Password: "long-enough-password"}},
		{"bad email", types.RegisterRequest{Email: "not-an-email", Password: "long-enough-password"}},
		{"short password", types.RegisterRequest{Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/auth/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, _ := testAuthHandler()
	req := types.RegisterRequest{Email: "bob@example.com", Password: "long-enough-password"}

	rec := postJSON(t, h.Register, "/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Register, "/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h, _ := testAuthHandler()

	rec := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Email:    "carol@example.com",
		Password: "long-enough-password",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email:    "carol@example.com",
		Password: "long-enough-password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	rec = postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong-password!!",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	h, store := testAuthHandler()
	profile, err := store.CreateProfile(context.Background(), "dave@example.com", "hash", "Dave")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), profile.ID))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got types.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, "dave@example.com", got.Email)
}

func TestAuthHandler_UpdateMe(t *testing.T) {
	h, store := testAuthHandler()
	profile, err := store.CreateProfile(context.Background(), "erin@example.com", "hash", "Erin")
	require.NoError(t, err)

	payload, err := json.Marshal(types.UpdateProfileRequest{FullName: "Erin M"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(payload))
	req = req.WithContext(middleware.WithUserID(req.Context(), profile.ID))
	rec := httptest.NewRecorder()
	h.UpdateMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got types.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Erin M", got.FullName)
	assert.Equal(t, "Erin M", store.profiles[profile.ID].FullName)
}

func TestAuthHandler_UpdateMe_Unauthenticated(t *testing.T) {
	h, _ := testAuthHandler()

	req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader([]byte(`{"fullName":"X"}`)))
	rec := httptest.NewRecorder()
	h.UpdateMe(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h, _ := testAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout_WithoutSessionStore(t *testing.T) {
	// Without Redis, logout still succeeds; the token simply ages out.
	h, _ := testAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req = req.WithContext(middleware.WithTokenID(middleware.WithUserID(req.Context(), uuid.New()), uuid.NewString()))
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
