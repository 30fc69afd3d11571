package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajudas/field-sales-api/internal/auth"
	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.users[username], nil
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {Username: "admin", PasswordHash: hash, Role: entity.RoleAdmin, FullName: "Administrator"},
	}}
	return NewAuthHandler(usecase.NewLoginUseCase(repo), "test-secret", time.Hour)
}

func TestHandleLoginSuccess(t *testing.T) {
	h := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "admin", resp.User.Username)
	assert.Empty(t, resp.User.PasswordHash)

	claims, err := auth.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestHandleLoginGenericFailureMessage(t *testing.T) {
	h := newAuthHandler(t)

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nobody","password":"whatever"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Invalid username or password", resp.Message)
	}
}

func TestHandleLoginBadJSON(t *testing.T) {
	h := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
