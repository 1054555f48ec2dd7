package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelista/backend/internal/auth"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	service := newTestJWTService(time.Hour)
	token, err := service.GenerateToken(42, "ana", "ana@example.com")
	require.NoError(t, err)

	var gotUserID int64
	var gotUsername, gotEmail string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = auth.GetUserID(r)
		gotUsername, _ = auth.GetUsername(r)
		gotEmail, _ = auth.GetEmail(r)
		w.WriteHeader(http.StatusOK)
	})

	provider := auth.NewJWTAuthProvider(service)
	middleware := auth.AuthMiddleware(handler, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "ana", gotUsername)
	assert.Equal(t, "ana@example.com", gotEmail)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	service := newTestJWTService(time.Hour)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	provider := auth.NewJWTAuthProvider(service)
	middleware := auth.AuthMiddleware(handler, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	service := newTestJWTService(time.Hour)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	provider := auth.NewJWTAuthProvider(service)
	middleware := auth.AuthMiddleware(handler, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := newTestJWTService(-time.Minute)
	token, err := expired.GenerateToken(42, "ana", "ana@example.com")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	provider := auth.NewJWTAuthProvider(newTestJWTService(time.Hour))
	middleware := auth.AuthMiddleware(handler, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_AttachesRequestID(t *testing.T) {
	service := newTestJWTService(time.Hour)
	token, err := service.GenerateToken(1, "ana", "ana@example.com")
	require.NoError(t, err)

	var requestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ = auth.GetRequestID(r)
	})

	provider := auth.NewJWTAuthProvider(service)
	middleware := auth.AuthMiddleware(handler, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.ServeHTTP(rec, req)

	assert.NotEmpty(t, requestID)
}
