package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelista/backend/internal/auth"
	"github.com/cinelista/backend/internal/config"
	"github.com/cinelista/backend/internal/utils"
)

func newTestJWTService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(&config.JWTSettings{
		Secret: "test-secret-key-for-unit-tests",
		Expiry: expiry,
		Issuer: "cinelista-test",
	})
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, err := service.GenerateToken(42, "ana", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "cinelista-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, err := service.GenerateToken(42, "ana", "ana@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.StatusCode)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestJWTService(time.Hour)
	other := auth.NewJWTService(&config.JWTSettings{
		Secret: "a-different-secret",
		Expiry: time.Hour,
		Issuer: "cinelista-test",
	})

	token, err := service.GenerateToken(42, "ana", "ana@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ExtractUserIDFromToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, err := service.GenerateToken(7, "bruno", "bruno@example.com")
	require.NoError(t, err)

	userID, err := service.ExtractUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}
