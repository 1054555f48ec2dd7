package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cinelista/backend/internal/constants"
)

// HashPassword generates a bcrypt hash of the provided password.
// The salt is embedded in the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt hash.
// It returns false, nil for a mismatch; an error only for malformed hashes.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}

// GenerateResetToken generates a secure random reset token and its SHA-256
// hash. The plain token is emailed to the user; only the hash is stored.
func GenerateResetToken() (string, string, error) {
	tokenBytes := make([]byte, constants.ResetTokenByteLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate token bytes: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	return token, HashResetToken(token), nil
}

// HashResetToken returns the hex-encoded SHA-256 hash of a reset token.
func HashResetToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
