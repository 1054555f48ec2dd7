package models

import (
	"time"
)

// User represents a registered user of the CineLista application.
// It contains authentication information and core user attributes.
// The reset fields hold at most one outstanding password reset token,
// stored as a one-way hash together with its expiry.
type User struct {
	ID             int64      `json:"id" db:"user_id"`
	Username       string     `json:"username" db:"username" validate:"required,min=3,max=50"`
	Email          string     `json:"email" db:"email" validate:"required,email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	ResetTokenHash *string    `json:"-" db:"reset_token_hash"`
	ResetExpiresAt *time.Time `json:"-" db:"reset_expires_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// NewUser creates a new User instance with the given username, email and
// password hash. The caller hashes the password; the plain form never
// reaches the model.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// Sanitize removes sensitive information from the User object when sending to clients.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	sanitized.ResetTokenHash = nil
	sanitized.ResetExpiresAt = nil
	return &sanitized
}

// HasPendingReset reports whether the user has an outstanding, unexpired
// password reset token.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetTokenHash != nil && u.ResetExpiresAt != nil && u.ResetExpiresAt.After(now)
}

// UserCredentials represents the login credentials provided by a user.
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRegistration represents the data required for user registration.
type UserRegistration struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate represents the data that can be updated for a user.
// Nil fields are left unchanged; the password is re-hashed when present.
type UserUpdate struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}

// AuthResponse is returned from register and login, pairing the sanitized
// user with a freshly issued bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// ForgotPasswordRequest carries the email address for a password reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the replacement password for a reset consumption.
// The reset token itself travels in the URL path.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}
