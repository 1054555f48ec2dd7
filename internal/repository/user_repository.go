package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/cinelista/backend/internal/database"
	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/utils"
)

// UserRepository defines methods for interacting with user data
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, passwordHash string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetResetToken(ctx context.Context, id int64, tokenHash string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id int64) error
	ResetTokenValid(ctx context.Context, tokenHash string) (bool, error)
	ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (int64, error)
	ClearExpiredResetTokens(ctx context.Context) (int64, error)
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// Create adds a new user to the database
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
        INSERT INTO users (username, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING user_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Username, user.Email, "[REDACTED]", user.CreatedAt, user.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		// Check for unique constraint violations using PostgreSQL error handling
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if strings.Contains(pqErr.Constraint, "email") {
				return utils.NewDuplicateError("User", "email", user.Email)
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("User created")

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT user_id, username, email, password_hash, reset_token_hash, reset_expires_at, created_at, updated_at
        FROM users
        WHERE user_id = $1
    `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ResetTokenHash,
		&user.ResetExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT user_id, username, email, password_hash, reset_token_hash, reset_expires_at, created_at, updated_at
        FROM users
        WHERE LOWER(email) = LOWER($1)
    `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ResetTokenHash,
		&user.ResetExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	utils.LogDBQuery(query, []interface{}{email}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Update updates a user's identity fields in the database
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	user.UpdatedAt = time.Now()

	query := `
        UPDATE users
        SET username = $1, email = $2, updated_at = $3
        WHERE user_id = $4
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.UpdatedAt,
		user.ID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Username, user.Email, user.UpdatedAt, user.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if strings.Contains(pqErr.Constraint, "email") {
				return utils.NewDuplicateError("User", "email", user.Email)
			}
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", user.ID)
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("User updated")

	return nil
}

// Delete removes a user from the database. Owned movie lists are removed by
// the ON DELETE CASCADE constraint on movie_lists.owner_id.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := "DELETE FROM users WHERE user_id = $1"
	result, err := r.db.ExecContext(ctx, query, id)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User deleted")

	return nil
}

// ChangePassword updates a user's password hash
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE user_id = $3
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, passwordHash, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{"[REDACTED]", now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User password changed")

	return nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)

	utils.LogDBQuery(query, []interface{}{email}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}

	return exists, nil
}

// SetResetToken stores a reset token hash and expiry on the user row.
// Writing over any previous values keeps at most one outstanding token.
func (r *PostgresUserRepository) SetResetToken(ctx context.Context, id int64, tokenHash string, expiresAt time.Time) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET reset_token_hash = $1, reset_expires_at = $2, updated_at = $3
        WHERE user_id = $4
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, tokenHash, expiresAt, now, id)

	utils.LogDBQuery(
		query,
		[]interface{}{"[REDACTED]", expiresAt, now, id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// ClearResetToken removes any outstanding reset token from the user row.
// Used to roll back the reset state when email delivery fails.
func (r *PostgresUserRepository) ClearResetToken(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET reset_token_hash = NULL, reset_expires_at = NULL, updated_at = $1
        WHERE user_id = $2
    `

	_, err := r.db.ExecContext(ctx, query, time.Now(), id)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}

	return nil
}

// ResetTokenValid reports whether an unexpired reset token with the given
// hash is currently stored on any user.
func (r *PostgresUserRepository) ResetTokenValid(ctx context.Context, tokenHash string) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE reset_token_hash = $1 AND reset_expires_at > NOW())`

	var valid bool
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&valid)

	utils.LogDBQuery(query, []interface{}{"[REDACTED]"}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check reset token: %w", err)
	}

	return valid, nil
}

// ConsumeResetToken atomically finds the user holding an unexpired token with
// the given hash, replaces their password hash, and clears the reset fields.
// The single UPDATE statement is the single-use guarantee: two concurrent
// consumers of the same token cannot both match the WHERE clause.
func (r *PostgresUserRepository) ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (int64, error) {
	startTime := time.Now()

	query := `
        UPDATE users
        SET password_hash = $1, reset_token_hash = NULL, reset_expires_at = NULL, updated_at = $2
        WHERE reset_token_hash = $3 AND reset_expires_at > NOW()
        RETURNING user_id
    `

	var userID int64
	err := r.db.QueryRowContext(ctx, query, newPasswordHash, time.Now(), tokenHash).Scan(&userID)

	utils.LogDBQuery(
		query,
		[]interface{}{"[REDACTED]", "[REDACTED]"},
		time.Since(startTime),
		err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, utils.NewInvalidResetTokenError()
		}
		return 0, fmt.Errorf("failed to consume reset token: %w", err)
	}

	log.Info().
		Int64("user_id", userID).
		Msg("Password reset token consumed")

	return userID, nil
}

// ClearExpiredResetTokens removes reset tokens whose expiry has passed.
// Called periodically by the server maintenance loop.
func (r *PostgresUserRepository) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	startTime := time.Now()

	query := `
        UPDATE users
        SET reset_token_hash = NULL, reset_expires_at = NULL
        WHERE reset_token_hash IS NOT NULL AND reset_expires_at <= NOW()
    `

	result, err := r.db.ExecContext(ctx, query)

	utils.LogDBQuery(query, nil, time.Since(startTime), err)

	if err != nil {
		return 0, fmt.Errorf("failed to clear expired reset tokens: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
