package migrations

import (
	"context"
	"database/sql"
)

// createUsersTable creates the users table. Password reset state lives on the
// user row itself: a hashed one-time token and its expiry, both NULL when no
// reset is pending.
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
					username VARCHAR(100) NOT NULL,
					email VARCHAR(255) NOT NULL UNIQUE,
					password_hash VARCHAR(255) NOT NULL,
					reset_token_hash VARCHAR(64),
					reset_expires_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)
			`
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return err
			}

			indexes := []string{
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))`,
				`CREATE INDEX IF NOT EXISTS idx_users_reset_token_hash ON users(reset_token_hash) WHERE reset_token_hash IS NOT NULL`,
			}

			for _, idx := range indexes {
				if _, err := tx.ExecContext(ctx, idx); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// createMovieListsTable creates the movie_lists table. A list's movies are
// stored as a JSONB array on the list row, so every list mutation is a single
// row write. Deleting a user cascades to their lists.
func createMovieListsTable() Migration {
	return Migration{
		Name:        "create_movie_lists_table",
		Description: "Creates the movie_lists table",
		TableName:   "movie_lists",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS movie_lists (
					list_id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
					owner_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					name VARCHAR(255) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					shareable_link VARCHAR(64) NOT NULL UNIQUE,
					movies JSONB NOT NULL DEFAULT '[]',
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)
			`
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return err
			}

			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_movie_lists_owner_id ON movie_lists(owner_id)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_movie_lists_shareable_link ON movie_lists(shareable_link)`,
			}

			for _, idx := range indexes {
				if _, err := tx.ExecContext(ctx, idx); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
