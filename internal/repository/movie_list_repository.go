package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cinelista/backend/internal/database"
	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/utils"
)

// MovieListRepository defines methods for interacting with movie list data
type MovieListRepository interface {
	Create(ctx context.Context, list *models.MovieList) error
	GetByOwner(ctx context.Context, ownerID int64) ([]*models.MovieList, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.MovieList, error)
	GetByShareableLink(ctx context.Context, link string) (*models.MovieList, error)
	Update(ctx context.Context, list *models.MovieList) error
	UpdateMovies(ctx context.Context, id, ownerID int64, movies models.MovieSlice) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// PostgresMovieListRepository is a PostgreSQL implementation of MovieListRepository
type PostgresMovieListRepository struct {
	db *database.Pool
}

// NewMovieListRepository creates a new MovieListRepository
func NewMovieListRepository(db *database.Pool) MovieListRepository {
	return &PostgresMovieListRepository{
		db: db,
	}
}

// Create adds a new movie list to the database
func (r *PostgresMovieListRepository) Create(ctx context.Context, list *models.MovieList) error {
	startTime := time.Now()

	now := time.Now()
	list.CreatedAt = now
	list.UpdatedAt = now
	if list.Movies == nil {
		list.Movies = models.MovieSlice{}
	}

	query := `
        INSERT INTO movie_lists (owner_id, name, description, shareable_link, movies, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING list_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		list.OwnerID,
		list.Name,
		list.Description,
		list.ShareableLink,
		list.Movies,
		list.CreatedAt,
		list.UpdatedAt,
	).Scan(&list.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{list.OwnerID, list.Name, list.Description, list.ShareableLink},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to create movie list: %w", err)
	}

	log.Info().
		Int64("list_id", list.ID).
		Int64("owner_id", list.OwnerID).
		Str("name", list.Name).
		Msg("Movie list created")

	return nil
}

// GetByOwner retrieves all movie lists owned by a user, oldest first
func (r *PostgresMovieListRepository) GetByOwner(ctx context.Context, ownerID int64) ([]*models.MovieList, error) {
	startTime := time.Now()

	query := `
        SELECT list_id, owner_id, name, description, shareable_link, movies, created_at, updated_at
        FROM movie_lists
        WHERE owner_id = $1
        ORDER BY created_at ASC
    `

	rows, err := r.db.QueryContext(ctx, query, ownerID)

	utils.LogDBQuery(query, []interface{}{ownerID}, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to get movie lists: %w", err)
	}
	defer rows.Close()

	lists := make([]*models.MovieList, 0)
	for rows.Next() {
		list := &models.MovieList{}
		if err := rows.Scan(
			&list.ID,
			&list.OwnerID,
			&list.Name,
			&list.Description,
			&list.ShareableLink,
			&list.Movies,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movie list row: %w", err)
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movie list rows: %w", err)
	}

	return lists, nil
}

// GetByIDAndOwner retrieves a movie list by ID, gated on ownership. A list that
// exists but belongs to another user is reported as not found, the same as a
// list that does not exist.
func (r *PostgresMovieListRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.MovieList, error) {
	startTime := time.Now()

	query := `
        SELECT list_id, owner_id, name, description, shareable_link, movies, created_at, updated_at
        FROM movie_lists
        WHERE list_id = $1 AND owner_id = $2
    `

	list := &models.MovieList{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&list.ID,
		&list.OwnerID,
		&list.Name,
		&list.Description,
		&list.ShareableLink,
		&list.Movies,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	utils.LogDBQuery(query, []interface{}{id, ownerID}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("List", id)
		}
		return nil, fmt.Errorf("failed to get movie list: %w", err)
	}

	return list, nil
}

// GetByShareableLink retrieves a movie list by its public shareable link
func (r *PostgresMovieListRepository) GetByShareableLink(ctx context.Context, link string) (*models.MovieList, error) {
	startTime := time.Now()

	query := `
        SELECT list_id, owner_id, name, description, shareable_link, movies, created_at, updated_at
        FROM movie_lists
        WHERE shareable_link = $1
    `

	list := &models.MovieList{}
	err := r.db.QueryRowContext(ctx, query, link).Scan(
		&list.ID,
		&list.OwnerID,
		&list.Name,
		&list.Description,
		&list.ShareableLink,
		&list.Movies,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	utils.LogDBQuery(query, []interface{}{link}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("List", link)
		}
		return nil, fmt.Errorf("failed to get movie list by shareable link: %w", err)
	}

	return list, nil
}

// Update updates a movie list's name and description
func (r *PostgresMovieListRepository) Update(ctx context.Context, list *models.MovieList) error {
	startTime := time.Now()

	list.UpdatedAt = time.Now()

	query := `
        UPDATE movie_lists
        SET name = $1, description = $2, updated_at = $3
        WHERE list_id = $4 AND owner_id = $5
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		list.Name,
		list.Description,
		list.UpdatedAt,
		list.ID,
		list.OwnerID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{list.Name, list.Description, list.UpdatedAt, list.ID, list.OwnerID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to update movie list: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("List", list.ID)
	}

	log.Info().
		Int64("list_id", list.ID).
		Int64("owner_id", list.OwnerID).
		Msg("Movie list updated")

	return nil
}

// UpdateMovies replaces a list's movies collection in a single write
func (r *PostgresMovieListRepository) UpdateMovies(ctx context.Context, id, ownerID int64, movies models.MovieSlice) error {
	startTime := time.Now()

	if movies == nil {
		movies = models.MovieSlice{}
	}

	query := `
        UPDATE movie_lists
        SET movies = $1, updated_at = $2
        WHERE list_id = $3 AND owner_id = $4
    `

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, movies, now, id, ownerID)

	utils.LogDBQuery(query, []interface{}{id, ownerID}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to update movie list movies: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("List", id)
	}

	return nil
}

// Delete removes a movie list, gated on ownership
func (r *PostgresMovieListRepository) Delete(ctx context.Context, id, ownerID int64) error {
	startTime := time.Now()

	query := "DELETE FROM movie_lists WHERE list_id = $1 AND owner_id = $2"
	result, err := r.db.ExecContext(ctx, query, id, ownerID)

	utils.LogDBQuery(query, []interface{}{id, ownerID}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete movie list: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError("List", id)
	}

	log.Info().
		Int64("list_id", id).
		Int64("owner_id", ownerID).
		Msg("Movie list deleted")

	return nil
}
