package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Movie is a single entry embedded in a MovieList. Movies have no existence
// outside their parent list; the ID is unique only within that list.
type Movie struct {
	ID         string   `json:"id"`
	Title      string   `json:"title" validate:"required"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	WatchLinks []string `json:"watchLinks"`
}

// MovieSlice is the ordered movie sequence of a list, stored as a single
// JSONB column so every list mutation is one row write.
type MovieSlice []Movie

// Value implements driver.Valuer so the slice can be written as JSONB.
func (m MovieSlice) Value() (driver.Value, error) {
	if m == nil {
		m = MovieSlice{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner so the slice can be read back from JSONB.
func (m *MovieSlice) Scan(src interface{}) error {
	if src == nil {
		*m = MovieSlice{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for MovieSlice: %T", src)
	}

	return json.Unmarshal(data, m)
}

// MovieList represents a named, shareable collection of movies owned by
// exactly one user. The shareable link is generated at creation, never
// changes, and grants read-only public access.
type MovieList struct {
	ID            int64      `json:"id" db:"list_id"`
	Name          string     `json:"name" db:"name" validate:"required"`
	Description   string     `json:"description,omitempty" db:"description"`
	OwnerID       int64      `json:"owner" db:"owner_id"`
	ShareableLink string     `json:"shareableLink" db:"shareable_link"`
	Movies        MovieSlice `json:"movies" db:"movies"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// NewMovieList creates a list for the given owner with a fresh share link.
func NewMovieList(ownerID int64, name, description, shareableLink string) *MovieList {
	now := time.Now()
	return &MovieList{
		Name:          name,
		Description:   description,
		OwnerID:       ownerID,
		ShareableLink: shareableLink,
		Movies:        MovieSlice{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TableName returns the database table name for the MovieList model.
func (l *MovieList) TableName() string {
	return "movie_lists"
}

// FindMovie returns the index of the movie with the given id, or -1.
func (l *MovieList) FindMovie(movieID string) int {
	for i := range l.Movies {
		if l.Movies[i].ID == movieID {
			return i
		}
	}
	return -1
}

// MovieListCreate represents the data required to create a list.
type MovieListCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// MovieListUpdate represents a partial update to a list. Nil fields are left
// unchanged; a present empty description clears it, while a present empty
// name is rejected by validation.
type MovieListUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// MovieCreate represents the data required to append a movie to a list.
type MovieCreate struct {
	Title      string   `json:"title" validate:"required"`
	ImageURL   string   `json:"imageUrl"`
	WatchLinks []string `json:"watchLinks"`
}

// MovieUpdate represents a partial update to an embedded movie.
type MovieUpdate struct {
	Title      *string   `json:"title" validate:"omitempty,min=1"`
	ImageURL   *string   `json:"imageUrl"`
	WatchLinks *[]string `json:"watchLinks"`
}
