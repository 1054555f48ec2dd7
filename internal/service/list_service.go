package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/repository"
	"github.com/cinelista/backend/internal/utils"
)

// ListService handles movie list and embedded movie operations
type ListService struct {
	listRepo repository.MovieListRepository
}

// NewListService creates a new ListService
func NewListService(listRepo repository.MovieListRepository) *ListService {
	return &ListService{
		listRepo: listRepo,
	}
}

// CreateList creates a new movie list for the owner. The shareable link is an
// opaque identifier generated server-side; it carries no owner or list ID.
func (s *ListService) CreateList(ctx context.Context, ownerID int64, create *models.MovieListCreate) (*models.MovieList, error) {
	list := models.NewMovieList(ownerID, create.Name, create.Description, uuid.New().String())
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetUserLists retrieves all lists owned by a user
func (s *ListService) GetUserLists(ctx context.Context, ownerID int64) ([]*models.MovieList, error) {
	return s.listRepo.GetByOwner(ctx, ownerID)
}

// GetListByID retrieves a single list owned by the user
func (s *ListService) GetListByID(ctx context.Context, id, ownerID int64) (*models.MovieList, error) {
	return s.listRepo.GetByIDAndOwner(ctx, id, ownerID)
}

// UpdateList applies a partial update to a list's name and description.
// Only fields present in the request change; a present empty description
// clears the description, while a present empty name is rejected.
func (s *ListService) UpdateList(ctx context.Context, id, ownerID int64, update *models.MovieListUpdate) (*models.MovieList, error) {
	list, err := s.listRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, utils.NewValidationError("name", "Name cannot be empty")
		}
		list.Name = *update.Name
	}
	if update.Description != nil {
		list.Description = *update.Description
	}

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList removes a list owned by the user
func (s *ListService) DeleteList(ctx context.Context, id, ownerID int64) error {
	return s.listRepo.Delete(ctx, id, ownerID)
}

// AddMovie appends a movie to a list, assigning it a server-generated ID.
// Movies keep their insertion order.
func (s *ListService) AddMovie(ctx context.Context, listID, ownerID int64, create *models.MovieCreate) (*models.MovieList, error) {
	list, err := s.listRepo.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		return nil, err
	}

	movie := models.Movie{
		ID:         uuid.New().String(),
		Title:      create.Title,
		ImageURL:   create.ImageURL,
		WatchLinks: create.WatchLinks,
	}
	if movie.WatchLinks == nil {
		movie.WatchLinks = []string{}
	}
	list.Movies = append(list.Movies, movie)

	if err := s.listRepo.UpdateMovies(ctx, listID, ownerID, list.Movies); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateMovie applies a partial update to a movie inside a list. Only fields
// present in the request change; a present empty title is rejected, while
// present empty imageUrl or watchLinks clear those fields.
func (s *ListService) UpdateMovie(ctx context.Context, listID, ownerID int64, movieID string, update *models.MovieUpdate) (*models.MovieList, error) {
	list, err := s.listRepo.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		return nil, err
	}

	idx := list.FindMovie(movieID)
	if idx < 0 {
		return nil, utils.NewNotFoundError("Movie", movieID)
	}

	movie := &list.Movies[idx]
	if update.Title != nil {
		if *update.Title == "" {
			return nil, utils.NewValidationError("title", "Title cannot be empty")
		}
		movie.Title = *update.Title
	}
	if update.ImageURL != nil {
		movie.ImageURL = *update.ImageURL
	}
	if update.WatchLinks != nil {
		movie.WatchLinks = *update.WatchLinks
	}

	if err := s.listRepo.UpdateMovies(ctx, listID, ownerID, list.Movies); err != nil {
		return nil, err
	}
	return list, nil
}

// RemoveMovie removes a movie from a list. Removing a movie ID that is not in
// the list succeeds without changing anything.
func (s *ListService) RemoveMovie(ctx context.Context, listID, ownerID int64, movieID string) (*models.MovieList, error) {
	list, err := s.listRepo.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		return nil, err
	}

	idx := list.FindMovie(movieID)
	if idx < 0 {
		return list, nil
	}

	list.Movies = append(list.Movies[:idx], list.Movies[idx+1:]...)
	if err := s.listRepo.UpdateMovies(ctx, listID, ownerID, list.Movies); err != nil {
		return nil, err
	}
	return list, nil
}

// GetPublicList retrieves a list by its shareable link without any ownership
// check. The link is the sole credential for read access.
func (s *ListService) GetPublicList(ctx context.Context, link string) (*models.MovieList, error) {
	return s.listRepo.GetByShareableLink(ctx, link)
}
