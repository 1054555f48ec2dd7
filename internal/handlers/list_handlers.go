package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cinelista/backend/internal/auth"
	"github.com/cinelista/backend/internal/constants"
	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/utils"
)

// ListServiceInterface defines the movie list operations handlers depend on
type ListServiceInterface interface {
	CreateList(ctx context.Context, ownerID int64, create *models.MovieListCreate) (*models.MovieList, error)
	GetUserLists(ctx context.Context, ownerID int64) ([]*models.MovieList, error)
	GetListByID(ctx context.Context, id, ownerID int64) (*models.MovieList, error)
	UpdateList(ctx context.Context, id, ownerID int64, update *models.MovieListUpdate) (*models.MovieList, error)
	DeleteList(ctx context.Context, id, ownerID int64) error
	AddMovie(ctx context.Context, listID, ownerID int64, create *models.MovieCreate) (*models.MovieList, error)
	UpdateMovie(ctx context.Context, listID, ownerID int64, movieID string, update *models.MovieUpdate) (*models.MovieList, error)
	RemoveMovie(ctx context.Context, listID, ownerID int64, movieID string) (*models.MovieList, error)
	GetPublicList(ctx context.Context, link string) (*models.MovieList, error)
}

// ListHandler handles movie list routes
type ListHandler struct {
	listService ListServiceInterface
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService ListServiceInterface) *ListHandler {
	if listService == nil {
		panic("listService cannot be nil")
	}
	return &ListHandler{
		listService: listService,
	}
}

// listIDParam parses the list ID path parameter. A non-numeric value cannot
// identify any list, so it is treated the same as a miss.
func listIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constants.ParamListID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewNotFoundError("List", raw)
	}
	return id, nil
}

// CreateList creates a new movie list for the authenticated user
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	var create models.MovieListCreate
	if err := utils.DecodeAndValidate(r, &create); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	list, err := h.listService.CreateList(r.Context(), userID, &create)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, list)
}

// GetLists returns every list owned by the authenticated user
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	lists, err := h.listService.GetUserLists(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, lists)
}

// GetList returns a single list owned by the authenticated user
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	list, err := h.listService.GetListByID(r.Context(), listID, userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, list)
}

// UpdateList applies a partial update to a list's name and description
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	var update models.MovieListUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	list, err := h.listService.UpdateList(r.Context(), listID, userID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, list)
}

// DeleteList removes a list owned by the authenticated user
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.listService.DeleteList(r.Context(), listID, userID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": constants.MsgListDeleted,
	})
}

// AddMovie appends a movie to a list owned by the authenticated user
func (h *ListHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	var create models.MovieCreate
	if err := utils.DecodeAndValidate(r, &create); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	list, err := h.listService.AddMovie(r.Context(), listID, userID, &create)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, list)
}

// UpdateMovie applies a partial update to a movie inside a list
func (h *ListHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	movieID := chi.URLParam(r, constants.ParamMovieID)

	var update models.MovieUpdate
	if err := utils.DecodeAndValidate(r, &update); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	list, err := h.listService.UpdateMovie(r.Context(), listID, userID, movieID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, list)
}

// RemoveMovie removes a movie from a list owned by the authenticated user
func (h *ListHandler) RemoveMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	movieID := chi.URLParam(r, constants.ParamMovieID)

	list, err := h.listService.RemoveMovie(r.Context(), listID, userID, movieID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, list)
}

// GetPublicList returns a list by its shareable link. No authentication is
// required; the opaque link itself grants read access.
func (h *ListHandler) GetPublicList(w http.ResponseWriter, r *http.Request) {
	link := chi.URLParam(r, constants.ParamShareableLink)
	if link == "" {
		utils.NotFound(w, constants.MsgListNotFound)
		return
	}

	list, err := h.listService.GetPublicList(r.Context(), link)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, list)
}
