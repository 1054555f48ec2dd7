package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinelista/backend/internal/constants"
	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/utils"
)

// MockListService is a mock implementation of the ListServiceInterface
type MockListService struct {
	mock.Mock
}

func (m *MockListService) CreateList(ctx context.Context, ownerID int64, create *models.MovieListCreate) (*models.MovieList, error) {
	args := m.Called(ctx, ownerID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func (m *MockListService) GetUserLists(ctx context.Context, ownerID int64) ([]*models.MovieList, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MovieList), args.Error(1)
}

func (m *MockListService) GetListByID(ctx context.Context, id, ownerID int64) (*models.MovieList, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func (m *MockListService) UpdateList(ctx context.Context, id, ownerID int64, update *models.MovieListUpdate) (*models.MovieList, error) {
	args := m.Called(ctx, id, ownerID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func (m *MockListService) DeleteList(ctx context.Context, id, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockListService) AddMovie(ctx context.Context, listID, ownerID int64, create *models.MovieCreate) (*models.MovieList, error) {
	args := m.Called(ctx, listID, ownerID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func (m *MockListService) UpdateMovie(ctx context.Context, listID, ownerID int64, movieID string, update *models.MovieUpdate) (*models.MovieList, error) {
	args := m.Called(ctx, listID, ownerID, movieID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func (m *MockListService) RemoveMovie(ctx context.Context, listID, ownerID int64, movieID string) (*models.MovieList, error) {
	args := m.Called(ctx, listID, ownerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func (m *MockListService) GetPublicList(ctx context.Context, link string) (*models.MovieList, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MovieList), args.Error(1)
}

func setupListTest(t *testing.T) (*ListHandler, *MockListService) {
	t.Helper()
	mockService := new(MockListService)
	handler := NewListHandler(mockService)
	return handler, mockService
}

func TestCreateListHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("Success", func(t *testing.T) {
		created := &models.MovieList{ID: 10, OwnerID: 1, Name: "Horror", ShareableLink: "abc", Movies: models.MovieSlice{}}
		mockService.On("CreateList", mock.Anything, int64(1), mock.MatchedBy(func(c *models.MovieListCreate) bool {
			return c.Name == "Horror"
		})).Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/lists", jsonBody(t, map[string]string{"name": "Horror"}))
		req = req.WithContext(createAuthContext(1))
		rr := httptest.NewRecorder()

		handler.CreateList(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingName", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/lists", jsonBody(t, map[string]string{"description": "no name"}))
		req = req.WithContext(createAuthContext(1))
		rr := httptest.NewRecorder()

		handler.CreateList(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/lists", jsonBody(t, map[string]string{"name": "Horror"}))
		rr := httptest.NewRecorder()

		handler.CreateList(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetListHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("Success", func(t *testing.T) {
		list := &models.MovieList{ID: 10, OwnerID: 1, Name: "Horror"}
		mockService.On("GetListByID", mock.Anything, int64(10), int64(1)).Return(list, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/lists/10", nil)
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.GetList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotOwned", func(t *testing.T) {
		mockService.On("GetListByID", mock.Anything, int64(10), int64(2)).
			Return(nil, utils.NewNotFoundError("List", int64(10))).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/lists/10", nil)
		req = req.WithContext(createAuthContext(2))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.GetList(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/lists/not-a-number", nil)
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "not-a-number")
		rr := httptest.NewRecorder()

		handler.GetList(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateListHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("PartialUpdate", func(t *testing.T) {
		updated := &models.MovieList{ID: 10, OwnerID: 1, Name: "Renamed"}
		mockService.On("UpdateList", mock.Anything, int64(10), int64(1), mock.MatchedBy(func(u *models.MovieListUpdate) bool {
			return u.Name != nil && *u.Name == "Renamed" && u.Description == nil
		})).Return(updated, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/lists/10", jsonBody(t, map[string]string{"name": "Renamed"}))
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.UpdateList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/lists/10", jsonBody(t, map[string]string{"name": ""}))
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.UpdateList(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteListHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("Success", func(t *testing.T) {
		mockService.On("DeleteList", mock.Anything, int64(10), int64(1)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/lists/10", nil)
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.DeleteList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotOwned", func(t *testing.T) {
		mockService.On("DeleteList", mock.Anything, int64(10), int64(2)).
			Return(utils.NewNotFoundError("List", int64(10))).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/lists/10", nil)
		req = req.WithContext(createAuthContext(2))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.DeleteList(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAddMovieHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("Success", func(t *testing.T) {
		withMovie := &models.MovieList{
			ID: 10, OwnerID: 1, Name: "Horror",
			Movies: models.MovieSlice{{ID: "m1", Title: "The Thing"}},
		}
		mockService.On("AddMovie", mock.Anything, int64(10), int64(1), mock.MatchedBy(func(c *models.MovieCreate) bool {
			return c.Title == "The Thing"
		})).Return(withMovie, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/lists/10/movies", jsonBody(t, map[string]string{"title": "The Thing"}))
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.AddMovie(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/lists/10/movies", jsonBody(t, map[string]string{"imageUrl": "https://example.com/p.jpg"}))
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		rr := httptest.NewRecorder()

		handler.AddMovie(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateMovieHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("Success", func(t *testing.T) {
		updated := &models.MovieList{
			ID: 10, OwnerID: 1,
			Movies: models.MovieSlice{{ID: "m1", Title: "The Thing (1982)"}},
		}
		mockService.On("UpdateMovie", mock.Anything, int64(10), int64(1), "m1", mock.Anything).
			Return(updated, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/lists/10/movies/m1", jsonBody(t, map[string]string{"title": "The Thing (1982)"}))
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		req = withURLParam(req, constants.ParamMovieID, "m1")
		rr := httptest.NewRecorder()

		handler.UpdateMovie(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("UnknownMovie", func(t *testing.T) {
		mockService.On("UpdateMovie", mock.Anything, int64(10), int64(1), "missing", mock.Anything).
			Return(nil, utils.NewNotFoundError("Movie", "missing")).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/lists/10/movies/missing", jsonBody(t, map[string]string{"title": "Anything"}))
		req = req.WithContext(createAuthContext(1))
		req = withURLParam(req, constants.ParamListID, "10")
		req = withURLParam(req, constants.ParamMovieID, "missing")
		rr := httptest.NewRecorder()

		handler.UpdateMovie(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestRemoveMovieHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	list := &models.MovieList{ID: 10, OwnerID: 1, Movies: models.MovieSlice{}}
	mockService.On("RemoveMovie", mock.Anything, int64(10), int64(1), "m1").Return(list, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/lists/10/movies/m1", nil)
	req = req.WithContext(createAuthContext(1))
	req = withURLParam(req, constants.ParamListID, "10")
	req = withURLParam(req, constants.ParamMovieID, "m1")
	rr := httptest.NewRecorder()

	handler.RemoveMovie(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

func TestGetPublicListHandler(t *testing.T) {
	handler, mockService := setupListTest(t)

	t.Run("NoTokenRequired", func(t *testing.T) {
		list := &models.MovieList{ID: 10, OwnerID: 1, Name: "Horror", ShareableLink: "share-abc"}
		mockService.On("GetPublicList", mock.Anything, "share-abc").Return(list, nil).Once()

		// No auth context at all: the link is the only credential
		req := httptest.NewRequest(http.MethodGet, "/public/list/share-abc", nil)
		req = withURLParam(req, constants.ParamShareableLink, "share-abc")
		rr := httptest.NewRecorder()

		handler.GetPublicList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("UnknownLink", func(t *testing.T) {
		mockService.On("GetPublicList", mock.Anything, "nope").
			Return(nil, utils.NewNotFoundError("List", "nope")).Once()

		req := httptest.NewRequest(http.MethodGet, "/public/list/nope", nil)
		req = withURLParam(req, constants.ParamShareableLink, "nope")
		rr := httptest.NewRecorder()

		handler.GetPublicList(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
