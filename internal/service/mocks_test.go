package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/utils"
)

// Mock implementations for testing

type MockUserRepository struct {
	users        map[int64]*models.User
	nextID       int64
	consumeCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[int64]*models.User),
		nextID: 1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return utils.NewDuplicateError("User", "email", user.Email)
		}
	}

	user.ID = m.nextID
	m.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = user

	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("User", fmt.Sprintf("email=%s", email))
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	stored, ok := m.users[user.ID]
	if !ok {
		return utils.NewNotFoundError("User", user.ID)
	}
	for id, existing := range m.users {
		if id != user.ID && strings.EqualFold(existing.Email, user.Email) {
			return utils.NewDuplicateError("User", "email", user.Email)
		}
	}
	stored.Username = user.Username
	stored.Email = user.Email
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return utils.NewNotFoundError("User", id)
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id int64, tokenHash string, expiresAt time.Time) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	user.ResetTokenHash = &tokenHash
	expiry := expiresAt
	user.ResetExpiresAt = &expiry
	return nil
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, id int64) error {
	user, ok := m.users[id]
	if !ok {
		return nil
	}
	user.ResetTokenHash = nil
	user.ResetExpiresAt = nil
	return nil
}

func (m *MockUserRepository) ResetTokenValid(ctx context.Context, tokenHash string) (bool, error) {
	for _, user := range m.users {
		if user.ResetTokenHash != nil && *user.ResetTokenHash == tokenHash &&
			user.ResetExpiresAt != nil && user.ResetExpiresAt.After(time.Now()) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (int64, error) {
	m.consumeCalls++
	for _, user := range m.users {
		if user.ResetTokenHash != nil && *user.ResetTokenHash == tokenHash &&
			user.ResetExpiresAt != nil && user.ResetExpiresAt.After(time.Now()) {
			user.PasswordHash = newPasswordHash
			user.ResetTokenHash = nil
			user.ResetExpiresAt = nil
			return user.ID, nil
		}
	}
	return 0, utils.NewInvalidResetTokenError()
}

func (m *MockUserRepository) ClearExpiredResetTokens(ctx context.Context) (int64, error) {
	var cleared int64
	for _, user := range m.users {
		if user.ResetTokenHash != nil && user.ResetExpiresAt != nil && !user.ResetExpiresAt.After(time.Now()) {
			user.ResetTokenHash = nil
			user.ResetExpiresAt = nil
			cleared++
		}
	}
	return cleared, nil
}

type MockListRepository struct {
	lists  map[int64]*models.MovieList
	nextID int64
}

func NewMockListRepository() *MockListRepository {
	return &MockListRepository{
		lists:  make(map[int64]*models.MovieList),
		nextID: 1,
	}
}

func copyList(list *models.MovieList) *models.MovieList {
	copied := *list
	copied.Movies = append(models.MovieSlice{}, list.Movies...)
	return &copied
}

func (m *MockListRepository) Create(ctx context.Context, list *models.MovieList) error {
	list.ID = m.nextID
	m.nextID++
	now := time.Now()
	list.CreatedAt = now
	list.UpdatedAt = now
	if list.Movies == nil {
		list.Movies = models.MovieSlice{}
	}
	m.lists[list.ID] = copyList(list)
	return nil
}

func (m *MockListRepository) GetByOwner(ctx context.Context, ownerID int64) ([]*models.MovieList, error) {
	result := make([]*models.MovieList, 0)
	for id := int64(1); id < m.nextID; id++ {
		if list, ok := m.lists[id]; ok && list.OwnerID == ownerID {
			result = append(result, copyList(list))
		}
	}
	return result, nil
}

func (m *MockListRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.MovieList, error) {
	list, ok := m.lists[id]
	if !ok || list.OwnerID != ownerID {
		return nil, utils.NewNotFoundError("List", id)
	}
	return copyList(list), nil
}

func (m *MockListRepository) GetByShareableLink(ctx context.Context, link string) (*models.MovieList, error) {
	for _, list := range m.lists {
		if list.ShareableLink == link {
			return copyList(list), nil
		}
	}
	return nil, utils.NewNotFoundError("List", link)
}

func (m *MockListRepository) Update(ctx context.Context, list *models.MovieList) error {
	stored, ok := m.lists[list.ID]
	if !ok || stored.OwnerID != list.OwnerID {
		return utils.NewNotFoundError("List", list.ID)
	}
	stored.Name = list.Name
	stored.Description = list.Description
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *MockListRepository) UpdateMovies(ctx context.Context, id, ownerID int64, movies models.MovieSlice) error {
	stored, ok := m.lists[id]
	if !ok || stored.OwnerID != ownerID {
		return utils.NewNotFoundError("List", id)
	}
	stored.Movies = append(models.MovieSlice{}, movies...)
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *MockListRepository) Delete(ctx context.Context, id, ownerID int64) error {
	stored, ok := m.lists[id]
	if !ok || stored.OwnerID != ownerID {
		return utils.NewNotFoundError("List", id)
	}
	delete(m.lists, id)
	return nil
}

type MockEmailSender struct {
	sentTo     []string
	sentTokens []string
	failNext   bool
}

func (m *MockEmailSender) SendPasswordResetEmail(toEmail, toName, token string) error {
	if m.failNext {
		return errors.New("smtp relay unavailable")
	}
	m.sentTo = append(m.sentTo, toEmail)
	m.sentTokens = append(m.sentTokens, token)
	return nil
}

type MockTokenIssuer struct {
	failNext bool
}

func (m *MockTokenIssuer) GenerateToken(userID int64, username, email string) (string, error) {
	if m.failNext {
		return "", errors.New("signing failure")
	}
	return fmt.Sprintf("token-for-%d", userID), nil
}
