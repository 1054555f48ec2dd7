package service

import (
	"context"

	"github.com/cinelista/backend/internal/auth"
	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/repository"
	"github.com/cinelista/backend/internal/utils"
)

// UserService handles account profile operations
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID with sensitive fields removed
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// UpdateUser applies a partial update to an account. Only fields present in
// the request change; a present password is re-hashed before storage.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changedIdentity := false
	if update.Username != nil {
		if *update.Username == "" {
			return nil, utils.NewValidationError("username", "Username cannot be empty")
		}
		user.Username = *update.Username
		changedIdentity = true
	}
	if update.Email != nil {
		if !utils.IsValidEmail(*update.Email) {
			return nil, utils.NewValidationError("email", "Invalid email address")
		}
		if *update.Email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, *update.Email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, utils.NewDuplicateError("User", "email", *update.Email)
			}
		}
		user.Email = *update.Email
		changedIdentity = true
	}

	if changedIdentity {
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if update.Password != nil {
		if *update.Password == "" {
			return nil, utils.NewValidationError("password", "Password cannot be empty")
		}
		passwordHash, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.ChangePassword(ctx, id, passwordHash); err != nil {
			return nil, err
		}
	}

	return user.Sanitize(), nil
}

// DeleteUser removes an account. The database cascades the delete to every
// movie list the account owns.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
