package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cinelista/backend/internal/auth"
	"github.com/cinelista/backend/internal/constants"
	"github.com/cinelista/backend/internal/models"
	"github.com/cinelista/backend/internal/repository"
	"github.com/cinelista/backend/internal/utils"
)

// TokenIssuer creates signed session tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(userID int64, username, email string) (string, error)
}

// AuthService handles registration, login and the password reset flow
type AuthService struct {
	userRepo    repository.UserRepository
	tokenIssuer TokenIssuer
	emailSender EmailSender
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokenIssuer TokenIssuer, emailSender EmailSender) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		emailSender: emailSender,
	}
}

// RegisterUser creates a new account and issues a session token for it
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewDuplicateError("User", "email", reg.Email)
	}

	passwordHash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(reg.Username, reg.Email, passwordHash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenIssuer.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	utils.LogAuth("register", user.ID, user.Username, true, "")

	return &models.AuthResponse{
		User:  user.Sanitize(),
		Token: token,
	}, nil
}

// AuthenticateUser verifies credentials and issues a session token. An unknown
// email and a wrong password produce the same error so callers cannot probe
// which addresses have accounts.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login", 0, creds.Email, false, "unknown email")
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, err
	}

	valid, err := auth.VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !valid {
		utils.LogAuth("login", user.ID, user.Username, false, "wrong password")
		return nil, utils.NewInvalidCredentialsError()
	}

	token, err := s.tokenIssuer.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	utils.LogAuth("login", user.ID, user.Username, true, "")

	return &models.AuthResponse{
		User:  user.Sanitize(),
		Token: token,
	}, nil
}

// ForgotPassword begins the password reset flow: it generates a one-time
// token, stores its hash with an expiry, and emails the plain token to the
// account's address. Issuing a new token invalidates any previous one. If
// delivery fails the stored token is cleared again so no orphaned reset
// state survives the failed request.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	plainToken, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(constants.PasswordResetTokenDuration)
	if err := s.userRepo.SetResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return err
	}

	if err := s.emailSender.SendPasswordResetEmail(user.Email, user.Username, plainToken); err != nil {
		if clearErr := s.userRepo.ClearResetToken(ctx, user.ID); clearErr != nil {
			log.Error().Err(clearErr).Int64("user_id", user.ID).Msg("Failed to clear reset token after delivery failure")
		}
		return utils.NewDeliveryFailedError(err)
	}

	log.Info().Int64("user_id", user.ID).Time("expires_at", expiresAt).Msg("Password reset requested")
	return nil
}

// ResetPassword completes the reset flow. The token is matched by hash and
// consumed in the same statement that writes the new password hash, so a
// token can never be redeemed twice.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	tokenHash := auth.HashResetToken(token)

	// Reject unknown or expired tokens before the expensive password hashing.
	// The conditional update below remains the single-use guarantee.
	valid, err := s.userRepo.ResetTokenValid(ctx, tokenHash)
	if err != nil {
		return err
	}
	if !valid {
		return utils.NewInvalidResetTokenError()
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	userID, err := s.userRepo.ConsumeResetToken(ctx, tokenHash, passwordHash)
	if err != nil {
		return err
	}

	utils.LogAuth("password_reset", userID, "", true, "")
	return nil
}
