package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/cinelista/backend/internal/config"
)

// EmailSender delivers transactional email to users
type EmailSender interface {
	SendPasswordResetEmail(toEmail, toName, token string) error
}

// SendGridEmailService sends email through the SendGrid API
type SendGridEmailService struct {
	settings *config.EmailSettings
}

// NewEmailService creates a new SendGrid-backed EmailSender
func NewEmailService(settings *config.EmailSettings) (*SendGridEmailService, error) {
	if settings.SendGridAPIKey == "" {
		return nil, fmt.Errorf("sendgrid API key is not configured")
	}
	return &SendGridEmailService{settings: settings}, nil
}

// SendPasswordResetEmail sends a password reset email containing the reset link
func (s *SendGridEmailService) SendPasswordResetEmail(toEmail, toName, token string) error {
	from := mail.NewEmail(s.settings.FromName, s.settings.FromAddress)
	to := mail.NewEmail(toName, toEmail)
	subject := "Password Reset Request"

	resetURL := fmt.Sprintf("%s/%s", s.settings.ResetBaseURL, token)
	plainTextContent := fmt.Sprintf("Please use the following link to reset your password: %s\n\nThe link is valid for one hour and can be used once.", resetURL)
	htmlContent := fmt.Sprintf("<p>Please use the following link to reset your password: <a href=\"%s\">Reset Password</a></p><p>The link is valid for one hour and can be used once.</p>", resetURL)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(s.settings.SendGridAPIKey)

	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("Failed to send password reset email")
		return err
	}
	if response.StatusCode >= 400 {
		log.Error().Int("status_code", response.StatusCode).Str("to", toEmail).Msg("SendGrid rejected password reset email")
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	log.Info().Int("status_code", response.StatusCode).Msg("Password reset email sent")
	return nil
}
