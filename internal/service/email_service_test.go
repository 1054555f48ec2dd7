package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelista/backend/internal/config"
)

func TestNewEmailService(t *testing.T) {
	t.Run("ConfiguredKey", func(t *testing.T) {
		svc, err := NewEmailService(&config.EmailSettings{
			SendGridAPIKey: "SG.test-key",
			FromAddress:    "no-reply@cinelista.app",
			FromName:       "CineLista",
			ResetBaseURL:   "https://cinelista.app/reset-password",
		})

		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("MissingKey", func(t *testing.T) {
		svc, err := NewEmailService(&config.EmailSettings{})

		assert.Error(t, err, "a server without an API key must fail at startup, not at send time")
		assert.Nil(t, svc)
	})
}
