package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbook/gokit/pkg/email"
)

func validEmailConfig() email.Config {
	return email.Config{
		DestinationName: "shiftbook-email",
		FromAddress:     "noreply@company.com",
		FromName:        "Shift Book System",
	}
}

func TestNewPostmarkSender_ValidConfig(t *testing.T) {
	t.Parallel()

	pm := email.PostmarkConfig{
		ServerToken:  "test-server-token",
		AccountToken: "test-account-token",
	}

	sender, err := email.NewPostmarkSender(validEmailConfig(), pm)
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestNewPostmarkSender_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    email.Config
		pm     email.PostmarkConfig
		errMsg string
	}{
		{
			name:   "empty server token",
			cfg:    validEmailConfig(),
			pm:     email.PostmarkConfig{AccountToken: "test-account-token"},
			errMsg: "ServerToken is required",
		},
		{
			name:   "empty account token",
			cfg:    validEmailConfig(),
			pm:     email.PostmarkConfig{ServerToken: "test-server-token"},
			errMsg: "AccountToken is required",
		},
		{
			name: "missing from address",
			cfg: email.Config{
				DestinationName: "shiftbook-email",
				FromName:        "Shift Book System",
			},
			pm: email.PostmarkConfig{
				ServerToken:  "test-server-token",
				AccountToken: "test-account-token",
			},
			errMsg: "FromAddress is required",
		},
		{
			name: "invalid from address",
			cfg: email.Config{
				DestinationName: "shiftbook-email",
				FromAddress:     "not-an-address",
				FromName:        "Shift Book System",
			},
			pm: email.PostmarkConfig{
				ServerToken:  "test-server-token",
				AccountToken: "test-account-token",
			},
			errMsg: "FromAddress must be a valid email address",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender, err := email.NewPostmarkSender(tt.cfg, tt.pm)
			assert.Nil(t, sender)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustNewPostmarkSender_PanicsOnInvalidConfig(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		email.MustNewPostmarkSender(validEmailConfig(), email.PostmarkConfig{})
	})
}
