package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test-token-123")
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test-token-123", cfg.Telegram.BotToken)
	require.Equal(t, int64(42), cfg.Telegram.AdminID)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "dramawallah", cfg.Mongo.Database)
	require.Equal(t, "5000", cfg.Service.Port)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "no bot token", unset: "BOT_TOKEN"},
		{name: "no admin id", unset: "ADMIN_ID"},
		{name: "no mongo uri", unset: "MONGODB_URI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			os.Unsetenv(tt.unset)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_InvalidAdminID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
