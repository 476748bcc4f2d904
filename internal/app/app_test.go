package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	// Set required environment variables for test
	os.Setenv("BOT_TOKEN", "123456:test-token")
	os.Setenv("ADMIN_ID", "42")
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	defer func() {
		os.Unsetenv("BOT_TOKEN")
		os.Unsetenv("ADMIN_ID")
		os.Unsetenv("MONGODB_URI")
	}()

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}
