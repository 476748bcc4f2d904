// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/bibegs/dramawallah-bot/internal/infrastructure/database"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/http"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/logger"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/metrics"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/telegram"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	database.Module,
	telegram.Module,
	http.Module,
	metrics.Module,
)
