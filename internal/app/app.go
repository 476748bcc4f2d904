// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/bibegs/dramawallah-bot/config"
	"github.com/bibegs/dramawallah-bot/internal/domain"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, mongo, telegram bot, http server, metrics)
		infrastructure.Module,

		// Domain (catalog business logic)
		domain.Module,
	)
}
