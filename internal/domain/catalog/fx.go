// Package catalog contains the catalog domain module
package catalog

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	httpDelivery "github.com/bibegs/dramawallah-bot/internal/domain/catalog/delivery/http"
	telegramDelivery "github.com/bibegs/dramawallah-bot/internal/domain/catalog/delivery/telegram"
	mongoRepo "github.com/bibegs/dramawallah-bot/internal/domain/catalog/repository/mongo"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/session"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/usecase/buissines"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/workers"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/http/server"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/telegram"
)

// Module provides catalog domain components for fx dependency injection
var Module = fx.Module("catalog",
	// Repositories
	mongoRepo.Module,

	// Conversation state
	fx.Provide(session.NewManager),

	// UseCase
	fx.Provide(buissines.NewUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	// Delivery - HTTP API
	fx.Provide(provideHTTPHandlers),

	// Workers (the scheduler deletes through the Telegram handlers)
	fx.Provide(provideDeleter),
	workers.Module,

	// Wire cyclic dependencies and register routes
	fx.Invoke(wireAndRegister),
)

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *buissines.UseCase, bot *telegram.Bot, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, bot.Raw(), logger.With().Str("component", "telegram-handlers").Logger())
}

// provideHTTPHandlers creates the status/API handlers
func provideHTTPHandlers(uc *buissines.UseCase, logger zerolog.Logger) *httpDelivery.Handlers {
	return httpDelivery.NewHandlers(uc, logger.With().Str("component", "http-handlers").Logger())
}

// provideDeleter exposes the Telegram handlers as the scheduler's deleter
func provideDeleter(handlers *telegramDelivery.Handlers) workers.Deleter {
	return handlers
}

// wireAndRegister resolves cyclic dependencies and registers all routes
func wireAndRegister(
	uc *buissines.UseCase,
	handlers *telegramDelivery.Handlers,
	router *telegramDelivery.Router,
	bot *telegram.Bot,
	scheduler *workers.Scheduler,
	httpHandlers *httpDelivery.Handlers,
	srv *server.Server,
) {
	// Handlers implements deps.TelegramSender; the scheduler deletes
	// through the same handlers. Both links are set after construction
	// to break the cycles.
	uc.SetSender(handlers)
	handlers.SetScheduler(scheduler)

	router.RegisterRoutes(bot)
	httpHandlers.RegisterRoutes(srv.Router)
}
