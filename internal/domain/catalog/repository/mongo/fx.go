package mongo

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/deps"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/database"
)

// Module provides MongoDB repositories for fx dependency injection
var Module = fx.Module("repository",
	fx.Provide(
		provideDramaRepository,
		provideNewsRepository,
		provideUserRepository,
		provideForceSubRepository,
	),
)

func provideDramaRepository(db *database.Mongo, logger zerolog.Logger) deps.DramaRepository {
	return NewDramaRepository(db, logger.With().Str("component", "drama-repository").Logger())
}

func provideNewsRepository(db *database.Mongo, logger zerolog.Logger) deps.NewsRepository {
	return NewNewsRepository(db, logger.With().Str("component", "news-repository").Logger())
}

func provideUserRepository(db *database.Mongo, logger zerolog.Logger) deps.UserRepository {
	return NewUserRepository(db, logger.With().Str("component", "user-repository").Logger())
}

func provideForceSubRepository(db *database.Mongo, logger zerolog.Logger) deps.ForceSubRepository {
	return NewForceSubRepository(db, logger.With().Str("component", "forcesub-repository").Logger())
}
