package database

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/bibegs/dramawallah-bot/config"
)

// Module provides database components for fx dependency injection
var Module = fx.Module("database",
	fx.Provide(NewMongoFx),
)

// NewMongoFx creates a MongoDB connection with fx lifecycle management
func NewMongoFx(
	lc fx.Lifecycle,
	cfg *config.MongoConfig,
	logger zerolog.Logger,
) (*Mongo, error) {
	db, err := NewMongo(context.Background(), cfg, logger.With().Str("component", "mongo").Logger())
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close(ctx)
		},
	})

	return db, nil
}
