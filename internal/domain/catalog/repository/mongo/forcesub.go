package mongo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bibegs/dramawallah-bot/internal/infrastructure/database"
)

// forceSubKey is the fixed document id of the singleton config
const forceSubKey = "force_sub"

// ForceSubRepository persists the force-subscription singleton config
type ForceSubRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewForceSubRepository creates the repository over the force_sub collection
func NewForceSubRepository(db *database.Mongo, logger zerolog.Logger) *ForceSubRepository {
	return &ForceSubRepository{
		col:    db.Collection("force_sub"),
		logger: logger,
	}
}

// Set upserts the configured channel id
func (r *ForceSubRepository) Set(ctx context.Context, channelID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": forceSubKey},
		bson.M{"$set": bson.M{"channel_id": channelID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to set force-sub channel: %w", err)
	}

	r.logger.Info().Str("channel_id", channelID).Msg("Force subscription enabled")
	return nil
}

// Delete removes the configuration
func (r *ForceSubRepository) Delete(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": forceSubKey}); err != nil {
		return fmt.Errorf("failed to delete force-sub config: %w", err)
	}

	r.logger.Info().Msg("Force subscription disabled")
	return nil
}
