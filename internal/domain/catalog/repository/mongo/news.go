package mongo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/database"
)

// NewsRepository persists news posts in the news collection
type NewsRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewNewsRepository creates the repository over the news collection
func NewNewsRepository(db *database.Mongo, logger zerolog.Logger) *NewsRepository {
	return &NewsRepository{
		col:    db.Collection("news"),
		logger: logger,
	}
}

// Insert writes one news item
func (r *NewsRepository) Insert(ctx context.Context, item *entities.NewsItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert news item: %w", err)
	}

	r.logger.Info().Str("title", item.Title).Msg("News item published")
	return nil
}

// ListRecent returns the most recent items, newest first, internal id omitted
func (r *NewsRepository) ListRecent(ctx context.Context, limit int) ([]entities.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{bson.E{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer cur.Close(ctx)

	items := []entities.NewsItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}
	return items, nil
}
