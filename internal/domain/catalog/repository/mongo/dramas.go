// Package mongo contains MongoDB repositories for the catalog domain
package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
	"github.com/bibegs/dramawallah-bot/internal/infrastructure/database"
)

const queryTimeout = 9 * time.Second

// DramaRepository persists catalog records in the dramas collection
type DramaRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewDramaRepository creates the repository over the dramas collection
func NewDramaRepository(db *database.Mongo, logger zerolog.Logger) *DramaRepository {
	return &DramaRepository{
		col:    db.Collection("dramas"),
		logger: logger,
	}
}

// Insert writes exactly one new record
func (r *DramaRepository) Insert(ctx context.Context, drama *entities.Drama) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, drama); err != nil {
		return fmt.Errorf("failed to insert drama: %w", err)
	}

	r.logger.Info().
		Str("name", drama.Name).
		Str("type", string(drama.Type)).
		Int("files", len(drama.Files)).
		Msg("Drama record created")

	return nil
}

// FindByName returns the first record whose name contains the query,
// case-insensitively. The raw query is used as a regex pattern, matching
// the original first-match search semantics.
func (r *DramaRepository) FindByName(ctx context.Context, query string) (*entities.Drama, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": strings.TrimSpace(query), "$options": "i"}}

	var drama entities.Drama
	err := r.col.FindOne(ctx, filter).Decode(&drama)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find drama: %w", err)
	}
	return &drama, nil
}

// List returns every record, oldest first
func (r *DramaRepository) List(ctx context.Context) ([]entities.Drama, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list dramas: %w", err)
	}
	defer cur.Close(ctx)

	var dramas []entities.Drama
	if err := cur.All(ctx, &dramas); err != nil {
		return nil, fmt.Errorf("failed to decode dramas: %w", err)
	}
	return dramas, nil
}

// ListByKind returns all records of one kind with the internal id omitted
func (r *DramaRepository) ListByKind(ctx context.Context, kind entities.DramaKind) ([]entities.Drama, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cur, err := r.col.Find(ctx, bson.M{"type": kind}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", kind, err)
	}
	defer cur.Close(ctx)

	dramas := []entities.Drama{}
	if err := cur.All(ctx, &dramas); err != nil {
		return nil, fmt.Errorf("failed to decode %s records: %w", kind, err)
	}
	return dramas, nil
}

// Delete removes a record by its hex object id
func (r *DramaRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid drama id %q: %w", id, err)
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("failed to delete drama: %w", err)
	}

	r.logger.Info().Str("id", id).Msg("Drama record removed")
	return nil
}
