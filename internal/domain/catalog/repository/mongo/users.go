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

// UserRepository persists known users in the users collection
type UserRepository struct {
	col    *mongo.Collection
	logger zerolog.Logger
}

// NewUserRepository creates the repository over the users collection
func NewUserRepository(db *database.Mongo, logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		col:    db.Collection("users"),
		logger: logger,
	}
}

// Upsert creates or refreshes a user record keyed by user id
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": user.UserID},
		bson.M{"$set": bson.M{
			"user_id":    user.UserID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_seen":  user.LastSeen,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// List returns every known user
func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []entities.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
