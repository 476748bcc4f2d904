// Package deps contains interface definitions for the catalog domain dependencies
package deps

import (
	"context"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
)

// TelegramSender defines interface for sending messages via Telegram.
// This interface is used to break the cyclic dependency between UseCase and
// the Telegram handlers.
type TelegramSender interface {
	// SendMessage sends a text message to a chat
	SendMessage(ctx context.Context, chatID int64, text string) error

	// CopyMessage copies a message into a chat without a forward header
	CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error
}

// DramaRepository defines interface for catalog record data access
type DramaRepository interface {
	// Insert writes exactly one new record; records are never updated
	Insert(ctx context.Context, drama *entities.Drama) error

	// FindByName returns the first record whose name contains the query,
	// case-insensitively. Returns nil, nil when nothing matches.
	FindByName(ctx context.Context, query string) (*entities.Drama, error)

	// List returns every record (name and id populated)
	List(ctx context.Context) ([]entities.Drama, error)

	// ListByKind returns all records of one kind, internal id omitted
	ListByKind(ctx context.Context, kind entities.DramaKind) ([]entities.Drama, error)

	// Delete removes a record by its hex object id
	Delete(ctx context.Context, id string) error
}

// NewsRepository defines interface for news post data access
type NewsRepository interface {
	// Insert writes one news item
	Insert(ctx context.Context, item *entities.NewsItem) error

	// ListRecent returns the most recent items, newest first
	ListRecent(ctx context.Context, limit int) ([]entities.NewsItem, error)
}

// UserRepository defines interface for known-user data access
type UserRepository interface {
	// Upsert creates or refreshes a user record keyed by user id
	Upsert(ctx context.Context, user *entities.User) error

	// List returns every known user
	List(ctx context.Context) ([]entities.User, error)
}

// ForceSubRepository defines interface for the force-subscription singleton
type ForceSubRepository interface {
	// Set upserts the configured channel id
	Set(ctx context.Context, channelID string) error

	// Delete removes the configuration
	Delete(ctx context.Context) error
}
