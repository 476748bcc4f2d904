// Package entities contains domain entities
package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DramaKind discriminates finished dramas from ongoing ones
type DramaKind string

const (
	KindDrama   DramaKind = "drama"
	KindOngoing DramaKind = "ongoing"
)

// FileRef points at an uploaded file stored on Telegram servers
type FileRef struct {
	FileID   string `bson:"file_id" json:"file_id"`
	FileName string `bson:"file_name" json:"file_name"`
	FileSize int64  `bson:"file_size" json:"file_size"`
}

// Drama is a persisted catalog record. Never mutated after creation.
type Drama struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	ChannelLink string             `bson:"channel_link" json:"channel_link"`
	PosterImage string             `bson:"poster_image" json:"poster_image"`
	Files       []FileRef          `bson:"files" json:"files"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	Type        DramaKind          `bson:"type" json:"type"`
}

// NewsItem is a published news post
type NewsItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// User is a known bot user, upserted on every /start
type User struct {
	UserID    int64     `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	FirstName string    `bson:"first_name" json:"first_name"`
	LastSeen  time.Time `bson:"last_seen" json:"last_seen"`
}

// ForceSubConfig is the singleton force-subscription setting
type ForceSubConfig struct {
	ChannelID string `bson:"channel_id" json:"channel_id"`
}

// Submission is the transient record under construction during an upload
// conversation. Owned by a single chat session, never shared.
type Submission struct {
	ChannelLink string
	PosterImage string
	Files       []FileRef
}

// NewsDraft is the transient news post under construction
type NewsDraft struct {
	Title   string
	Content string
	Image   string
}
