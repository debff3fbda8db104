package models

import "time"

type Post struct {
	ID            string                 `bson:"id" json:"id"`
	Title         string                 `bson:"title" json:"title"`
	Content       string                 `bson:"content" json:"content"`
	MediaFiles    []string               `bson:"media_files" json:"media_files"`
	Platforms     []string               `bson:"platforms" json:"platforms"`
	Status        string                 `bson:"status" json:"status"` // draft, scheduled, published, failed
	ScheduledTime *time.Time             `bson:"scheduled_time,omitempty" json:"scheduled_time,omitempty"`
	PublishedTime *time.Time             `bson:"published_time,omitempty" json:"published_time,omitempty"`
	SocialPostIDs map[string]string      `bson:"social_post_ids" json:"social_post_ids"`
	Analytics     map[string]interface{} `bson:"analytics" json:"analytics"`
	UserID        string                 `bson:"user_id" json:"user_id"`
	CreatedAt     time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at" json:"updated_at"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)

// DefaultUserID is the single-tenant owner recorded on every post.
const DefaultUserID = "default_user"
