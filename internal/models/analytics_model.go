package models

import "time"

// Analytics is an append-only metrics snapshot for one (post, platform) pair.
type Analytics struct {
	ID             string    `bson:"id" json:"id"`
	PostID         string    `bson:"post_id" json:"post_id"`
	Platform       string    `bson:"platform" json:"platform"`
	Likes          int       `bson:"likes" json:"likes"`
	Shares         int       `bson:"shares" json:"shares"`
	Comments       int       `bson:"comments" json:"comments"`
	Reach          int       `bson:"reach" json:"reach"`
	Impressions    int       `bson:"impressions" json:"impressions"`
	EngagementRate float64   `bson:"engagement_rate" json:"engagement_rate"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
