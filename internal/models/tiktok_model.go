package models

import "time"

// TiktokVideo is bookkeeping for videos pushed through the direct upload endpoint.
type TiktokVideo struct {
	ID           string    `bson:"id" json:"id"`
	VideoID      string    `bson:"video_id" json:"video_id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	AdvertiserID string    `bson:"advertiser_id" json:"advertiser_id"`
	Status       string    `bson:"status" json:"status"` // uploaded, published
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// TiktokAnalytics caches the last reporting snapshot per video. Upserted,
// unlike the append-only analytics collection.
type TiktokAnalytics struct {
	VideoID     string    `bson:"video_id" json:"video_id"`
	Likes       int       `bson:"likes" json:"likes"`
	Comments    int       `bson:"comments" json:"comments"`
	Shares      int       `bson:"shares" json:"shares"`
	Views       int       `bson:"views" json:"views"`
	Impressions int       `bson:"impressions" json:"impressions"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
