package models

import "time"

// SocialAccount is a stored credential binding. It is a standalone registry:
// the publish path takes its credentials per call and never reads this table.
type SocialAccount struct {
	ID           string    `bson:"id" json:"id"`
	Platform     string    `bson:"platform" json:"platform"`
	Username     string    `bson:"username" json:"username"`
	AccessToken  string    `bson:"access_token" json:"access_token"`
	RefreshToken string    `bson:"refresh_token,omitempty" json:"refresh_token,omitempty"`
	AccountID    string    `bson:"account_id" json:"account_id"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
