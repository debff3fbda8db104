package models

import "time"

// LinkedinUser is the token record persisted after a completed OAuth exchange.
type LinkedinUser struct {
	ID          string    `bson:"id" json:"id"`
	LinkedinID  string    `bson:"linkedin_id" json:"linkedin_id"`
	FirstName   string    `bson:"first_name" json:"first_name"`
	LastName    string    `bson:"last_name" json:"last_name"`
	AccessToken string    `bson:"access_token" json:"access_token"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
