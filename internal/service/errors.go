package service

import "errors"

// Caller-visible error taxonomy. Handlers translate these to HTTP statuses;
// platform failures never surface here, they are folded into PublishResults.
var (
	ErrPostNotFound        = errors.New("Post not found")
	ErrAccountNotFound     = errors.New("Account not found")
	ErrInvalidDateRange    = errors.New("Invalid date format")
	ErrInvalidPayload      = errors.New("Invalid request payload")
	ErrOAuthCallbackFailed = errors.New("OAuth callback failed")
	ErrVideoRequired       = errors.New("TikTok requires video content")
)
