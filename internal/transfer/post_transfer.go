package transfer

type PostCreate struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	MediaFiles    []string `json:"media_files"`
	Platforms     []string `json:"platforms"`
	ScheduledTime string   `json:"scheduled_time"`
}

// PostUpdate carries a partial patch. Only non-nil fields are applied.
type PostUpdate struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	MediaFiles    *[]string `json:"media_files"`
	Platforms     *[]string `json:"platforms"`
	Status        *string   `json:"status"`
	ScheduledTime *string   `json:"scheduled_time"`
}

type LinkedinAuth struct {
	AccessToken string `json:"access_token"`
}

type TiktokAuth struct {
	AccessToken  string `json:"access_token"`
	AdvertiserID string `json:"advertiser_id"`
}

// PublishRequest is the optional per-call credential payload accepted by
// POST /posts/:id/publish.
type PublishRequest struct {
	LinkedinAuth *LinkedinAuth `json:"linkedin_auth"`
	TiktokAuth   *TiktokAuth   `json:"tiktok_auth"`
}

type PublishMetrics struct {
	Likes          int     `bson:"likes" json:"likes"`
	Shares         int     `bson:"shares" json:"shares"`
	Comments       int     `bson:"comments" json:"comments"`
	Reach          int     `bson:"reach" json:"reach"`
	Impressions    int     `bson:"impressions" json:"impressions"`
	EngagementRate float64 `bson:"engagement_rate" json:"engagement_rate"`
}

// PublishResult is the per-platform outcome of one publish attempt.
// Adapters must return it for every call, successful or not; failures never
// propagate past the adapter boundary.
type PublishResult struct {
	Success  bool            `bson:"success" json:"success"`
	Platform string          `bson:"platform" json:"platform"`
	PostID   string          `bson:"post_id,omitempty" json:"post_id,omitempty"`
	Metrics  *PublishMetrics `bson:"metrics,omitempty" json:"metrics,omitempty"`
	Error    string          `bson:"error,omitempty" json:"error,omitempty"`
}

func Failure(platform, message string) PublishResult {
	return PublishResult{Success: false, Platform: platform, Error: message}
}

type SocialAccountCreate struct {
	Platform     string `json:"platform" validate:"required"`
	Username     string `json:"username" validate:"required"`
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
	AccountID    string `json:"account_id" validate:"required"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" validate:"required"`
}
