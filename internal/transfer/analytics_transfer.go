package transfer

import "github.com/crosspostr/crosspostr/internal/models"

type DashboardStats struct {
	TotalPosts      int64               `json:"total_posts"`
	PublishedPosts  int64               `json:"published_posts"`
	ScheduledPosts  int64               `json:"scheduled_posts"`
	DraftPosts      int64               `json:"draft_posts"`
	TiktokVideos    int64               `json:"tiktok_videos"`
	RecentAnalytics []*models.Analytics `json:"recent_analytics"`
}
