package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type PublishService interface {
	Publish(ctx context.Context, postID string, auth *transfer.PublishRequest) (map[string]transfer.PublishResult, string, error)
}

type publishService struct {
	p  repository.PostRepository
	a  repository.AnalyticsRepository
	tw TwitterService
	li LinkedinService
	tt TiktokService
}

func NewPublishService(
	p repository.PostRepository,
	a repository.AnalyticsRepository,
	tw TwitterService,
	li LinkedinService,
	tt TiktokService) PublishService {
	return &publishService{
		p:  p,
		a:  a,
		tw: tw,
		li: li,
		tt: tt,
	}
}

// Publish fans one post out to its target platforms, strictly in list order
// and strictly sequentially. Platform failures never abort the loop; they
// land in the results map. The post is marked published if any platform
// succeeded, failed otherwise, and the full state is written back in one
// update.
func (s *publishService) Publish(ctx context.Context, postID string, auth *transfer.PublishRequest) (map[string]transfer.PublishResult, string, error) {
	post, err := s.p.GetByID(ctx, postID)
	if err != nil {
		return nil, "", err
	}
	if post == nil {
		return nil, "", ErrPostNotFound
	}

	results := make(map[string]transfer.PublishResult, len(post.Platforms))
	socialPostIDs := post.SocialPostIDs
	if socialPostIDs == nil {
		socialPostIDs = map[string]string{}
	}

	anySuccess := false
	for _, platform := range post.Platforms {
		result := s.dispatch(ctx, platform, post, auth)
		results[platform] = result

		if !result.Success {
			log.Printf("Publish to %s failed for post %s: %s", platform, post.ID, result.Error)
			continue
		}

		anySuccess = true
		socialPostIDs[platform] = result.PostID

		snapshot := &models.Analytics{
			ID:        uuid.NewString(),
			PostID:    post.ID,
			Platform:  platform,
			CreatedAt: time.Now().UTC(),
		}
		if m := result.Metrics; m != nil {
			snapshot.Likes = m.Likes
			snapshot.Shares = m.Shares
			snapshot.Comments = m.Comments
			snapshot.Reach = m.Reach
			snapshot.Impressions = m.Impressions
			snapshot.EngagementRate = m.EngagementRate
		}
		if err := s.a.Insert(ctx, snapshot); err != nil {
			log.Printf("Error recording analytics for post %s on %s: %v", post.ID, platform, err)
		}
	}

	status := models.PostStatusFailed
	if anySuccess {
		status = models.PostStatusPublished
	}

	patch := bson.M{
		"status":          status,
		"published_time":  time.Now().UTC(),
		"social_post_ids": socialPostIDs,
		"analytics":       results,
	}
	if _, err := s.p.Update(ctx, post.ID, patch); err != nil {
		return nil, "", err
	}

	return results, status, nil
}

func (s *publishService) dispatch(ctx context.Context, platform string, post *models.Post, auth *transfer.PublishRequest) transfer.PublishResult {
	switch platform {
	case "twitter":
		return s.tw.Publish(ctx, post.Content, post.MediaFiles)

	case "linkedin":
		if auth == nil || auth.LinkedinAuth == nil || auth.LinkedinAuth.AccessToken == "" {
			return transfer.Failure("linkedin", "LinkedIn access token required")
		}
		return s.li.Publish(ctx, post.Content, "PUBLIC", auth.LinkedinAuth.AccessToken)

	case "tiktok":
		if auth == nil || auth.TiktokAuth == nil || auth.TiktokAuth.AccessToken == "" {
			return transfer.Failure("tiktok", "TikTok access token required")
		}
		return s.tt.Publish(ctx, post.Title, post.MediaFiles, auth.TiktokAuth)

	default:
		return transfer.Failure(platform, fmt.Sprintf("%s integration not yet implemented", platform))
	}
}
