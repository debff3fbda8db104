package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type AnalyticsService interface {
	Record(ctx context.Context, snapshot *models.Analytics) (*models.Analytics, error)
	ListForPost(ctx context.Context, postID string) ([]*models.Analytics, error)
	Dashboard(ctx context.Context) (*transfer.DashboardStats, error)
}

type analyticsService struct {
	a  repository.AnalyticsRepository
	p  repository.PostRepository
	tv repository.TiktokVideoRepository
}

func NewAnalyticsService(a repository.AnalyticsRepository, p repository.PostRepository, tv repository.TiktokVideoRepository) AnalyticsService {
	return &analyticsService{a: a, p: p, tv: tv}
}

func (s *analyticsService) Record(ctx context.Context, snapshot *models.Analytics) (*models.Analytics, error) {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	}

	if err := s.a.Insert(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *analyticsService) ListForPost(ctx context.Context, postID string) ([]*models.Analytics, error) {
	return s.a.ListByPostID(ctx, postID)
}

func (s *analyticsService) Dashboard(ctx context.Context) (*transfer.DashboardStats, error) {
	total, err := s.p.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	published, err := s.p.CountByStatus(ctx, models.PostStatusPublished)
	if err != nil {
		return nil, err
	}
	scheduled, err := s.p.CountByStatus(ctx, models.PostStatusScheduled)
	if err != nil {
		return nil, err
	}
	drafts, err := s.p.CountByStatus(ctx, models.PostStatusDraft)
	if err != nil {
		return nil, err
	}
	tiktokVideos, err := s.tv.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.a.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*models.Analytics{}
	}

	return &transfer.DashboardStats{
		TotalPosts:      total,
		PublishedPosts:  published,
		ScheduledPosts:  scheduled,
		DraftPosts:      drafts,
		TiktokVideos:    tiktokVideos,
		RecentAnalytics: recent,
	}, nil
}
