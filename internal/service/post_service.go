package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type PostService interface {
	Create(ctx context.Context, input *transfer.PostCreate) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, patch *transfer.PostUpdate) (*models.Post, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, status string, limit int64) ([]*models.Post, error)
	Calendar(ctx context.Context, startDate, endDate string) ([]*models.Post, error)
}

type postService struct {
	p        repository.PostRepository
	validate *validator.Validate
}

func NewPostService(p repository.PostRepository) PostService {
	return &postService{
		p:        p,
		validate: validator.New(),
	}
}

func (s *postService) Create(ctx context.Context, input *transfer.PostCreate) (*models.Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var scheduledTime *time.Time
	if input.ScheduledTime != "" {
		t, err := ParseFlexibleTime(input.ScheduledTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		scheduledTime = &t
	}

	mediaFiles := input.MediaFiles
	if mediaFiles == nil {
		mediaFiles = []string{}
	}
	platforms := input.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Content:       input.Content,
		MediaFiles:    mediaFiles,
		Platforms:     platforms,
		Status:        models.PostStatusDraft,
		ScheduledTime: scheduledTime,
		SocialPostIDs: map[string]string{},
		Analytics:     map[string]interface{}{},
		UserID:        models.DefaultUserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.p.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.p.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update applies partial-patch semantics: only fields present in the request
// body are written, and updated_at is always refreshed.
func (s *postService) Update(ctx context.Context, id string, patch *transfer.PostUpdate) (*models.Post, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.MediaFiles != nil {
		set["media_files"] = *patch.MediaFiles
	}
	if patch.Platforms != nil {
		set["platforms"] = *patch.Platforms
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.ScheduledTime != nil {
		t, err := ParseFlexibleTime(*patch.ScheduledTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		set["scheduled_time"] = t
	}

	matched, err := s.p.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrPostNotFound
	}

	return s.Get(ctx, id)
}

func (s *postService) Remove(ctx context.Context, id string) error {
	deleted, err := s.p.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}

func (s *postService) List(ctx context.Context, status string, limit int64) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.p.List(ctx, status, limit)
}

func (s *postService) Calendar(ctx context.Context, startDate, endDate string) ([]*models.Post, error) {
	start, err := ParseFlexibleTime(startDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := ParseFlexibleTime(endDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	return s.p.ListByDateRange(ctx, start, end)
}
