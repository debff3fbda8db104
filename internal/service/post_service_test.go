package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

func TestPostCreateDefaults(t *testing.T) {
	repo := &fakePostRepo{}
	s := NewPostService(repo)

	post, err := s.Create(context.Background(), &transfer.PostCreate{
		Title:   "Launch",
		Content: "We shipped",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Equal(t, models.DefaultUserID, post.UserID)
	assert.NotNil(t, post.MediaFiles)
	assert.Empty(t, post.MediaFiles)
	assert.NotNil(t, post.Platforms)
	assert.NotNil(t, post.SocialPostIDs)
	assert.NotNil(t, post.Analytics)
	assert.Nil(t, post.ScheduledTime)
	assert.Nil(t, post.PublishedTime)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	require.Len(t, repo.created, 1)
}

func TestPostCreateParsesScheduledTime(t *testing.T) {
	s := NewPostService(&fakePostRepo{})

	post, err := s.Create(context.Background(), &transfer.PostCreate{
		Title:         "Launch",
		Content:       "We shipped",
		ScheduledTime: "2026-09-01T09:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, post.ScheduledTime)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), post.ScheduledTime.UTC())
}

func TestPostCreateRequiresTitleAndContent(t *testing.T) {
	s := NewPostService(&fakePostRepo{})

	_, err := s.Create(context.Background(), &transfer.PostCreate{Content: "no title"})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = s.Create(context.Background(), &transfer.PostCreate{Title: "no content"})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPostCreateRejectsBadScheduledTime(t *testing.T) {
	s := NewPostService(&fakePostRepo{})

	_, err := s.Create(context.Background(), &transfer.PostCreate{
		Title:         "Launch",
		Content:       "We shipped",
		ScheduledTime: "whenever",
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPostGetNotFound(t *testing.T) {
	s := NewPostService(&fakePostRepo{})

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostGetPropagatesRepoError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakePostRepo{
		getByID: func(ctx context.Context, id string) (*models.Post, error) {
			return nil, boom
		},
	}
	s := NewPostService(repo)

	_, err := s.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, boom)
}

func TestPostUpdatePatchesOnlyProvidedFields(t *testing.T) {
	existing := &models.Post{ID: "p1", Title: "old", Content: "old"}
	repo := &fakePostRepo{
		updateOK: true,
		getByID: func(ctx context.Context, id string) (*models.Post, error) {
			return existing, nil
		},
	}
	s := NewPostService(repo)

	title := "new title"
	status := models.PostStatusScheduled
	_, err := s.Update(context.Background(), "p1", &transfer.PostUpdate{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	patch := repo.updates[0]
	assert.Equal(t, bson.M{"title": "new title", "status": models.PostStatusScheduled}, patch)
	_, hasContent := patch["content"]
	assert.False(t, hasContent)
}

func TestPostUpdateNotFound(t *testing.T) {
	repo := &fakePostRepo{updateOK: false}
	s := NewPostService(repo)

	title := "x"
	_, err := s.Update(context.Background(), "missing", &transfer.PostUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostRemoveNotFound(t *testing.T) {
	s := NewPostService(&fakePostRepo{removeOK: false})

	err := s.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostListDefaultLimit(t *testing.T) {
	var gotLimit int64
	repo := &fakePostRepo{
		listFn: func(ctx context.Context, status string, limit int64) ([]*models.Post, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	s := NewPostService(repo)

	_, err := s.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(50), gotLimit)
}

func TestPostCalendarRejectsBadDates(t *testing.T) {
	s := NewPostService(&fakePostRepo{})

	_, err := s.Calendar(context.Background(), "not-a-date", "2026-01-31")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = s.Calendar(context.Background(), "2026-01-01", "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestPostCalendarPassesParsedRange(t *testing.T) {
	var gotStart, gotEnd time.Time
	repo := &fakePostRepo{
		rangeFn: func(ctx context.Context, start, end time.Time) ([]*models.Post, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}
	s := NewPostService(repo)

	_, err := s.Calendar(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), gotEnd)
}
