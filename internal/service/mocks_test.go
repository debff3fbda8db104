package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

// In-memory fakes for the repository and platform interfaces. Each field
// overrides one method; unset methods return zero values.

type fakePostRepo struct {
	created    []*models.Post
	getByID    func(ctx context.Context, id string) (*models.Post, error)
	updates    []bson.M
	updateOK   bool
	removeOK   bool
	listFn     func(ctx context.Context, status string, limit int64) ([]*models.Post, error)
	rangeFn    func(ctx context.Context, start, end time.Time) ([]*models.Post, error)
	countsBySt map[string]int64
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	f.created = append(f.created, post)
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if f.getByID != nil {
		return f.getByID(ctx, id)
	}
	return nil, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id string, patch bson.M) (bool, error) {
	f.updates = append(f.updates, patch)
	return f.updateOK, nil
}

func (f *fakePostRepo) Remove(ctx context.Context, id string) (bool, error) {
	return f.removeOK, nil
}

func (f *fakePostRepo) List(ctx context.Context, status string, limit int64) ([]*models.Post, error) {
	if f.listFn != nil {
		return f.listFn(ctx, status, limit)
	}
	return nil, nil
}

func (f *fakePostRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Post, error) {
	if f.rangeFn != nil {
		return f.rangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakePostRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.countsBySt[status], nil
}

type fakeAnalyticsRepo struct {
	inserted []*models.Analytics
	recent   []*models.Analytics
}

func (f *fakeAnalyticsRepo) Insert(ctx context.Context, snapshot *models.Analytics) error {
	f.inserted = append(f.inserted, snapshot)
	return nil
}

func (f *fakeAnalyticsRepo) ListByPostID(ctx context.Context, postID string) ([]*models.Analytics, error) {
	var out []*models.Analytics
	for _, row := range f.inserted {
		if row.PostID == postID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) ListRecent(ctx context.Context, limit int64) ([]*models.Analytics, error) {
	return f.recent, nil
}

type fakeTiktokVideoRepo struct {
	created  []*models.TiktokVideo
	statuses map[string]string
	count    int64
	upserts  []*models.TiktokAnalytics
}

func (f *fakeTiktokVideoRepo) Create(ctx context.Context, video *models.TiktokVideo) error {
	f.created = append(f.created, video)
	return nil
}

func (f *fakeTiktokVideoRepo) SetStatus(ctx context.Context, videoID, status string) error {
	if f.statuses == nil {
		f.statuses = map[string]string{}
	}
	f.statuses[videoID] = status
	return nil
}

func (f *fakeTiktokVideoRepo) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeTiktokVideoRepo) UpsertAnalytics(ctx context.Context, snapshot *models.TiktokAnalytics) error {
	f.upserts = append(f.upserts, snapshot)
	return nil
}

type fakeTwitter struct {
	result transfer.PublishResult
	calls  int
}

func (f *fakeTwitter) Publish(ctx context.Context, text string, mediaFiles []string) transfer.PublishResult {
	f.calls++
	return f.result
}

func (f *fakeTwitter) FetchMetrics(ctx context.Context, tweetID string) (*transfer.PublishMetrics, error) {
	return f.result.Metrics, nil
}

type fakeLinkedin struct {
	result transfer.PublishResult
	calls  int
}

func (f *fakeLinkedin) Publish(ctx context.Context, text, visibility, accessToken string) transfer.PublishResult {
	f.calls++
	return f.result
}

func (f *fakeLinkedin) Profile(ctx context.Context, accessToken string) (*transfer.LinkedinProfile, error) {
	return nil, nil
}

func (f *fakeLinkedin) BuildAuthorizationURL() (string, string, error) {
	return "", "", nil
}

func (f *fakeLinkedin) ExchangeCode(ctx context.Context, code, state string) (*transfer.LinkedinAuthResult, error) {
	return nil, nil
}

type fakeTiktok struct {
	result transfer.PublishResult
	calls  int
}

func (f *fakeTiktok) Publish(ctx context.Context, title string, mediaFiles []string, auth *transfer.TiktokAuth) transfer.PublishResult {
	f.calls++
	return f.result
}

func (f *fakeTiktok) Upload(ctx context.Context, data []byte, title, description string, auth *transfer.TiktokAuth) (string, error) {
	return "", nil
}

func (f *fakeTiktok) PublishVideo(ctx context.Context, videoID, privacyLevel string, auth *transfer.TiktokAuth) (string, error) {
	return "", nil
}

func (f *fakeTiktok) FetchMetrics(ctx context.Context, videoID string, auth *transfer.TiktokAuth) (*models.TiktokAnalytics, error) {
	return nil, nil
}
