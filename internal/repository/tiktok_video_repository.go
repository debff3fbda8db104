package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crosspostr/crosspostr/internal/models"
)

type TiktokVideoRepository interface {
	Create(ctx context.Context, video *models.TiktokVideo) error
	SetStatus(ctx context.Context, videoID, status string) error
	Count(ctx context.Context) (int64, error)
	UpsertAnalytics(ctx context.Context, snapshot *models.TiktokAnalytics) error
}

type tiktokVideoRepository struct {
	videos    *mongo.Collection
	analytics *mongo.Collection
}

func NewTiktokVideoRepository(db *mongo.Database) TiktokVideoRepository {
	return &tiktokVideoRepository{
		videos:    db.Collection("tiktok_videos"),
		analytics: db.Collection("tiktok_analytics"),
	}
}

func (r *tiktokVideoRepository) Create(ctx context.Context, video *models.TiktokVideo) error {
	_, err := r.videos.InsertOne(ctx, video)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *tiktokVideoRepository) SetStatus(ctx context.Context, videoID, status string) error {
	_, err := r.videos.UpdateOne(ctx,
		bson.M{"video_id": videoID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *tiktokVideoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.videos.CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}

// UpsertAnalytics replaces the cached reporting snapshot for a video. This is
// the one collection written with upsert semantics.
func (r *tiktokVideoRepository) UpsertAnalytics(ctx context.Context, snapshot *models.TiktokAnalytics) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.analytics.ReplaceOne(ctx, bson.M{"video_id": snapshot.VideoID}, snapshot, opts)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
