package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crosspostr/crosspostr/internal/models"
)

type AnalyticsRepository interface {
	Insert(ctx context.Context, snapshot *models.Analytics) error
	ListByPostID(ctx context.Context, postID string) ([]*models.Analytics, error)
	ListRecent(ctx context.Context, limit int64) ([]*models.Analytics, error)
}

type analyticsRepository struct {
	col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) AnalyticsRepository {
	return &analyticsRepository{col: db.Collection("analytics")}
}

// Insert appends a snapshot row. The collection is append-only; rows are
// never updated or deduplicated.
func (r *analyticsRepository) Insert(ctx context.Context, snapshot *models.Analytics) error {
	_, err := r.col.InsertOne(ctx, snapshot)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsRepository) ListByPostID(ctx context.Context, postID string) ([]*models.Analytics, error) {
	cursor, err := r.col.Find(ctx, bson.M{"post_id": postID})
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*models.Analytics
	if err := cursor.All(ctx, &rows); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) ListRecent(ctx context.Context, limit int64) ([]*models.Analytics, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []*models.Analytics
	if err := cursor.All(ctx, &rows); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return rows, nil
}
