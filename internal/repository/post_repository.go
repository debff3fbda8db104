package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crosspostr/crosspostr/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, patch bson.M) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, status string, limit int64) ([]*models.Post, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Post, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type postRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{col: db.Collection("posts")}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	_, err := r.col.InsertOne(ctx, post)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &post, nil
}

// Update applies a $set patch and always refreshes updated_at. It reports
// whether a document matched.
func (r *postRepository) Update(ctx context.Context, id string, patch bson.M) (bool, error) {
	patch["updated_at"] = time.Now().UTC()

	result, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *postRepository) Remove(ctx context.Context, id string) (bool, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *postRepository) List(ctx context.Context, status string, limit int64) ([]*models.Post, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

// ListByDateRange matches posts whose scheduled_time OR published_time falls
// in [start, end], sorted by scheduled_time ascending. Posts with neither
// field set never match.
func (r *postRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Post, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"scheduled_time": bson.M{"$gte": start, "$lte": end}},
			{"published_time": bson.M{"$gte": start, "$lte": end}},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_time", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}
