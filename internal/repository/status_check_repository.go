package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crosspostr/crosspostr/internal/models"
)

type StatusCheckRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int64) ([]*models.StatusCheck, error)
}

type statusCheckRepository struct {
	col *mongo.Collection
}

func NewStatusCheckRepository(db *mongo.Database) StatusCheckRepository {
	return &statusCheckRepository{col: db.Collection("status_checks")}
}

func (r *statusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	_, err := r.col.InsertOne(ctx, check)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *statusCheckRepository) List(ctx context.Context, limit int64) ([]*models.StatusCheck, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []*models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return checks, nil
}
