package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crosspostr/crosspostr/internal/models"
)

type LinkedinUserRepository interface {
	Create(ctx context.Context, user *models.LinkedinUser) error
}

type linkedinUserRepository struct {
	col *mongo.Collection
}

func NewLinkedinUserRepository(db *mongo.Database) LinkedinUserRepository {
	return &linkedinUserRepository{col: db.Collection("linkedin_users")}
}

func (r *linkedinUserRepository) Create(ctx context.Context, user *models.LinkedinUser) error {
	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
