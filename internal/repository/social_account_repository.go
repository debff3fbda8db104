package repository

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crosspostr/crosspostr/internal/models"
)

type SocialAccountRepository interface {
	Create(ctx context.Context, account *models.SocialAccount) error
	ListActive(ctx context.Context) ([]*models.SocialAccount, error)
	Deactivate(ctx context.Context, id string) (bool, error)
}

type socialAccountRepository struct {
	col *mongo.Collection
}

func NewSocialAccountRepository(db *mongo.Database) SocialAccountRepository {
	return &socialAccountRepository{col: db.Collection("social_accounts")}
}

func (r *socialAccountRepository) Create(ctx context.Context, account *models.SocialAccount) error {
	_, err := r.col.InsertOne(ctx, account)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) ListActive(ctx context.Context) ([]*models.SocialAccount, error) {
	cursor, err := r.col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []*models.SocialAccount
	if err := cursor.All(ctx, &accounts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return accounts, nil
}

// Deactivate soft-deletes by flipping is_active; the document stays so
// historical references remain resolvable.
func (r *socialAccountRepository) Deactivate(ctx context.Context, id string) (bool, error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return result.MatchedCount > 0, nil
}
