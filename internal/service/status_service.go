package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type StatusCheckService interface {
	Create(ctx context.Context, input *transfer.StatusCheckCreate) (*models.StatusCheck, error)
	List(ctx context.Context) ([]*models.StatusCheck, error)
}

type statusCheckService struct {
	sc       repository.StatusCheckRepository
	validate *validator.Validate
}

func NewStatusCheckService(sc repository.StatusCheckRepository) StatusCheckService {
	return &statusCheckService{sc: sc, validate: validator.New()}
}

func (s *statusCheckService) Create(ctx context.Context, input *transfer.StatusCheckCreate) (*models.StatusCheck, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: input.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.sc.Create(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *statusCheckService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	return s.sc.List(ctx, 1000)
}
