package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
	"github.com/crosspostr/crosspostr/pkg/utils"
)

type SocialAccountService interface {
	Create(ctx context.Context, input *transfer.SocialAccountCreate) (*models.SocialAccount, error)
	List(ctx context.Context) ([]*models.SocialAccount, error)
	Remove(ctx context.Context, id string) error
}

type socialAccountService struct {
	cfg      config.Config
	sa       repository.SocialAccountRepository
	validate *validator.Validate
}

func NewSocialAccountService(cfg config.Config, sa repository.SocialAccountRepository) SocialAccountService {
	return &socialAccountService{
		cfg:      cfg,
		sa:       sa,
		validate: validator.New(),
	}
}

func (s *socialAccountService) Create(ctx context.Context, input *transfer.SocialAccountCreate) (*models.SocialAccount, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	account := &models.SocialAccount{
		ID:           uuid.NewString(),
		Platform:     input.Platform,
		Username:     input.Username,
		AccessToken:  input.AccessToken,
		RefreshToken: input.RefreshToken,
		AccountID:    input.AccountID,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	stored := *account
	if s.encryptionReady() {
		var err error
		stored.AccessToken, err = utils.Encrypt([]byte(account.AccessToken), []byte(s.cfg.SecretKey))
		if err != nil {
			return nil, err
		}
		if account.RefreshToken != "" {
			stored.RefreshToken, err = utils.Encrypt([]byte(account.RefreshToken), []byte(s.cfg.SecretKey))
			if err != nil {
				return nil, err
			}
		}
	}

	if err := s.sa.Create(ctx, &stored); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *socialAccountService) List(ctx context.Context) ([]*models.SocialAccount, error) {
	accounts, err := s.sa.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.encryptionReady() {
		for _, account := range accounts {
			if token, err := utils.Decrypt(account.AccessToken, []byte(s.cfg.SecretKey)); err == nil {
				account.AccessToken = token
			} else {
				slog.Info("leaving undecryptable access token as stored")
			}
			if account.RefreshToken == "" {
				continue
			}
			if token, err := utils.Decrypt(account.RefreshToken, []byte(s.cfg.SecretKey)); err == nil {
				account.RefreshToken = token
			}
		}
	}

	return accounts, nil
}

func (s *socialAccountService) Remove(ctx context.Context, id string) error {
	matched, err := s.sa.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return ErrAccountNotFound
	}
	return nil
}

// encryptionReady reports whether SECRET_KEY is a usable AES key. With no key
// configured tokens are stored as provided.
func (s *socialAccountService) encryptionReady() bool {
	switch len(s.cfg.SecretKey) {
	case 16, 24, 32:
		return true
	}
	return false
}
