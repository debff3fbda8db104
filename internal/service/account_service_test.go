package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type fakeSocialAccountRepo struct {
	stored      []*models.SocialAccount
	deactivated []string
	matched     bool
}

func (f *fakeSocialAccountRepo) Create(ctx context.Context, account *models.SocialAccount) error {
	f.stored = append(f.stored, account)
	return nil
}

func (f *fakeSocialAccountRepo) ListActive(ctx context.Context) ([]*models.SocialAccount, error) {
	return f.stored, nil
}

func (f *fakeSocialAccountRepo) Deactivate(ctx context.Context, id string) (bool, error) {
	f.deactivated = append(f.deactivated, id)
	return f.matched, nil
}

func accountInput() *transfer.SocialAccountCreate {
	return &transfer.SocialAccountCreate{
		Platform:    "twitter",
		Username:    "ada",
		AccessToken: "plain-token",
		AccountID:   "acct-1",
	}
}

func TestAccountCreateEncryptsAtRest(t *testing.T) {
	repo := &fakeSocialAccountRepo{}
	cfg := config.Config{SecretKey: "0123456789abcdef0123456789abcdef"}
	s := NewSocialAccountService(cfg, repo)

	account, err := s.Create(context.Background(), accountInput())
	require.NoError(t, err)

	// the caller sees the plaintext token, the stored copy does not
	assert.Equal(t, "plain-token", account.AccessToken)
	assert.True(t, account.IsActive)
	require.Len(t, repo.stored, 1)
	assert.NotEqual(t, "plain-token", repo.stored[0].AccessToken)
	assert.NotEmpty(t, repo.stored[0].AccessToken)
}

func TestAccountListDecrypts(t *testing.T) {
	repo := &fakeSocialAccountRepo{}
	cfg := config.Config{SecretKey: "0123456789abcdef0123456789abcdef"}
	s := NewSocialAccountService(cfg, repo)

	_, err := s.Create(context.Background(), accountInput())
	require.NoError(t, err)

	accounts, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "plain-token", accounts[0].AccessToken)
}

func TestAccountCreateWithoutKeyStoresPlaintext(t *testing.T) {
	repo := &fakeSocialAccountRepo{}
	s := NewSocialAccountService(config.Config{}, repo)

	_, err := s.Create(context.Background(), accountInput())
	require.NoError(t, err)

	require.Len(t, repo.stored, 1)
	assert.Equal(t, "plain-token", repo.stored[0].AccessToken)
}

func TestAccountCreateValidation(t *testing.T) {
	s := NewSocialAccountService(config.Config{}, &fakeSocialAccountRepo{})

	_, err := s.Create(context.Background(), &transfer.SocialAccountCreate{Platform: "twitter"})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestAccountRemoveNotFound(t *testing.T) {
	repo := &fakeSocialAccountRepo{matched: false}
	s := NewSocialAccountService(config.Config{}, repo)

	err := s.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, []string{"missing"}, repo.deactivated)
}
