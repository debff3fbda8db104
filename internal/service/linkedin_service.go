package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
	"github.com/crosspostr/crosspostr/pkg/utils"
)

const oauthStateTTL = 10 * time.Minute

type LinkedinService interface {
	Publish(ctx context.Context, text, visibility, accessToken string) transfer.PublishResult
	Profile(ctx context.Context, accessToken string) (*transfer.LinkedinProfile, error)
	BuildAuthorizationURL() (string, string, error)
	ExchangeCode(ctx context.Context, code, state string) (*transfer.LinkedinAuthResult, error)
}

type linkedinService struct {
	cfg       config.Linkedin
	secretKey string
	oauth     *oauth2.Config
	lu        repository.LinkedinUserRepository
	client    *http.Client
}

func NewLinkedinService(cfg config.Config, lu repository.LinkedinUserRepository) LinkedinService {
	endpoint := linkedin.Endpoint
	if cfg.Linkedin.TokenURL != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  cfg.Linkedin.AuthURL,
			TokenURL: cfg.Linkedin.TokenURL,
		}
	}

	return &linkedinService{
		cfg:       cfg.Linkedin,
		secretKey: cfg.SecretKey,
		oauth: &oauth2.Config{
			ClientID:     cfg.Linkedin.ClientID,
			ClientSecret: cfg.Linkedin.ClientSecret,
			RedirectURL:  cfg.Linkedin.RedirectURI,
			Scopes:       []string{"openid", "profile", "w_member_social"},
			Endpoint:     endpoint,
		},
		lu:     lu,
		client: &http.Client{},
	}
}

// BuildAuthorizationURL returns the provider login URL and the signed state
// value baked into it.
func (s *linkedinService) BuildAuthorizationURL() (string, string, error) {
	state, err := utils.GenerateStateToken(s.secretKey, oauthStateTTL)
	if err != nil {
		slog.Info(err.Error())
		return "", "", err
	}
	return s.oauth.AuthCodeURL(state), state, nil
}

// ExchangeCode verifies the callback state, trades the code for a token,
// fetches the acting member's profile, and persists a token record. Every
// failure collapses into the same opaque callback error.
func (s *linkedinService) ExchangeCode(ctx context.Context, code, state string) (*transfer.LinkedinAuthResult, error) {
	if err := utils.ValidateStateToken(s.secretKey, state); err != nil {
		slog.Info(err.Error())
		return nil, ErrOAuthCallbackFailed
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, ErrOAuthCallbackFailed
	}

	profile, err := s.Profile(ctx, token.AccessToken)
	if err != nil {
		slog.Info(err.Error())
		return nil, ErrOAuthCallbackFailed
	}

	user := &models.LinkedinUser{
		ID:          uuid.NewString(),
		LinkedinID:  profile.ID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.Expiry,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.lu.Create(ctx, user); err != nil {
		return nil, ErrOAuthCallbackFailed
	}

	expiresIn := int64(time.Until(token.Expiry).Seconds())
	return &transfer.LinkedinAuthResult{
		AccessToken: token.AccessToken,
		ExpiresIn:   expiresIn,
		Profile:     profile,
	}, nil
}

func (s *linkedinService) Profile(ctx context.Context, accessToken string) (*transfer.LinkedinProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.APIBaseURL+"/v2/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("LinkedIn profile request failed: %s", string(raw))
	}

	var profile transfer.LinkedinProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Publish submits a text-only UGC share. The created object's identifier
// comes from the X-Restli-Id response header; anything other than a 201 is
// folded into a failed result carrying the raw upstream body.
func (s *linkedinService) Publish(ctx context.Context, text, visibility, accessToken string) transfer.PublishResult {
	profile, err := s.Profile(ctx, accessToken)
	if err != nil {
		return transfer.Failure("linkedin", err.Error())
	}

	if visibility == "" {
		visibility = "PUBLIC"
	}

	payload := transfer.UGCPostRequest{
		Author:         "urn:li:person:" + profile.ID,
		LifecycleState: "PUBLISHED",
		SpecificContent: transfer.UGCSpecificContent{
			ShareContent: transfer.ShareContent{
				ShareCommentary:    transfer.ShareCommentary{Text: text},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: transfer.UGCVisibility{MemberNetworkVisibility: visibility},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return transfer.Failure("linkedin", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/v2/ugcPosts", bytes.NewBuffer(jsonData))
	if err != nil {
		return transfer.Failure("linkedin", err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return transfer.Failure("linkedin", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return transfer.Failure("linkedin", fmt.Sprintf("LinkedIn API error: %s", string(raw)))
	}

	return transfer.PublishResult{
		Success:  true,
		Platform: "linkedin",
		PostID:   resp.Header.Get("X-Restli-Id"),
	}
}
