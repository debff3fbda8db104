package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/transfer"
)

type fakeLinkedinUserRepo struct {
	created []*models.LinkedinUser
}

func (f *fakeLinkedinUserRepo) Create(ctx context.Context, user *models.LinkedinUser) error {
	f.created = append(f.created, user)
	return nil
}

func newLinkedinFixture(t *testing.T, handler http.Handler) (LinkedinService, *fakeLinkedinUserRepo) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	repo := &fakeLinkedinUserRepo{}
	cfg := config.Config{
		SecretKey: "test-secret",
		Linkedin: config.Linkedin{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost:3000/api/linkedin/callback",
			APIBaseURL:   srv.URL,
			AuthURL:      srv.URL + "/oauth/authorization",
			TokenURL:     srv.URL + "/oauth/accessToken",
		},
	}
	return NewLinkedinService(cfg, repo), repo
}

func profileHandler(mux *http.ServeMux) {
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id":                 "abc123",
			"localizedFirstName": "Ada",
			"localizedLastName":  "Lovelace",
		})
	})
}

func TestLinkedinAuthorizationURLCarriesState(t *testing.T) {
	s, _ := newLinkedinFixture(t, http.NewServeMux())

	authURL, state, err := s.BuildAuthorizationURL()
	require.NoError(t, err)
	assert.NotEmpty(t, state)
	assert.Contains(t, authURL, "state="+state)
	assert.Contains(t, authURL, "client_id=client-id")
}

func TestLinkedinExchangeCode(t *testing.T) {
	mux := http.NewServeMux()
	profileHandler(mux)
	mux.HandleFunc("/oauth/accessToken", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "li-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})

	s, repo := newLinkedinFixture(t, mux)
	_, state, err := s.BuildAuthorizationURL()
	require.NoError(t, err)

	result, err := s.ExchangeCode(context.Background(), "auth-code", state)
	require.NoError(t, err)

	assert.Equal(t, "li-access", result.AccessToken)
	assert.Greater(t, result.ExpiresIn, int64(0))
	require.NotNil(t, result.Profile)
	assert.Equal(t, "abc123", result.Profile.ID)
	assert.Equal(t, "Ada", result.Profile.FirstName)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "abc123", repo.created[0].LinkedinID)
	assert.Equal(t, "li-access", repo.created[0].AccessToken)
}

func TestLinkedinExchangeCodeRejectsForgedState(t *testing.T) {
	s, repo := newLinkedinFixture(t, http.NewServeMux())

	_, err := s.ExchangeCode(context.Background(), "auth-code", "forged-state")
	assert.ErrorIs(t, err, ErrOAuthCallbackFailed)
	assert.Empty(t, repo.created)
}

func TestLinkedinExchangeCodeTokenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/accessToken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	s, _ := newLinkedinFixture(t, mux)
	_, state, err := s.BuildAuthorizationURL()
	require.NoError(t, err)

	_, err = s.ExchangeCode(context.Background(), "bad-code", state)
	assert.ErrorIs(t, err, ErrOAuthCallbackFailed)
}

func TestLinkedinPublish(t *testing.T) {
	var ugcBody transfer.UGCPostRequest
	mux := http.NewServeMux()
	profileHandler(mux)
	mux.HandleFunc("/v2/ugcPosts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer li-access", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ugcBody))
		w.Header().Set("X-Restli-Id", "urn:li:share:999")
		w.WriteHeader(http.StatusCreated)
	})

	s, _ := newLinkedinFixture(t, mux)
	result := s.Publish(context.Background(), "hello network", "", "li-access")

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "linkedin", result.Platform)
	assert.Equal(t, "urn:li:share:999", result.PostID)

	assert.Equal(t, "urn:li:person:abc123", ugcBody.Author)
	assert.Equal(t, "PUBLISHED", ugcBody.LifecycleState)
	assert.Equal(t, "hello network", ugcBody.SpecificContent.ShareContent.ShareCommentary.Text)
	assert.Equal(t, "NONE", ugcBody.SpecificContent.ShareContent.ShareMediaCategory)
	assert.Equal(t, "PUBLIC", ugcBody.Visibility.MemberNetworkVisibility)
}

func TestLinkedinPublishNon201IsFailure(t *testing.T) {
	mux := http.NewServeMux()
	profileHandler(mux)
	mux.HandleFunc("/v2/ugcPosts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"duplicate share"}`))
	})

	s, _ := newLinkedinFixture(t, mux)
	result := s.Publish(context.Background(), "hello again", "PUBLIC", "li-access")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "LinkedIn API error")
	assert.Contains(t, result.Error, "duplicate share")
}

func TestLinkedinPublishProfileFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"expired token"}`))
	})

	s, _ := newLinkedinFixture(t, mux)
	result := s.Publish(context.Background(), "text", "PUBLIC", "stale")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "LinkedIn profile request failed")
}
