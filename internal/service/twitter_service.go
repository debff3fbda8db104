package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/transfer"
	"github.com/crosspostr/crosspostr/pkg/utils"
)

type TwitterService interface {
	Publish(ctx context.Context, text string, mediaFiles []string) transfer.PublishResult
	FetchMetrics(ctx context.Context, tweetID string) (*transfer.PublishMetrics, error)
}

type twitterService struct {
	cfg    config.Twitter
	client *http.Client
}

func NewTwitterService(cfg config.Twitter) TwitterService {
	return &twitterService{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// Publish uploads each media item as a distinct attachment, creates the
// tweet, then folds the tweet's public metrics into the result. Individual
// media failures are skipped; the tweet proceeds with whatever uploaded.
// Nothing escapes as an error: every failure becomes a failed PublishResult.
func (s *twitterService) Publish(ctx context.Context, text string, mediaFiles []string) transfer.PublishResult {
	var mediaIDs []string
	for _, encoded := range mediaFiles {
		mediaID, err := s.uploadMedia(ctx, encoded)
		if err != nil {
			log.Printf("Skipping Twitter media upload: %v", err)
			continue
		}
		mediaIDs = append(mediaIDs, mediaID)
	}

	tweetID, err := s.createTweet(ctx, text, mediaIDs)
	if err != nil {
		return transfer.Failure("twitter", err.Error())
	}

	metrics, err := s.FetchMetrics(ctx, tweetID)
	if err != nil {
		return transfer.Failure("twitter", err.Error())
	}

	return transfer.PublishResult{
		Success:  true,
		Platform: "twitter",
		PostID:   tweetID,
		Metrics:  metrics,
	}
}

// uploadMedia decodes one media payload, materializes it as a temp file, and
// pushes it through the multipart upload endpoint. The temp file is removed
// whether or not the upload succeeds.
func (s *twitterService) uploadMedia(ctx context.Context, encoded string) (string, error) {
	data, _, err := utils.DecodeMediaFile(encoded)
	if err != nil {
		return "", err
	}

	suffix, err := gonanoid.New(8)
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("media_%s.%s", suffix, utils.MediaExtension(data)))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			slog.Info(err.Error())
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("media", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/media/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Twitter media upload failed: %s", string(raw))
	}

	var result transfer.MediaUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Data.ID, nil
}

func (s *twitterService) createTweet(ctx context.Context, text string, mediaIDs []string) (string, error) {
	payload := transfer.TweetCreateRequest{Text: text}
	if len(mediaIDs) > 0 {
		payload.Media = &transfer.TweetMedia{MediaIDs: mediaIDs}
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/tweets", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Twitter API error: %s", string(raw))
	}

	var result transfer.TweetCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Data.ID, nil
}

func (s *twitterService) FetchMetrics(ctx context.Context, tweetID string) (*transfer.PublishMetrics, error) {
	url := fmt.Sprintf("%s/tweets/%s?tweet.fields=public_metrics", s.cfg.APIBaseURL, tweetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Twitter metrics lookup failed: %s", string(raw))
	}

	var result transfer.TweetLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	pm := result.Data.PublicMetrics
	metrics := &transfer.PublishMetrics{
		Likes:       pm.LikeCount,
		Shares:      pm.RetweetCount + pm.QuoteCount,
		Comments:    pm.ReplyCount,
		Reach:       pm.ImpressionCount,
		Impressions: pm.ImpressionCount,
	}
	if pm.ImpressionCount > 0 {
		engaged := pm.LikeCount + pm.RetweetCount + pm.QuoteCount + pm.ReplyCount
		metrics.EngagementRate = float64(engaged) / float64(pm.ImpressionCount)
	}
	return metrics, nil
}
