package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	config "github.com/crosspostr/crosspostr/configs"
	"github.com/crosspostr/crosspostr/internal/models"
	"github.com/crosspostr/crosspostr/internal/repository"
	"github.com/crosspostr/crosspostr/internal/transfer"
	"github.com/crosspostr/crosspostr/pkg/utils"
)

const DefaultPrivacyLevel = "PUBLIC_TO_EVERYONE"

type TiktokService interface {
	Publish(ctx context.Context, title string, mediaFiles []string, auth *transfer.TiktokAuth) transfer.PublishResult
	Upload(ctx context.Context, data []byte, title, description string, auth *transfer.TiktokAuth) (string, error)
	PublishVideo(ctx context.Context, videoID, privacyLevel string, auth *transfer.TiktokAuth) (string, error)
	FetchMetrics(ctx context.Context, videoID string, auth *transfer.TiktokAuth) (*models.TiktokAnalytics, error)
}

type tiktokService struct {
	cfg    config.Tiktok
	tv     repository.TiktokVideoRepository
	client *http.Client
}

func NewTiktokService(cfg config.Tiktok, tv repository.TiktokVideoRepository) TiktokService {
	return &tiktokService{
		cfg:    cfg,
		tv:     tv,
		client: &http.Client{},
	}
}

// Publish pushes the first media item through the upload-then-publish
// sequence. A post with no media is rejected before any network call; extra
// media items are ignored.
func (s *tiktokService) Publish(ctx context.Context, title string, mediaFiles []string, auth *transfer.TiktokAuth) transfer.PublishResult {
	if len(mediaFiles) == 0 {
		return transfer.Failure("tiktok", ErrVideoRequired.Error())
	}

	data, _, err := utils.DecodeMediaFile(mediaFiles[0])
	if err != nil {
		return transfer.Failure("tiktok", err.Error())
	}

	videoID, err := s.Upload(ctx, data, title, "", auth)
	if err != nil {
		return transfer.Failure("tiktok", err.Error())
	}

	if _, err := s.PublishVideo(ctx, videoID, DefaultPrivacyLevel, auth); err != nil {
		return transfer.Failure("tiktok", err.Error())
	}

	return transfer.PublishResult{
		Success:  true,
		Platform: "tiktok",
		PostID:   videoID,
	}
}

// Upload initializes an upload session sized to the video, PUTs the raw
// bytes to the returned upload URL, and records a bookkeeping row.
func (s *tiktokService) Upload(ctx context.Context, data []byte, title, description string, auth *transfer.TiktokAuth) (string, error) {
	uploadURL, videoID, err := s.initUpload(ctx, int64(len(data)), auth)
	if err != nil {
		return "", err
	}

	if err := s.putVideo(ctx, uploadURL, data); err != nil {
		return "", err
	}

	video := &models.TiktokVideo{
		ID:           uuid.NewString(),
		VideoID:      videoID,
		Title:        title,
		Description:  description,
		AdvertiserID: auth.AdvertiserID,
		Status:       "uploaded",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.tv.Create(ctx, video); err != nil {
		log.Printf("Error recording TikTok video %s: %v", videoID, err)
	}

	return videoID, nil
}

func (s *tiktokService) initUpload(ctx context.Context, videoSize int64, auth *transfer.TiktokAuth) (string, string, error) {
	payload := transfer.TiktokUploadInitRequest{
		AdvertiserID: auth.AdvertiserID,
		VideoSize:    videoSize,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/video/upload/init/", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Access-Token", auth.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("TikTok upload init failed: %s", string(raw))
	}

	var result transfer.TiktokUploadInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}
	// TikTok signals application errors with a non-zero code even on HTTP 200.
	if result.Code != 0 {
		return "", "", fmt.Errorf("TikTok upload init failed: %s", result.Message)
	}

	return result.Data.UploadURL, result.Data.VideoID, nil
}

func (s *tiktokService) putVideo(ctx context.Context, uploadURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "video/mp4")
	req.ContentLength = int64(len(data))

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("TikTok video upload failed: %s", string(raw))
	}
	return nil
}

func (s *tiktokService) PublishVideo(ctx context.Context, videoID, privacyLevel string, auth *transfer.TiktokAuth) (string, error) {
	if privacyLevel == "" {
		privacyLevel = DefaultPrivacyLevel
	}

	payload := transfer.TiktokPublishRequest{
		AdvertiserID: auth.AdvertiserID,
		VideoID:      videoID,
		PrivacyLevel: privacyLevel,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIBaseURL+"/video/publish/", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Access-Token", auth.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("TikTok publish failed: %s", string(raw))
	}

	var result transfer.TiktokPublishResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Code != 0 {
		return "", fmt.Errorf("TikTok publish failed: %s", result.Message)
	}

	if err := s.tv.SetStatus(ctx, videoID, "published"); err != nil {
		log.Printf("Error updating TikTok video status %s: %v", videoID, err)
	}

	itemID := result.Data.ItemID
	if itemID == "" {
		itemID = videoID
	}
	return itemID, nil
}

// FetchMetrics pulls the reporting snapshot for a video and refreshes the
// cached copy.
func (s *tiktokService) FetchMetrics(ctx context.Context, videoID string, auth *transfer.TiktokAuth) (*models.TiktokAnalytics, error) {
	query := url.Values{}
	query.Set("advertiser_id", auth.AdvertiserID)
	query.Set("video_id", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.APIBaseURL+"/video/analytics/?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Access-Token", auth.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TikTok analytics request failed: %s", string(raw))
	}

	var result transfer.TiktokMetricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Code != 0 {
		return nil, fmt.Errorf("TikTok analytics request failed: %s", result.Message)
	}

	snapshot := &models.TiktokAnalytics{
		VideoID:     videoID,
		Likes:       result.Data.Likes,
		Comments:    result.Data.Comments,
		Shares:      result.Data.Shares,
		Views:       result.Data.Views,
		Impressions: result.Data.Impressions,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.tv.UpsertAnalytics(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}
