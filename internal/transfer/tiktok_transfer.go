package transfer

type TiktokUploadInitRequest struct {
	AdvertiserID string `json:"advertiser_id"`
	VideoSize    int64  `json:"video_size"`
}

type TiktokUploadInitResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		UploadURL string `json:"upload_url"`
		VideoID   string `json:"video_id"`
	} `json:"data"`
}

type TiktokPublishRequest struct {
	AdvertiserID string `json:"advertiser_id"`
	VideoID      string `json:"video_id"`
	PrivacyLevel string `json:"privacy_level"`
}

type TiktokPublishResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		ItemID string `json:"item_id"`
	} `json:"data"`
}

type TiktokMetricsResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Likes       int `json:"likes"`
		Comments    int `json:"comments"`
		Shares      int `json:"shares"`
		Views       int `json:"views"`
		Impressions int `json:"impressions"`
	} `json:"data"`
}
