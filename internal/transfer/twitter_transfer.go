package transfer

type DirectTweetRequest struct {
	Text       string   `json:"text" validate:"required"`
	MediaFiles []string `json:"media_files"`
}

type TweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type TweetCreateRequest struct {
	Text  string      `json:"text"`
	Media *TweetMedia `json:"media,omitempty"`
}

type TweetData struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type TweetCreateResponse struct {
	Data TweetData `json:"data"`
}

type MediaUploadResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type TweetPublicMetrics struct {
	RetweetCount    int `json:"retweet_count"`
	ReplyCount      int `json:"reply_count"`
	LikeCount       int `json:"like_count"`
	QuoteCount      int `json:"quote_count"`
	ImpressionCount int `json:"impression_count"`
}

type TweetLookupResponse struct {
	Data struct {
		ID            string             `json:"id"`
		Text          string             `json:"text"`
		PublicMetrics TweetPublicMetrics `json:"public_metrics"`
	} `json:"data"`
}
