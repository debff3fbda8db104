package config

import "os"

type Twitter struct {
	AccessToken string
	APIBaseURL  string
}

type Linkedin struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	APIBaseURL   string
	AuthURL      string
	TokenURL     string
}

type Tiktok struct {
	APIBaseURL string
}

type Config struct {
	MongoURI     string
	DatabaseName string
	SecretKey    string
	FrontendURL  string
	Twitter      Twitter
	Linkedin     Linkedin
	Tiktok       Tiktok
}

func LoadConfig() *Config {
	return &Config{
		MongoURI:     getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DB_NAME", "crosspostr"),
		SecretKey:    getEnv("SECRET_KEY", ""),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		Twitter: Twitter{
			AccessToken: getEnv("TWITTER_ACCESS_TOKEN", ""),
			APIBaseURL:  getEnv("TWITTER_API_BASE_URL", "https://api.twitter.com/2"),
		},
		Linkedin: Linkedin{
			ClientID:     getEnv("LINKEDIN_CLIENT_ID", ""),
			ClientSecret: getEnv("LINKEDIN_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("LINKEDIN_REDIRECT_URI", ""),
			APIBaseURL:   getEnv("LINKEDIN_API_BASE_URL", "https://api.linkedin.com"),
			AuthURL:      getEnv("LINKEDIN_AUTH_URL", ""),
			TokenURL:     getEnv("LINKEDIN_TOKEN_URL", ""),
		},
		Tiktok: Tiktok{
			APIBaseURL: getEnv("TIKTOK_API_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
