package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// RequestTimeout bounds every single metadata request
	RequestTimeout = 10 * time.Second
	// RequestDelay is the pause between consecutive metadata requests
	RequestDelay = 100 * time.Millisecond
	// FeaturedVideos is the number of cards in the featured view
	FeaturedVideos = 6
	// NewVideos is the number of most recent videos flagged as new
	NewVideos = 3
	// DescriptionLimit is the stored description length
	DescriptionLimit = 150
	// BioLimit is the rendered expert bio length
	BioLimit = 280
)

// Config holds all configuration for the application
type Config struct {
	YouTubeAPIKey string
	BucketName    string
	Port          string
	SiteConfig    string
	VideoConfig   string
	ViewsDir      string
	PublicDir     string
	OEmbedURL     string
	DataAPIURL    string
	RelayURL      string
	LogLevel      string
}

// ErrAPIKeyNotSet is returned when no YouTube Data API key was provided
var ErrAPIKeyNotSet = errors.New("YouTube API key is required: set YOUTUBE_API_KEY or use --api-key")

// ErrBucketNameNotSet is returned when the BUCKET_NAME environment variable is not set
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// Load loads configuration from environment variables. Values found in a .env file
// in the working directory are used for variables that are not already set.
func Load() (*Config, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return &Config{
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		BucketName:    os.Getenv("BUCKET_NAME"),
		Port:          getenv("PORT", "8080"),
		SiteConfig:    getenv("SITE_CONFIG", "site.yaml"),
		VideoConfig:   getenv("VIDEO_CONFIG", "config.js"),
		ViewsDir:      getenv("VIEWS_DIR", "views"),
		PublicDir:     getenv("PUBLIC_DIR", "public"),
		OEmbedURL:     getenv("OEMBED_URL", "https://www.youtube.com/oembed"),
		DataAPIURL:    os.Getenv("YOUTUBE_API_URL"),
		RelayURL:      getenv("RELAY_URL", "https://api.allorigins.win/get"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}, nil
}

// RequireAPIKey returns the Data API key or ErrAPIKeyNotSet
func (c *Config) RequireAPIKey() (string, error) {
	if c.YouTubeAPIKey == "" {
		return "", ErrAPIKeyNotSet
	}
	return c.YouTubeAPIKey, nil
}

// RequireBucket returns the bucket name or ErrBucketNameNotSet
func (c *Config) RequireBucket() (string, error) {
	if c.BucketName == "" {
		return "", ErrBucketNameNotSet
	}
	return c.BucketName, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Landing page: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/feed\n", c.Port)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
