package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for devhub-server.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"devhub-server"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"DEVHUB_PORT" envDefault:"8290"`
	LogLevel        string        `env:"DEVHUB_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"DEVHUB_LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database (required, no default)
	DatabaseDSN    string        `env:"DATABASE_DSN,notEmpty"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// S3-compatible object storage for the image gallery
	S3Endpoint     string `env:"GALLERY_S3_ENDPOINT"`
	S3PublicURL    string `env:"GALLERY_S3_PUBLIC_URL"`
	S3Region       string `env:"GALLERY_S3_REGION" envDefault:"auto"`
	S3Bucket       string `env:"GALLERY_S3_BUCKET"`
	S3AccessKeyID  string `env:"GALLERY_S3_ACCESS_KEY_ID"`
	S3SecretKey    string `env:"GALLERY_S3_SECRET_ACCESS_KEY"`
	S3UsePathStyle bool   `env:"GALLERY_S3_USE_PATH_STYLE" envDefault:"true"`

	// Gallery storage backend: "s3" or "local"
	StorageBackend      string `env:"GALLERY_STORAGE_BACKEND" envDefault:"s3"`
	LocalStoragePath    string `env:"GALLERY_LOCAL_STORAGE_PATH"`
	LocalStorageBaseURL string `env:"GALLERY_LOCAL_STORAGE_BASE_URL"`

	// Upload limits
	UploadPrefix   string `env:"GALLERY_UPLOAD_PREFIX" envDefault:"uploads/"`
	MaxUploadBytes int64  `env:"GALLERY_MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// News aggregation
	NewsCacheTTL     time.Duration `env:"NEWS_CACHE_TTL" envDefault:"5m"`
	NewsFetchTimeout time.Duration `env:"NEWS_FETCH_TIMEOUT" envDefault:"15s"`

	// Search session
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"400ms"`

	// Assistant (OpenAI-compatible endpoint)
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITimeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"30s"`

	// Headless CMS read API
	CMSBaseURL string `env:"CMS_BASE_URL"`
	CMSDataset string `env:"CMS_DATASET" envDefault:"production"`
	CMSToken   string `env:"CMS_TOKEN"`

	// Admin password gate for gallery management
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Beta features (AI chat, AI answer, JSON generator, gallery upload UI)
	BetaFeaturesEnabled bool `env:"BETA_FEATURES_ENABLED" envDefault:"false"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.S3Bucket = strings.TrimSpace(cfg.S3Bucket)
	cfg.S3AccessKeyID = strings.TrimSpace(cfg.S3AccessKeyID)
	cfg.S3SecretKey = strings.TrimSpace(cfg.S3SecretKey)
	cfg.S3Endpoint = strings.TrimSpace(cfg.S3Endpoint)
	cfg.S3PublicURL = strings.TrimSuffix(strings.TrimSpace(cfg.S3PublicURL), "/")
	cfg.CMSBaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.CMSBaseURL), "/")

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 * 1024 * 1024
	}
	if !strings.HasSuffix(cfg.UploadPrefix, "/") {
		cfg.UploadPrefix += "/"
	}
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = 400 * time.Millisecond
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsLocalStorage returns true if the local storage backend is configured.
func (c *Config) IsLocalStorage() bool {
	return strings.ToLower(strings.TrimSpace(c.StorageBackend)) == "local"
}

// IsS3Storage returns true if the S3 storage backend is configured.
func (c *Config) IsS3Storage() bool {
	backend := strings.ToLower(strings.TrimSpace(c.StorageBackend))
	return backend == "" || backend == "s3"
}
