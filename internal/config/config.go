package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Sessions
	SessionCookie string `envconfig:"SESSION_COOKIE" default:"camai_session"`

	// Internal service trust
	PlateSyncSecret string `envconfig:"PLATE_SYNC_SECRET" required:"true"`

	// Media storage
	MediaBackend     string `envconfig:"MEDIA_BACKEND" default:"fs"`
	LiveMediaRoot    string `envconfig:"LIVE_MEDIA_ROOT" default:"/var/lib/camai/live"`
	ArchiveMediaRoot string `envconfig:"ARCHIVE_MEDIA_ROOT" default:"/var/lib/camai/archive"`
	ArchiveS3Bucket  string `envconfig:"ARCHIVE_S3_BUCKET" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
