package config

import (
	"time"

	"github.com/gaze-network/auction-network/internal/postgres"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Storage    string            `mapstructure:"storage"` // Storage backend of auction data: `postgres` | `memory`
	Postgres   postgres.Config   `mapstructure:"postgres"`
	Settlement settlement.Policy `mapstructure:"settlement"`
	Export     ExportConfig      `mapstructure:"export"`
	Webhook    WebhookConfig     `mapstructure:"webhook"`
}

type ExportConfig struct {
	S3 S3Config `mapstructure:"s3"`
}

// S3Config configures the archive of posted events. Archiving is disabled when Bucket is empty.
type S3Config struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"` // optional, for S3-compatible storages
}

func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// WebhookConfig configures outbound notifications. Notifications are discarded when URL is empty.
type WebhookConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	QueueSize  int           `mapstructure:"queue_size"`
}

func Default() Config {
	return Config{
		Storage: StoragePostgres,
		Export: ExportConfig{
			S3: S3Config{Prefix: "auction"},
		},
		Webhook: WebhookConfig{
			Timeout:    5 * time.Second,
			MaxRetries: 3,
			QueueSize:  256,
		},
	}
}
