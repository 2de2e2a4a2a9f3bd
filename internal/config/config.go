package config

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	auctionconfig "github.com/gaze-network/auction-network/modules/auction/config"
	"github.com/gaze-network/auction-network/internal/redis"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"github.com/gaze-network/auction-network/pkg/middleware/requestcontext"
	"github.com/gaze-network/auction-network/pkg/middleware/requestlogger"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
			Idempotency: IdempotencyConfig{
				Header: "Idempotency-Key",
				TTL:    24 * time.Hour,
			},
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		EnableModules: []string{"auction"},
		Modules: Modules{
			Auction: auctionconfig.Default(),
		},
	}
)

type Config struct {
	Logger        logger.Config    `mapstructure:"logger"`
	HTTPServer    HTTPServerConfig `mapstructure:"http_server"`
	Redis         redis.Config     `mapstructure:"redis"`
	Metrics       MetricsConfig    `mapstructure:"metrics"`
	EnableModules []string         `mapstructure:"enable_modules"`
	APIOnly       bool             `mapstructure:"api_only"`
	Modules       Modules          `mapstructure:"modules"`
}

type HTTPServerConfig struct {
	Port        int                           `mapstructure:"port"`
	Logger      requestlogger.Config          `mapstructure:"logger"`
	ClientIP    requestcontext.ClientIPConfig `mapstructure:"client_ip"`
	Idempotency IdempotencyConfig             `mapstructure:"idempotency"`
}

type IdempotencyConfig struct {
	Disabled bool          `mapstructure:"disabled"`
	Header   string        `mapstructure:"header"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type MetricsConfig struct {
	Disabled bool   `mapstructure:"disabled"`
	Path     string `mapstructure:"path"`
}

type Modules struct {
	Auction auctionconfig.Config `mapstructure:"auction"`
}

// Parse parses the configuration from the given file (or ./config.*) and environment variables.
func Parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slogx.Package("config"))
	configOnce.Do(func() {
		// optional .env, real environment variables take precedence
		if err := godotenv.Load(); err != nil {
			logger.DebugContext(ctx, "no .env file loaded", slogx.Error(err))
		}

		if len(configFile) > 0 && configFile[0] != "" {
			viper.SetConfigFile(configFile[0])
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
		logger.InfoContext(ctx, "loaded config successfully")
	})

	return *config
}

// Load returns the parsed configuration, parsing it on first use.
func Load() Config {
	return Parse()
}

// BindPFlag binds a command flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slogx.Package("config"), slogx.Error(err))
	}
}
