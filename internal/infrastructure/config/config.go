package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	LaPoste  LaPosteConfig
	Tracking TrackingConfig
	Refresh  RefreshConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type LaPosteConfig struct {
	BaseURL  string        `env:"LAPOSTE_BASE_URL,  default=https://api.laposte.fr/suivi/v2"`
	OkapiKey string        `env:"LAPOSTE_OKAPI_KEY, required"`
	Timeout  time.Duration `env:"LAPOSTE_TIMEOUT,   default=10s"`
}

type TrackingConfig struct {
	StrictCodes      bool `env:"CARRIER_STRICT_CODES, default=true"`
	BatchConcurrency int  `env:"BATCH_CONCURRENCY,    default=4"`
}

type RefreshConfig struct {
	Workers  int    `env:"REFRESH_WORKERS,  default=4"`
	Schedule string `env:"REFRESH_SCHEDULE, default=@every 15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tracking_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether logs should be pretty-printed.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
