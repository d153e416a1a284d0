package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Calendar CalendarConfig `yaml:"calendar"`
	Cache    CacheConfig    `yaml:"cache"`
	Profiles ProfilesConfig `yaml:"profiles"`
	Alerts   AlertsConfig   `yaml:"alerts"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures retries of idempotent reads that fail with a 5xx.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// CalendarConfig tunes day and month computation.
type CalendarConfig struct {
	DefaultTimezone string        `yaml:"defaultTimezone"`
	MonthWorkers    int           `yaml:"monthWorkers"`
	CacheTTL        time.Duration `yaml:"cacheTtl"`
	MaxEventDays    int           `yaml:"maxEventDays"`
}

// CacheConfig selects the month result cache backend.
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis"`
}

// ProfilesConfig selects the profile repository backend.
type ProfilesConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// AlertsConfig controls scheduled alert dispatch.
type AlertsConfig struct {
	Enabled       bool        `yaml:"enabled"`
	Schedule      string      `yaml:"schedule"`
	LookaheadDays int         `yaml:"lookaheadDays"`
	Timezone      string      `yaml:"timezone"`
	Queue         QueueConfig `yaml:"queue"`
}

// QueueConfig selects the alert job queue backend.
type QueueConfig struct {
	Redis RedisConfig `yaml:"redis"`
	Key   string      `yaml:"key"`
}

// RedisConfig contains connection information for Valkey backed components.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func envBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = envBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = envBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("CALENDAR_DEFAULT_TIMEZONE"); v != "" {
		cfg.Calendar.DefaultTimezone = v
	}
	if v := os.Getenv("CALENDAR_MONTH_WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Calendar.MonthWorkers = parsed
		}
	}
	if v := os.Getenv("CALENDAR_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Calendar.CacheTTL = parsed
		}
	}
	if v := os.Getenv("CACHE_REDIS_ENABLED"); v != "" {
		cfg.Cache.Redis.Enabled = envBool(v)
	}
	if v := os.Getenv("CACHE_REDIS_ADDR"); v != "" {
		cfg.Cache.Redis.Addr = v
	}
	if v := os.Getenv("PROFILES_POSTGRES_DSN"); v != "" {
		cfg.Profiles.Postgres.DSN = v
	}
	if v := os.Getenv("PROFILES_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Profiles.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("PROFILES_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Profiles.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("ALERTS_ENABLED"); v != "" {
		cfg.Alerts.Enabled = envBool(v)
	}
	if v := os.Getenv("ALERTS_SCHEDULE"); v != "" {
		cfg.Alerts.Schedule = v
	}
	if v := os.Getenv("ALERTS_LOOKAHEAD_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Alerts.LookaheadDays = parsed
		}
	}
	if v := os.Getenv("ALERTS_TIMEZONE"); v != "" {
		cfg.Alerts.Timezone = v
	}
	if v := os.Getenv("ALERTS_QUEUE_REDIS_ENABLED"); v != "" {
		cfg.Alerts.Queue.Redis.Enabled = envBool(v)
	}
	if v := os.Getenv("ALERTS_QUEUE_REDIS_ADDR"); v != "" {
		cfg.Alerts.Queue.Redis.Addr = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             40,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				BaseBackoff: 100 * time.Millisecond,
				Exclude:     []string{"/healthz", "/metrics"},
			},
		},
		Calendar: CalendarConfig{
			DefaultTimezone: "UTC",
			MonthWorkers:    4,
			CacheTTL:        24 * time.Hour,
			MaxEventDays:    366,
		},
		Profiles: ProfilesConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Alerts: AlertsConfig{
			Enabled:       false,
			Schedule:      "0 6 * * *",
			LookaheadDays: 7,
			Timezone:      "UTC",
			Queue: QueueConfig{
				Key: "cosmic:alerts",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled && c.HTTP.Retry.MaxAttempts <= 0 {
		return errors.New("http.retry.maxAttempts must be positive")
	}
	if _, err := time.LoadLocation(c.Calendar.DefaultTimezone); err != nil {
		return fmt.Errorf("calendar.defaultTimezone: %w", err)
	}
	if c.Calendar.MonthWorkers < 0 {
		return errors.New("calendar.monthWorkers cannot be negative")
	}
	if c.Calendar.CacheTTL < 0 {
		return errors.New("calendar.cacheTtl cannot be negative")
	}
	if c.Calendar.MaxEventDays <= 0 {
		return errors.New("calendar.maxEventDays must be positive")
	}
	if c.Cache.Redis.Enabled && strings.TrimSpace(c.Cache.Redis.Addr) == "" {
		return errors.New("cache.redis.addr cannot be empty when redis cache is enabled")
	}
	if c.Alerts.Enabled {
		if _, err := cron.ParseStandard(c.Alerts.Schedule); err != nil {
			return fmt.Errorf("alerts.schedule: %w", err)
		}
		if c.Alerts.LookaheadDays <= 0 {
			return errors.New("alerts.lookaheadDays must be positive")
		}
		if _, err := time.LoadLocation(c.Alerts.Timezone); err != nil {
			return fmt.Errorf("alerts.timezone: %w", err)
		}
	}
	if c.Alerts.Queue.Redis.Enabled {
		if strings.TrimSpace(c.Alerts.Queue.Redis.Addr) == "" {
			return errors.New("alerts.queue.redis.addr cannot be empty when the redis queue is enabled")
		}
		if strings.TrimSpace(c.Alerts.Queue.Key) == "" {
			return errors.New("alerts.queue.key cannot be empty")
		}
	}
	return nil
}
