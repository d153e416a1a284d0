package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
calendar:
  defaultTimezone: "Asia/Singapore"
  monthWorkers: 2
  cacheTtl: 1h
alerts:
  enabled: true
  schedule: "30 7 * * *"
  lookaheadDays: 3
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CALENDAR_MONTH_WORKERS", "6")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "Asia/Singapore", cfg.Calendar.DefaultTimezone)
	require.Equal(t, 6, cfg.Calendar.MonthWorkers)
	require.Equal(t, time.Hour, cfg.Calendar.CacheTTL)
	require.True(t, cfg.Alerts.Enabled)
	require.Equal(t, "30 7 * * *", cfg.Alerts.Schedule)
	require.Equal(t, 3, cfg.Alerts.LookaheadDays)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	// Untouched defaults survive the file merge.
	require.Equal(t, 366, cfg.Calendar.MaxEventDays)
	require.Equal(t, "cosmic:alerts", cfg.Alerts.Queue.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.HTTP.Address = "" }},
		{"bad timezone", func(c *Config) { c.Calendar.DefaultTimezone = "Nowhere/Atlantis" }},
		{"negative ttl", func(c *Config) { c.Calendar.CacheTTL = -time.Second }},
		{"redis without addr", func(c *Config) { c.Cache.Redis.Enabled = true }},
		{"bad schedule", func(c *Config) {
			c.Alerts.Enabled = true
			c.Alerts.Schedule = "every morning"
		}},
		{"zero lookahead", func(c *Config) {
			c.Alerts.Enabled = true
			c.Alerts.LookaheadDays = 0
		}},
		{"queue without addr", func(c *Config) { c.Alerts.Queue.Redis.Enabled = true }},
	}
	require.NoError(t, defaultConfig().Validate())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
