package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-calendar/internal/domain/alerts"
	"github.com/yanqian/cosmic-calendar/internal/infra/alertqueue"
	"github.com/yanqian/cosmic-calendar/internal/infra/config"
	"github.com/yanqian/cosmic-calendar/internal/infra/daycache"
	"github.com/yanqian/cosmic-calendar/internal/infra/profilerepo"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubDispatcher struct{ calls int }

func (s *stubDispatcher) Dispatch(context.Context, time.Time) (int, error) {
	s.calls++
	return 0, nil
}

func TestProvidersFallBackToMemory(t *testing.T) {
	cfg := &config.Config{}

	_, ok := provideProfileRepository(cfg, testLogger()).(*profilerepo.MemoryRepository)
	require.True(t, ok)
	_, ok = provideMonthStore(cfg, testLogger()).(*daycache.MemoryStore)
	require.True(t, ok)
	queue := provideAlertQueue(cfg, testLogger())
	_, ok = queue.(*alertqueue.ImmediateQueue)
	require.True(t, ok)
	queue.Close()
}

func TestProvideAlertsConfigFallsBackToUTC(t *testing.T) {
	cfg := &config.Config{Alerts: config.AlertsConfig{Timezone: "Nowhere/City", LookaheadDays: 3}}
	got := provideAlertsConfig(cfg, testLogger())
	require.Equal(t, time.UTC, got.Location)
	require.Equal(t, 3, got.LookaheadDays)
}

func TestProvideScheduler(t *testing.T) {
	svc := &stubDispatcher{}
	alertCfg := alerts.Config{Location: time.UTC}

	sched, err := provideScheduler(&config.Config{}, alertCfg, svc, testLogger())
	require.NoError(t, err)
	require.Nil(t, sched)

	cfg := &config.Config{Alerts: config.AlertsConfig{Enabled: true, Schedule: "0 6 * * *"}}
	sched, err = provideScheduler(cfg, alertCfg, svc, testLogger())
	require.NoError(t, err)
	require.Equal(t, 1, sched.Entries())

	cfg.Alerts.Schedule = "every morning"
	_, err = provideScheduler(cfg, alertCfg, svc, testLogger())
	require.Error(t, err)
}

func TestBuildValkeyOptions(t *testing.T) {
	opt, err := buildValkeyOptions("localhost:6379")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = buildValkeyOptions("redis://cache.internal:6380/2")
	require.NoError(t, err)
	require.Equal(t, []string{"cache.internal:6380"}, opt.InitAddress)
	require.Equal(t, 2, opt.SelectDB)
}
