//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/cosmic-calendar/internal/bootstrap"
	"github.com/yanqian/cosmic-calendar/internal/domain/alerts"
	"github.com/yanqian/cosmic-calendar/internal/domain/calendar"
	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
	"github.com/yanqian/cosmic-calendar/internal/domain/scoring"
	"github.com/yanqian/cosmic-calendar/internal/infra/config"
	httpiface "github.com/yanqian/cosmic-calendar/internal/interface/http"
	"github.com/yanqian/cosmic-calendar/pkg/logger"
	"github.com/yanqian/cosmic-calendar/pkg/metrics"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		metrics.New,
		provideCalendarConfig,
		provideCalculator,
		provideProfileRepository,
		provideChartSource,
		provideMonthStore,
		provideAlertQueue,
		provideJobQueue,
		provideAlertsConfig,
		provideScheduler,
		profile.NewService,
		calendar.NewService,
		alerts.NewService,
		wire.Bind(new(calendar.Calculator), new(*scoring.Calculator)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
