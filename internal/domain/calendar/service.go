// Package calendar serves day, month, chart and event lookups on top of the
// scoring engine.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/events"
	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
	"github.com/yanqian/cosmic-calendar/internal/domain/scoring"
	apperrors "github.com/yanqian/cosmic-calendar/pkg/errors"
	"github.com/yanqian/cosmic-calendar/pkg/metrics"
	"github.com/yanqian/cosmic-calendar/pkg/util"
)

const anonymousKey = "-"

// Service exposes the calendar use cases.
type Service interface {
	Day(ctx context.Context, req DayRequest) (scoring.CosmicDay, error)
	Month(ctx context.Context, req MonthRequest) (MonthResponse, error)
	Chart(ctx context.Context, req profile.Request) (ephemeris.BirthChart, error)
	Events(ctx context.Context, req EventsRequest) ([]events.CosmicEvent, error)
}

type service struct {
	cfg     Config
	calc    Calculator
	charts  ChartSource
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the calendar domain.
func NewService(cfg Config, calc Calculator, charts ChartSource, store Store, m *metrics.Metrics, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		calc:    calc,
		charts:  charts,
		store:   store,
		metrics: m,
		logger:  logger.With("component", "calendar.service"),
		now:     time.Now,
	}
}

func (s *service) Day(ctx context.Context, req DayRequest) (scoring.CosmicDay, error) {
	loc, err := s.location(req.Timezone)
	if err != nil {
		return scoring.CosmicDay{}, err
	}
	date, err := time.ParseInLocation(scoring.DateLayout, strings.TrimSpace(req.Date), loc)
	if err != nil {
		return scoring.CosmicDay{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", err)
	}
	chart, err := s.chart(ctx, req.ProfileID)
	if err != nil {
		return scoring.CosmicDay{}, err
	}

	day := s.calc.Day(date, chart)
	s.metrics.ObserveDays(1)
	return day, nil
}

func (s *service) Month(ctx context.Context, req MonthRequest) (MonthResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return MonthResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "month must be between 1 and 12", nil)
	}
	if req.Year < 1 || req.Year > 9999 {
		return MonthResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "year must be between 1 and 9999", nil)
	}
	loc, err := s.location(req.Timezone)
	if err != nil {
		return MonthResponse{}, err
	}
	chart, err := s.chart(ctx, req.ProfileID)
	if err != nil {
		return MonthResponse{}, err
	}

	resp := MonthResponse{Year: req.Year, Month: req.Month, Timezone: loc.String()}
	key := monthKey(loc, req.Year, req.Month, req.ProfileID)

	if s.store != nil {
		days, found, err := s.store.GetMonth(ctx, key)
		switch {
		case err != nil:
			s.metrics.ObserveCache("error")
			s.logger.Warn("month cache lookup failed", "key", key, "error", err)
		case found:
			s.metrics.ObserveCache("hit")
			resp.Days = days
			resp.Cached = true
			return resp, nil
		default:
			s.metrics.ObserveCache("miss")
		}
	}

	started := time.Now()
	resp.Days = s.calc.Month(req.Year, time.Month(req.Month), loc, chart)
	s.metrics.ObserveMonth(time.Since(started))
	s.metrics.ObserveDays(len(resp.Days))
	s.logger.Debug("month computed", "key", key, "days", len(resp.Days), "duration", time.Since(started))

	if s.store != nil {
		if err := s.store.SaveMonth(ctx, key, resp.Days, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("month cache save failed", "key", key, "error", err)
		}
	}
	return resp, nil
}

func (s *service) Chart(_ context.Context, req profile.Request) (ephemeris.BirthChart, error) {
	birth, err := profile.Parse(req)
	if errors.Is(err, profile.ErrUnknownTimezone) {
		s.logger.Warn("chart timezone unknown, using UTC", "timezone", req.Timezone)
	} else if err != nil {
		return ephemeris.BirthChart{}, err
	}
	return ephemeris.NewBirthChart(birth, s.now().UTC().Truncate(time.Second)), nil
}

func (s *service) Events(_ context.Context, req EventsRequest) ([]events.CosmicEvent, error) {
	loc, err := s.location(req.Timezone)
	if err != nil {
		return nil, err
	}
	from, err := time.ParseInLocation(scoring.DateLayout, strings.TrimSpace(req.From), loc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "from must be formatted as YYYY-MM-DD", err)
	}
	to, err := time.ParseInLocation(scoring.DateLayout, strings.TrimSpace(req.To), loc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "to must be formatted as YYYY-MM-DD", err)
	}
	if to.Before(from) {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "to must not be before from", nil)
	}
	if limit := s.cfg.MaxEventDays; limit > 0 && to.Sub(from) > time.Duration(limit)*24*time.Hour {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("range cannot exceed %d days", limit), nil)
	}

	found := events.Detect(from, to, loc)
	if found == nil {
		found = []events.CosmicEvent{}
	}
	return found, nil
}

func (s *service) location(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		name = s.cfg.DefaultTimezone
	}
	loc, err := util.LoadLocation(name, time.UTC)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown timezone", err)
	}
	return loc, nil
}

func (s *service) chart(ctx context.Context, profileID string) (*ephemeris.BirthChart, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, nil
	}
	if s.charts == nil {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "profiles are not available", nil)
	}
	chart, err := s.charts.Chart(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

func monthKey(loc *time.Location, year, month int, profileID string) string {
	who := strings.TrimSpace(profileID)
	if who == "" {
		who = anonymousKey
	}
	return fmt.Sprintf("month:%s:%04d-%02d:%s", loc.String(), year, month, who)
}
