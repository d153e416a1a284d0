package calendar

import (
	"context"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/scoring"
)

// Config holds runtime knobs for the calendar service.
type Config struct {
	DefaultTimezone string
	CacheTTL        time.Duration
	MaxEventDays    int
}

// DayRequest selects one calendar date. Date is YYYY-MM-DD; an empty
// Timezone uses the configured default and an empty ProfileID skips aspects.
type DayRequest struct {
	Date      string
	Timezone  string
	ProfileID string
}

// MonthRequest selects one calendar month.
type MonthRequest struct {
	Year      int
	Month     int
	Timezone  string
	ProfileID string
}

// MonthResponse holds every day of a month keyed by YYYY-MM-DD.
type MonthResponse struct {
	Year     int                          `json:"year"`
	Month    int                          `json:"month"`
	Timezone string                       `json:"timezone"`
	Cached   bool                         `json:"cached"`
	Days     map[string]scoring.CosmicDay `json:"days"`
}

// EventsRequest selects an inclusive date range, both ends YYYY-MM-DD.
type EventsRequest struct {
	From     string
	To       string
	Timezone string
}

// Calculator computes cosmic days; *scoring.Calculator satisfies it.
type Calculator interface {
	Day(date time.Time, chart *ephemeris.BirthChart) scoring.CosmicDay
	Month(year int, month time.Month, loc *time.Location, chart *ephemeris.BirthChart) map[string]scoring.CosmicDay
}

// ChartSource resolves a stored profile to its birth chart.
type ChartSource interface {
	Chart(ctx context.Context, profileID string) (ephemeris.BirthChart, error)
}

// Store caches computed months.
type Store interface {
	GetMonth(ctx context.Context, key string) (map[string]scoring.CosmicDay, bool, error)
	SaveMonth(ctx context.Context, key string, days map[string]scoring.CosmicDay, ttl time.Duration) error
}
