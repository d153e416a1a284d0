// Package events detects notable sky events, such as retrograde stations and
// full or new moons, over a range of calendar days.
package events

import (
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
)

// EventType identifies the kind of CosmicEvent.
type EventType string

const (
	Retrograde    EventType = "retrograde"
	DirectStation EventType = "direct_station"
	FullMoon      EventType = "full_moon"
	NewMoon       EventType = "new_moon"
)

// Impact grades how an event colours the days it touches.
type Impact string

const (
	VeryPositive    Impact = "very_positive"
	Positive        Impact = "positive"
	Neutral         Impact = "neutral"
	Challenging     Impact = "challenging"
	VeryChallenging Impact = "very_challenging"
)

// ScoreModifier maps the impact onto [-1.5, 1.5].
func (i Impact) ScoreModifier() float64 {
	switch i {
	case VeryPositive:
		return 1.5
	case Positive:
		return 0.75
	case Challenging:
		return -0.75
	case VeryChallenging:
		return -1.5
	default:
		return 0
	}
}

// CosmicEvent is a dated sky event. EndDate is set only for retrogrades whose
// direct station falls inside the detected range.
type CosmicEvent struct {
	Type        EventType         `json:"type"`
	Planet      *ephemeris.Planet `json:"planet,omitempty"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Impact      Impact            `json:"impact"`
}

// IsActive reports whether at falls within the event. Events without an end
// date are active for their start day only.
func (e CosmicEvent) IsActive(at time.Time) bool {
	if e.EndDate != nil {
		return !at.Before(e.StartDate) && !at.After(*e.EndDate)
	}
	at = at.In(e.StartDate.Location())
	y1, m1, d1 := at.Date()
	y2, m2, d2 := e.StartDate.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
