// Package recommend turns a day's lunar phase, retrogrades and domain scores
// into a short ranked list of guidance items.
package recommend

import (
	"slices"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
)

// MaxItems caps the number of recommendations returned for a day.
const MaxItems = 6

const (
	highScore = 7.5
	lowScore  = 4.0
)

// Recommendation is a single guidance item. Priority only drives ranking.
type Recommendation struct {
	Domain      ephemeris.LifeDomain `json:"domain"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	IsPositive  bool                 `json:"isPositive"`
	Priority    int                  `json:"priority"`
}

// Input is the day state recommendations are derived from. Aspects are
// accepted for completeness but not used by the current rule set.
type Input struct {
	MoonPhase         ephemeris.MoonPhase
	Retrogrades       []ephemeris.Planet
	Aspects           []ephemeris.PlanetaryAspect
	RelationshipScore float64
	CareerScore       float64
	HealthScore       float64
}

// Generate builds moon phase, retrograde and domain items in that order,
// stable-sorts them by descending priority and keeps the first MaxItems.
func Generate(in Input) []Recommendation {
	items := make([]Recommendation, 0, 12)
	items = append(items, phaseTemplates[in.MoonPhase]...)
	items = append(items, retrogradeItems(in.Retrogrades)...)
	items = append(items, domainItems(in)...)

	slices.SortStableFunc(items, func(a, b Recommendation) int {
		return b.Priority - a.Priority
	})
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items
}

func retrogradeItems(retrogrades []ephemeris.Planet) []Recommendation {
	var out []Recommendation
	for _, p := range []ephemeris.Planet{ephemeris.Mercury, ephemeris.Venus, ephemeris.Mars} {
		if slices.Contains(retrogrades, p) {
			out = append(out, retrogradeTemplates[p]...)
		}
	}
	return out
}

func domainItems(in Input) []Recommendation {
	scores := [...]struct {
		domain ephemeris.LifeDomain
		score  float64
	}{
		{ephemeris.Relationships, in.RelationshipScore},
		{ephemeris.Career, in.CareerScore},
		{ephemeris.Health, in.HealthScore},
	}

	var out []Recommendation
	for _, s := range scores {
		tpl := domainTemplates[s.domain]
		switch {
		case s.score >= highScore:
			out = append(out, tpl.high)
		case s.score <= lowScore:
			out = append(out, tpl.low)
		}
	}
	return out
}
