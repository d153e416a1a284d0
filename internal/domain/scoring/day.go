package scoring

import (
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/recommend"
)

// DateLayout is the key format used for month results.
const DateLayout = "2006-01-02"

// CosmicDay is the full computed state for one calendar date. Date is the
// start of that day in the caller's location.
type CosmicDay struct {
	Date                  time.Time                     `json:"date"`
	OverallScore          float64                       `json:"overallScore"`
	Category              ScoreCategory                 `json:"category"`
	CategoryDescription   string                        `json:"categoryDescription"`
	RelationshipScore     float64                       `json:"relationshipScore"`
	CareerScore           float64                       `json:"careerScore"`
	HealthScore           float64                       `json:"healthScore"`
	MoonPhase             ephemeris.MoonPhase           `json:"moonPhase"`
	Positions             []ephemeris.PlanetaryPosition `json:"planetaryPositions"`
	ActiveRetrogrades     []ephemeris.Planet            `json:"activeRetrogrades"`
	SignificantAspects    []ephemeris.PlanetaryAspect   `json:"significantAspects"`
	Recommendations       []recommend.Recommendation    `json:"recommendations"`
	RetrogradeDataCovered bool                          `json:"retrogradeDataCovered"`
}

// Key returns the date key used by month maps.
func (d CosmicDay) Key() string {
	return d.Date.Format(DateLayout)
}

// DomainScore returns the score for one life domain.
func (d CosmicDay) DomainScore(domain ephemeris.LifeDomain) float64 {
	switch domain {
	case ephemeris.Relationships:
		return d.RelationshipScore
	case ephemeris.Career:
		return d.CareerScore
	case ephemeris.Health:
		return d.HealthScore
	default:
		return 0
	}
}
