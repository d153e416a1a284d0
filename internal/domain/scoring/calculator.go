// Package scoring derives daily cosmic scores from ephemeris state and an
// optional birth chart.
package scoring

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/julian"
	"github.com/yanqian/cosmic-calendar/internal/domain/recommend"
	"github.com/yanqian/cosmic-calendar/pkg/util"
)

const (
	baseScore = 5.0
	minScore  = 1.0
	maxScore  = 10.0

	applyingWeight   = 1.2
	separatingWeight = 0.8
	overallAspectMul = 0.3
	domainAspectMul  = 0.5
	defaultPenalty   = 0.5
)

// Overall retrograde penalties; planets not listed cost 0.1.
var overallRetrogradePenalty = map[ephemeris.Planet]float64{
	ephemeris.Mercury: 1.5,
	ephemeris.Venus:   1.0,
	ephemeris.Mars:    0.5,
	ephemeris.Jupiter: 0.25,
	ephemeris.Saturn:  0.25,
}

type domainPlanet struct {
	domain ephemeris.LifeDomain
	planet ephemeris.Planet
}

// Domain retrograde penalties; other relevant retrogrades cost defaultPenalty.
var domainRetrogradePenalty = map[domainPlanet]float64{
	{ephemeris.Career, ephemeris.Mercury}:      1.5,
	{ephemeris.Relationships, ephemeris.Venus}: 1.5,
	{ephemeris.Health, ephemeris.Mars}:         1.0,
}

var domainPhaseBonus = map[ephemeris.LifeDomain]map[ephemeris.MoonPhase]float64{
	ephemeris.Relationships: {
		ephemeris.FullMoon:       1.0,
		ephemeris.NewMoon:        0.5,
		ephemeris.WaningCrescent: -0.25,
		ephemeris.WaningGibbous:  -0.25,
	},
	ephemeris.Career: {
		ephemeris.WaxingGibbous:  0.5,
		ephemeris.FirstQuarter:   0.5,
		ephemeris.FullMoon:       0.75,
		ephemeris.WaningCrescent: -0.5,
	},
	ephemeris.Health: {
		ephemeris.NewMoon:        0.5,
		ephemeris.WaningCrescent: 0.25,
		ephemeris.FullMoon:       -0.25,
	},
}

// Calculator computes CosmicDay values. It holds no mutable state and is safe
// for concurrent use.
type Calculator struct {
	workers int
}

// NewCalculator returns a Calculator fanning month computations out over at
// most workers goroutines. Non-positive values use GOMAXPROCS.
func NewCalculator(workers int) *Calculator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Calculator{workers: workers}
}

// Day computes the CosmicDay for the calendar date of date in date's location.
// A nil chart skips all aspect contributions.
func (c *Calculator) Day(date time.Time, chart *ephemeris.BirthChart) CosmicDay {
	day := util.StartOfDay(date)
	jd := julian.FromTime(day)

	positions := ephemeris.Positions(jd)
	phase := ephemeris.MoonPhaseFrom(positions)
	retrogrades := ephemeris.RetrogradesFrom(positions)

	aspects := []ephemeris.PlanetaryAspect{}
	if chart != nil {
		if found := ephemeris.Aspects(positions, chart.Positions); found != nil {
			aspects = found
		}
	}

	overall := overallScore(phase, retrogrades, aspects)
	result := CosmicDay{
		Date:                  day,
		OverallScore:          overall,
		Category:              CategoryFrom(overall),
		CategoryDescription:   CategoryFrom(overall).Description(),
		RelationshipScore:     domainScore(ephemeris.Relationships, phase, retrogrades, aspects),
		CareerScore:           domainScore(ephemeris.Career, phase, retrogrades, aspects),
		HealthScore:           domainScore(ephemeris.Health, phase, retrogrades, aspects),
		MoonPhase:             phase,
		Positions:             positions,
		ActiveRetrogrades:     retrogrades,
		SignificantAspects:    aspects,
		RetrogradeDataCovered: ephemeris.RetrogradeCoverage().Contains(jd),
	}
	result.Recommendations = recommend.Generate(recommend.Input{
		MoonPhase:         phase,
		Retrogrades:       retrogrades,
		Aspects:           aspects,
		RelationshipScore: result.RelationshipScore,
		CareerScore:       result.CareerScore,
		HealthScore:       result.HealthScore,
	})
	return result
}

// Month computes every day of year/month in loc, keyed by DateLayout. Days are
// independent and computed in parallel. An out-of-range month yields an
// empty map.
func (c *Calculator) Month(year int, month time.Month, loc *time.Location, chart *ephemeris.BirthChart) map[string]CosmicDay {
	if month < time.January || month > time.December {
		return map[string]CosmicDay{}
	}
	if loc == nil {
		loc = time.UTC
	}

	n := DaysIn(year, month)
	days := make([]CosmicDay, n)

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			days[i] = c.Day(time.Date(year, month, i+1, 0, 0, 0, 0, loc), chart)
			return nil
		})
	}
	// Workers never return an error; Wait only joins them.
	_ = g.Wait()

	out := make(map[string]CosmicDay, n)
	for _, d := range days {
		out[d.Key()] = d
	}
	return out
}

// DaysIn returns the number of days in the month, honouring leap years.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func overallScore(phase ephemeris.MoonPhase, retrogrades []ephemeris.Planet, aspects []ephemeris.PlanetaryAspect) float64 {
	score := baseScore + phase.ScoreModifier()

	for _, p := range retrogrades {
		penalty, ok := overallRetrogradePenalty[p]
		if !ok {
			penalty = 0.1
		}
		score -= penalty
	}

	for _, a := range aspects {
		weight := separatingWeight
		if a.IsApplying {
			weight = applyingWeight
		}
		score += a.Aspect.ScoreModifier() * weight * overallAspectMul
	}
	return clamp(score)
}

func domainScore(domain ephemeris.LifeDomain, phase ephemeris.MoonPhase, retrogrades []ephemeris.Planet, aspects []ephemeris.PlanetaryAspect) float64 {
	score := baseScore
	relevant := ephemeris.PlanetsFor(domain)

	for _, p := range relevant {
		if !contains(retrogrades, p) {
			continue
		}
		penalty, ok := domainRetrogradePenalty[domainPlanet{domain, p}]
		if !ok {
			penalty = defaultPenalty
		}
		score -= penalty
	}

	for _, a := range aspects {
		if contains(relevant, a.Planet1) || contains(relevant, a.Planet2) {
			score += a.Aspect.ScoreModifier() * domainAspectMul
		}
	}

	score += domainPhaseBonus[domain][phase]
	return clamp(score)
}

func contains(planets []ephemeris.Planet, p ephemeris.Planet) bool {
	for _, candidate := range planets {
		if candidate == p {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	return min(max(v, minScore), maxScore)
}
