// Package ephemeris approximates planetary state with a linear mean-motion
// model, and derives lunar phase, aspects, retrogrades and birth charts from it.
// Results are deterministic and not ephemeris-precise.
package ephemeris

import (
	"fmt"
	"math"

	"github.com/yanqian/cosmic-calendar/internal/domain/julian"
)

// PlanetaryPosition is one body's state at one instant.
type PlanetaryPosition struct {
	Planet         Planet     `json:"planet"`
	Longitude      float64    `json:"longitude"`
	Latitude       float64    `json:"latitude"`
	Distance       float64    `json:"distance"`
	SpeedLongitude float64    `json:"speedLongitude"`
	IsRetrograde   bool       `json:"isRetrograde"`
	Sign           ZodiacSign `json:"sign"`
}

// DegreeInSign is the longitude within the current sign, [0, 30).
func (p PlanetaryPosition) DegreeInSign() float64 {
	return math.Mod(p.Longitude, 30)
}

// Formatted renders the position like "♈ 12°34' R".
func (p PlanetaryPosition) Formatted() string {
	deg := p.DegreeInSign()
	whole := int(deg)
	minutes := int((deg - float64(whole)) * 60)
	suffix := ""
	if p.IsRetrograde {
		suffix = " R"
	}
	return fmt.Sprintf("%s %d°%d'%s", p.Sign.Symbol(), whole, minutes, suffix)
}

// PositionAt computes a single planet's position at jd.
func PositionAt(p Planet, jd float64) PlanetaryPosition {
	motion := p.DailyMotion()
	longitude := Normalize360(p.BaseLongitude() + motion*julian.DaysSinceJ2000(jd))
	retro := IsRetrograde(p, jd)
	speed := motion
	if retro {
		speed = -motion
	}
	return PlanetaryPosition{
		Planet:         p,
		Longitude:      longitude,
		Latitude:       0,
		Distance:       1,
		SpeedLongitude: speed,
		IsRetrograde:   retro,
		Sign:           SignFromDegree(longitude),
	}
}

// Positions returns all ten bodies at jd in enumeration order.
func Positions(jd float64) []PlanetaryPosition {
	out := make([]PlanetaryPosition, 0, len(AllPlanets))
	for _, p := range AllPlanets {
		out = append(out, PositionAt(p, jd))
	}
	return out
}

// ActiveRetrogrades lists retrograde planets at jd in enumeration order.
func ActiveRetrogrades(jd float64) []Planet {
	return RetrogradesFrom(Positions(jd))
}

// RetrogradesFrom filters an already computed position set.
func RetrogradesFrom(positions []PlanetaryPosition) []Planet {
	out := make([]Planet, 0, len(positions))
	for _, pos := range positions {
		if pos.IsRetrograde && pos.Planet.CanBeRetrograde() {
			out = append(out, pos.Planet)
		}
	}
	return out
}
