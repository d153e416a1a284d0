package ephemeris

import (
	"fmt"
	"math"
)

// Aspect is a named angular relationship between two longitudes.
type Aspect int

const (
	Conjunction Aspect = iota
	Sextile
	Square
	Trine
	Opposition
)

// AllAspects is also the match priority used by FindAspect.
var AllAspects = []Aspect{Conjunction, Sextile, Square, Trine, Opposition}

type aspectInfo struct {
	name          string
	symbol        string
	angle         float64
	orb           float64
	scoreModifier float64
	harmonious    bool
}

var aspectTable = [...]aspectInfo{
	Conjunction: {"Conjunction", "☌", 0, 8, 0.5, true},
	Sextile:     {"Sextile", "⚹", 60, 6, 1.0, true},
	Square:      {"Square", "□", 90, 7, -1.0, false},
	Trine:       {"Trine", "△", 120, 8, 1.5, true},
	Opposition:  {"Opposition", "☍", 180, 8, -1.5, false},
}

func (a Aspect) valid() bool { return a >= Conjunction && a <= Opposition }

func (a Aspect) String() string {
	if !a.valid() {
		return fmt.Sprintf("Aspect(%d)", int(a))
	}
	return aspectTable[a].name
}

func (a Aspect) Symbol() string {
	if !a.valid() {
		return ""
	}
	return aspectTable[a].symbol
}

// Angle is the exact separation in degrees.
func (a Aspect) Angle() float64 {
	if !a.valid() {
		return 0
	}
	return aspectTable[a].angle
}

// Orb is the allowed deviation from Angle.
func (a Aspect) Orb() float64 {
	if !a.valid() {
		return 0
	}
	return aspectTable[a].orb
}

func (a Aspect) ScoreModifier() float64 {
	if !a.valid() {
		return 0
	}
	return aspectTable[a].scoreModifier
}

func (a Aspect) IsHarmonious() bool {
	return a.valid() && aspectTable[a].harmonious
}

func (a Aspect) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("invalid aspect %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Aspect) UnmarshalText(text []byte) error {
	for _, candidate := range AllAspects {
		if candidate.String() == string(text) {
			*a = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown aspect %q", string(text))
}

// PlanetaryAspect is an observed aspect between two positions.
type PlanetaryAspect struct {
	Planet1    Planet  `json:"planet1"`
	Planet2    Planet  `json:"planet2"`
	Aspect     Aspect  `json:"aspect"`
	Orb        float64 `json:"orb"`
	IsApplying bool    `json:"isApplying"`
}

// Involves reports whether p is either side of the aspect.
func (pa PlanetaryAspect) Involves(p Planet) bool {
	return pa.Planet1 == p || pa.Planet2 == p
}

func (pa PlanetaryAspect) String() string {
	return fmt.Sprintf("%s %s %s", pa.Planet1, pa.Aspect.Symbol(), pa.Planet2)
}

// FindAspect returns the first aspect, in AllAspects order, whose orb
// contains the separation of the two positions. The first match wins even if
// a later aspect would fit more tightly.
func FindAspect(pos1, pos2 PlanetaryPosition) (PlanetaryAspect, bool) {
	angle := math.Abs(pos1.Longitude - pos2.Longitude)
	if angle > 180 {
		angle = 360 - angle
	}

	for _, aspect := range AllAspects {
		orb := math.Abs(angle - aspect.Angle())
		if orb <= aspect.Orb() {
			return PlanetaryAspect{
				Planet1:    pos1.Planet,
				Planet2:    pos2.Planet,
				Aspect:     aspect,
				Orb:        orb,
				IsApplying: pos1.SpeedLongitude > pos2.SpeedLongitude,
			}, true
		}
	}
	return PlanetaryAspect{}, false
}

// Aspects tests every cross pair of distinct planets, outer loop over set1.
func Aspects(set1, set2 []PlanetaryPosition) []PlanetaryAspect {
	var out []PlanetaryAspect
	for _, p1 := range set1 {
		for _, p2 := range set2 {
			if p1.Planet == p2.Planet {
				continue
			}
			if aspect, ok := FindAspect(p1, p2); ok {
				out = append(out, aspect)
			}
		}
	}
	return out
}
