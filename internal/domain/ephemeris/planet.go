package ephemeris

import (
	"fmt"
	"strings"
)

// Planet enumerates the ten bodies tracked by the engine.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// AllPlanets lists every body in enumeration order.
var AllPlanets = []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// LifeDomain partitions scoring into life areas.
type LifeDomain int

const (
	Relationships LifeDomain = iota
	Career
	Health
)

// AllDomains lists every life domain in enumeration order.
var AllDomains = []LifeDomain{Relationships, Career, Health}

type planetInfo struct {
	name            string
	symbol          string
	baseLongitude   float64
	dailyMotion     float64
	canBeRetrograde bool
	domains         []LifeDomain
	retrogradeNote  string
}

// Base longitudes are degrees at J2000; daily motion is mean degrees per day.
var planetTable = [...]planetInfo{
	Sun: {
		name: "Sun", symbol: "☉", baseLongitude: 280.46, dailyMotion: 0.9856,
		domains: []LifeDomain{Career, Health},
	},
	Moon: {
		name: "Moon", symbol: "☽", baseLongitude: 218.32, dailyMotion: 13.1764,
		domains: []LifeDomain{Relationships, Health},
	},
	Mercury: {
		name: "Mercury", symbol: "☿", baseLongitude: 252.25, dailyMotion: 1.3833, canBeRetrograde: true,
		domains:        []LifeDomain{Career, Relationships},
		retrogradeNote: "Communication delays, technology issues, travel disruptions. Review and revise rather than start new projects.",
	},
	Venus: {
		name: "Venus", symbol: "♀", baseLongitude: 181.98, dailyMotion: 1.2002, canBeRetrograde: true,
		domains:        []LifeDomain{Relationships},
		retrogradeNote: "Relationship reassessment, financial caution. Not ideal for major purchases or new relationships.",
	},
	Mars: {
		name: "Mars", symbol: "♂", baseLongitude: 355.45, dailyMotion: 0.5240, canBeRetrograde: true,
		domains:        []LifeDomain{Career, Health},
		retrogradeNote: "Lower energy, frustration with progress. Focus on completing rather than starting.",
	},
	Jupiter: {
		name: "Jupiter", symbol: "♃", baseLongitude: 34.40, dailyMotion: 0.0831, canBeRetrograde: true,
		domains:        []LifeDomain{Career, Relationships},
		retrogradeNote: "Internal growth and reflection. Good for spiritual development.",
	},
	Saturn: {
		name: "Saturn", symbol: "♄", baseLongitude: 50.08, dailyMotion: 0.0335, canBeRetrograde: true,
		domains:        []LifeDomain{Career},
		retrogradeNote: "Review responsibilities and structures. Lessons from the past resurface.",
	},
	Uranus: {
		name: "Uranus", symbol: "♅", baseLongitude: 314.20, dailyMotion: 0.0117, canBeRetrograde: true,
		domains:        []LifeDomain{Career, Relationships},
		retrogradeNote: "Internal revolution. Reassess need for freedom and change.",
	},
	Neptune: {
		name: "Neptune", symbol: "♆", baseLongitude: 304.22, dailyMotion: 0.0060, canBeRetrograde: true,
		domains:        []LifeDomain{Relationships, Health},
		retrogradeNote: "Dreams and illusions clarify. Spiritual insights emerge.",
	},
	Pluto: {
		name: "Pluto", symbol: "♇", baseLongitude: 238.96, dailyMotion: 0.0040, canBeRetrograde: true,
		domains:        []LifeDomain{Relationships, Health},
		retrogradeNote: "Deep psychological transformation. Hidden truths emerge.",
	},
}

func (p Planet) valid() bool { return p >= Sun && p <= Pluto }

func (p Planet) String() string {
	if !p.valid() {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetTable[p].name
}

// Symbol returns the astronomical glyph.
func (p Planet) Symbol() string {
	if !p.valid() {
		return ""
	}
	return planetTable[p].symbol
}

// BaseLongitude returns the J2000 ecliptic longitude used by the linear model.
func (p Planet) BaseLongitude() float64 {
	if !p.valid() {
		return 0
	}
	return planetTable[p].baseLongitude
}

// DailyMotion returns the mean longitudinal motion in degrees per day.
func (p Planet) DailyMotion() float64 {
	if !p.valid() {
		return 0
	}
	return planetTable[p].dailyMotion
}

// CanBeRetrograde is false only for the Sun and Moon.
func (p Planet) CanBeRetrograde() bool {
	return p.valid() && planetTable[p].canBeRetrograde
}

// Domains returns the life domains this planet influences.
func (p Planet) Domains() []LifeDomain {
	if !p.valid() {
		return nil
	}
	return planetTable[p].domains
}

// Influences reports whether the planet's affinity list contains d.
func (p Planet) Influences(d LifeDomain) bool {
	for _, candidate := range p.Domains() {
		if candidate == d {
			return true
		}
	}
	return false
}

// RetrogradeImpact describes what a retrograde of this planet signifies.
func (p Planet) RetrogradeImpact() string {
	if !p.valid() {
		return ""
	}
	return planetTable[p].retrogradeNote
}

// MarshalText encodes the planet by name.
func (p Planet) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("invalid planet %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a planet name case-insensitively.
func (p *Planet) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlanet resolves a planet by name.
func ParsePlanet(name string) (Planet, error) {
	for _, p := range AllPlanets {
		if strings.EqualFold(strings.TrimSpace(name), p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown planet %q", name)
}

// PlanetsFor returns, in enumeration order, the planets influencing d.
func PlanetsFor(d LifeDomain) []Planet {
	out := make([]Planet, 0, len(AllPlanets))
	for _, p := range AllPlanets {
		if p.Influences(d) {
			out = append(out, p)
		}
	}
	return out
}

var domainNames = [...]string{
	Relationships: "Relationships",
	Career:        "Career",
	Health:        "Health",
}

var domainDescriptions = [...]string{
	Relationships: "Love, friendships, and connections",
	Career:        "Work, finances, and ambitions",
	Health:        "Wellness, energy, and self-care",
}

func (d LifeDomain) String() string {
	if d < Relationships || d > Health {
		return fmt.Sprintf("LifeDomain(%d)", int(d))
	}
	return domainNames[d]
}

// Description is a short summary of the life area.
func (d LifeDomain) Description() string {
	if d < Relationships || d > Health {
		return ""
	}
	return domainDescriptions[d]
}

// MarshalText encodes the domain by lower-case name.
func (d LifeDomain) MarshalText() ([]byte, error) {
	if d < Relationships || d > Health {
		return nil, fmt.Errorf("invalid life domain %d", int(d))
	}
	return []byte(strings.ToLower(d.String())), nil
}

// UnmarshalText decodes a domain name case-insensitively.
func (d *LifeDomain) UnmarshalText(text []byte) error {
	for _, candidate := range AllDomains {
		if strings.EqualFold(string(text), candidate.String()) {
			*d = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown life domain %q", string(text))
}
