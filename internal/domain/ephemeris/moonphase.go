package ephemeris

import (
	"fmt"
	"math"
)

// MoonPhase is one of the eight named lunar phases.
type MoonPhase int

const (
	NewMoon MoonPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// AllMoonPhases lists the phases in lunar-cycle order.
var AllMoonPhases = []MoonPhase{NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous, FullMoon, WaningGibbous, LastQuarter, WaningCrescent}

type phaseInfo struct {
	name          string
	symbol        string
	scoreModifier float64
	description   string
	activities    []string
}

var phaseTable = [...]phaseInfo{
	NewMoon: {
		name: "New Moon", symbol: "🌑", scoreModifier: 0.5,
		description: "Time for new beginnings and setting intentions. Plant seeds for future growth.",
		activities:  []string{"Set intentions", "Start new projects", "Meditation", "Journaling"},
	},
	WaxingCrescent: {
		name: "Waxing Crescent", symbol: "🌒", scoreModifier: 0.25,
		description: "Building momentum. Take initial steps toward your goals.",
		activities:  []string{"Take action", "Build momentum", "Network", "Learn new skills"},
	},
	FirstQuarter: {
		name: "First Quarter", symbol: "🌓", scoreModifier: 0,
		description: "Decision time. Overcome obstacles and commit to your path.",
		activities:  []string{"Make decisions", "Face challenges", "Adjust plans", "Stay focused"},
	},
	WaxingGibbous: {
		name: "Waxing Gibbous", symbol: "🌔", scoreModifier: 0.25,
		description: "Refine and adjust. Make final preparations before culmination.",
		activities:  []string{"Refine details", "Prepare presentations", "Final edits", "Self-improvement"},
	},
	FullMoon: {
		name: "Full Moon", symbol: "🌕", scoreModifier: 1.0,
		description: "Peak energy and illumination. Celebrate achievements and gain clarity.",
		activities:  []string{"Celebrate wins", "Social gatherings", "Creative expression", "Manifestation rituals"},
	},
	WaningGibbous: {
		name: "Waning Gibbous", symbol: "🌖", scoreModifier: -0.5,
		description: "Share wisdom and gratitude. Distribute what you've gained.",
		activities:  []string{"Share knowledge", "Express gratitude", "Mentor others", "Give back"},
	},
	LastQuarter: {
		name: "Last Quarter", symbol: "🌗", scoreModifier: 0,
		description: "Release and let go. Clear what no longer serves you.",
		activities:  []string{"Declutter", "End unhealthy patterns", "Forgiveness work", "Clean spaces"},
	},
	WaningCrescent: {
		name: "Waning Crescent", symbol: "🌘", scoreModifier: -0.5,
		description: "Rest and reflect. Prepare for the next cycle.",
		activities:  []string{"Rest deeply", "Dream work", "Spiritual practices", "Gentle movement"},
	},
}

func (m MoonPhase) valid() bool { return m >= NewMoon && m <= WaningCrescent }

func (m MoonPhase) String() string {
	if !m.valid() {
		return fmt.Sprintf("MoonPhase(%d)", int(m))
	}
	return phaseTable[m].name
}

func (m MoonPhase) Symbol() string {
	if !m.valid() {
		return ""
	}
	return phaseTable[m].symbol
}

// ScoreModifier is added to the overall daily score; range [-1.0, 1.5].
func (m MoonPhase) ScoreModifier() float64 {
	if !m.valid() {
		return 0
	}
	return phaseTable[m].scoreModifier
}

func (m MoonPhase) Description() string {
	if !m.valid() {
		return ""
	}
	return phaseTable[m].description
}

// Activities suggests things suited to the phase.
func (m MoonPhase) Activities() []string {
	if !m.valid() {
		return nil
	}
	return phaseTable[m].activities
}

func (m MoonPhase) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("invalid moon phase %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *MoonPhase) UnmarshalText(text []byte) error {
	for _, candidate := range AllMoonPhases {
		if candidate.String() == string(text) {
			*m = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown moon phase %q", string(text))
}

// PhaseFromIllumination classifies an illuminated fraction and direction.
// Waxing illumination of 0.75 or more is already Full; waning needs 0.97.
// The waning half-lit band is reported as Waning Crescent.
func PhaseFromIllumination(illumination float64, isWaxing bool) MoonPhase {
	switch {
	case illumination >= 0 && illumination < 0.03:
		return NewMoon
	case illumination >= 0.03 && illumination < 0.25 && isWaxing:
		return WaxingCrescent
	case illumination >= 0.25 && illumination < 0.50 && isWaxing:
		return FirstQuarter
	case illumination >= 0.50 && illumination < 0.75 && isWaxing:
		return WaxingGibbous
	case illumination >= 0.75 && illumination < 0.97 && isWaxing:
		return FullMoon
	case illumination >= 0.97 && illumination <= 1.0:
		return FullMoon
	case illumination >= 0.75 && illumination < 0.97:
		return WaningGibbous
	case illumination >= 0.50 && illumination < 0.75:
		return LastQuarter
	case illumination >= 0.03 && illumination < 0.50:
		return WaningCrescent
	default:
		return NewMoon
	}
}

// Elongation returns the Moon's angular distance east of the Sun in [0, 360).
func Elongation(moonLongitude, sunLongitude float64) float64 {
	return Normalize360(moonLongitude - sunLongitude)
}

// Illumination returns the lit fraction of the lunar disc for an elongation.
func Illumination(elongation float64) float64 {
	return (1 - math.Cos(elongation*math.Pi/180)) / 2
}

// MoonPhaseAt derives the lunar phase at a Julian Day.
func MoonPhaseAt(jd float64) MoonPhase {
	return MoonPhaseFrom(Positions(jd))
}

// MoonPhaseFrom derives the lunar phase from an already computed position set.
func MoonPhaseFrom(positions []PlanetaryPosition) MoonPhase {
	sun, okSun := find(positions, Sun)
	moon, okMoon := find(positions, Moon)
	if !okSun || !okMoon {
		return NewMoon
	}
	elongation := Elongation(moon.Longitude, sun.Longitude)
	return PhaseFromIllumination(Illumination(elongation), elongation < 180)
}

func find(positions []PlanetaryPosition, p Planet) (PlanetaryPosition, bool) {
	for _, pos := range positions {
		if pos.Planet == p {
			return pos, true
		}
	}
	return PlanetaryPosition{}, false
}
