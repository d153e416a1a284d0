package ephemeris

import (
	"math"
	"strings"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/julian"
)

const obliquity = 23.4393

// TimeOfDay is a wall-clock birth time.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// BirthProfile is the onboarding input a chart is derived from. BirthDate
// contributes only its calendar date.
type BirthProfile struct {
	Name      string     `json:"name"`
	BirthDate time.Time  `json:"birthDate"`
	BirthTime *TimeOfDay `json:"birthTime,omitempty"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
}

// HasBirthTime reports whether a rising sign can be computed.
func (p BirthProfile) HasBirthTime() bool {
	return p.BirthTime != nil
}

// Location resolves the IANA timezone, falling back to UTC when it is empty
// or unknown.
func (p BirthProfile) Location() *time.Location {
	name := strings.TrimSpace(p.Timezone)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Instant combines date, optional time and timezone into one instant. Without
// a birth time the start of the birth day is used.
func (p BirthProfile) Instant() time.Time {
	loc := p.Location()
	y, m, d := p.BirthDate.Date()
	hour, minute := 0, 0
	if p.BirthTime != nil {
		hour, minute = p.BirthTime.Hour, p.BirthTime.Minute
	}
	return time.Date(y, m, d, hour, minute, 0, 0, loc).UTC()
}

// BirthChart is the natal snapshot derived from a BirthProfile. ChartRuler
// is the ruler of the rising sign, or of the sun sign without a birth time.
type BirthChart struct {
	SunSign          ZodiacSign          `json:"sunSign"`
	MoonSign         ZodiacSign          `json:"moonSign"`
	RisingSign       *ZodiacSign         `json:"risingSign,omitempty"`
	DominantElement  Element             `json:"dominantElement"`
	DominantModality Modality            `json:"dominantModality"`
	ChartRuler       Planet              `json:"chartRuler"`
	Temperament      string              `json:"temperament"`
	Positions        []PlanetaryPosition `json:"planetaryPositions"`
	CalculatedAt     time.Time           `json:"calculatedAt"`
}

// NewBirthChart computes the chart for profile, stamped with calculatedAt.
func NewBirthChart(profile BirthProfile, calculatedAt time.Time) BirthChart {
	jd := julian.FromTime(profile.Instant())
	positions := Positions(jd)

	chart := BirthChart{
		SunSign:          Aries,
		MoonSign:         Aries,
		DominantElement:  DominantElement(positions),
		DominantModality: DominantModality(positions),
		Positions:        positions,
		CalculatedAt:     calculatedAt,
	}
	if sun, ok := find(positions, Sun); ok {
		chart.SunSign = sun.Sign
	}
	if moon, ok := find(positions, Moon); ok {
		chart.MoonSign = moon.Sign
	}
	if profile.HasBirthTime() {
		rising := Ascendant(jd, profile.Latitude, profile.Longitude)
		chart.RisingSign = &rising
	}
	chart.ChartRuler = chart.SunSign.Ruler()
	if chart.RisingSign != nil {
		chart.ChartRuler = chart.RisingSign.Ruler()
	}
	chart.Temperament = chart.DominantElement.Description() + ". " + chart.DominantModality.Description() + "."
	return chart
}

// DominantElement is the element with the most positions; ties go to the
// earlier element in Fire, Earth, Air, Water order.
func DominantElement(positions []PlanetaryPosition) Element {
	var counts [4]int
	for _, pos := range positions {
		counts[pos.Sign.Element()]++
	}
	best := Fire
	for e := Earth; e <= Water; e++ {
		if counts[e] > counts[best] {
			best = e
		}
	}
	return best
}

// DominantModality is the modality with the most positions; ties go to the
// earlier modality.
func DominantModality(positions []PlanetaryPosition) Modality {
	var counts [3]int
	for _, pos := range positions {
		counts[pos.Sign.Modality()]++
	}
	best := Cardinal
	for m := Fixed; m <= Mutable; m++ {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}

// LocalSiderealTime returns LST in degrees for a geographic longitude.
func LocalSiderealTime(jd, longitude float64) float64 {
	d := julian.DaysSinceJ2000(jd)
	// IAU 1982 GMST: linear term in days, quadratic term in Julian centuries.
	t := d / 36525
	gmst := Normalize360(280.46061837 + 360.98564736629*d + 0.000387933*t*t)
	return Normalize360(gmst + longitude)
}

// Ascendant returns the sign rising on the eastern horizon.
func Ascendant(jd, latitude, longitude float64) ZodiacSign {
	lst := LocalSiderealTime(jd, longitude) * math.Pi / 180
	lat := latitude * math.Pi / 180
	obl := obliquity * math.Pi / 180

	y := math.Cos(lst)
	x := -math.Sin(lst)*math.Cos(obl) - math.Tan(lat)*math.Sin(obl)
	asc := Normalize360(math.Atan2(y, x) * 180 / math.Pi)
	return SignFromDegree(asc)
}
