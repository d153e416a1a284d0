// Package julian converts between civil calendar time and Julian Day numbers.
package julian

import (
	"math"
	"time"
)

// J2000 is the Julian Day of 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// gregorianStart is the first Julian Day number of the Gregorian calendar.
const gregorianStart = 2299161

const secondsPerDay = 86400

// Civil is a broken-down UTC calendar timestamp.
type Civil struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromCivil returns the Julian Day for the given civil components interpreted
// in loc. A nil loc means UTC.
func FromCivil(c Civil, loc *time.Location) float64 {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, loc)
	return FromTime(t)
}

// FromTime returns the Julian Day of t after normalizing it to UTC.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	y := float64(u.Year())
	m := float64(u.Month())
	decimalDay := float64(u.Day()) +
		(float64(u.Hour())+float64(u.Minute())/60+float64(u.Second())/3600)/24

	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + decimalDay + b - 1524.5
}

// ToCivil inverts FromCivil. The time of day is rounded to the nearest second
// so that values produced by FromCivil round-trip without drifting into the
// previous hour.
func ToCivil(jd float64) Civil {
	shifted := jd + 0.5
	z := math.Floor(shifted)
	secs := math.Round((shifted - z) * secondsPerDay)
	if secs >= secondsPerDay {
		z++
		secs -= secondsPerDay
	}

	zi := int64(z)
	a := zi
	if zi >= gregorianStart {
		alpha := int64((float64(zi) - 1867216.25) / 36524.25)
		a = zi + 1 + alpha - alpha/4
	}
	b := a + 1524
	c := int64((float64(b) - 122.1) / 365.25)
	d := int64(365.25 * float64(c))
	e := int64(float64(b-d) / 30.6001)

	day := b - d - int64(30.6001*float64(e))
	month := e - 13
	if e < 14 {
		month = e - 1
	}
	year := c - 4715
	if month > 2 {
		year = c - 4716
	}

	s := int64(secs)
	return Civil{
		Year:   int(year),
		Month:  int(month),
		Day:    int(day),
		Hour:   int(s / 3600),
		Minute: int(s % 3600 / 60),
		Second: int(s % 60),
	}
}

// ToTime returns the UTC instant of jd.
func ToTime(jd float64) time.Time {
	c := ToCivil(jd)
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

// DaysSinceJ2000 returns the signed day offset of jd from the J2000 epoch.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}
