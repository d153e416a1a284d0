package profile

import (
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
)

// Profile is a stored birth profile.
type Profile struct {
	ID        string                 `json:"id"`
	Birth     ephemeris.BirthProfile `json:"birth"`
	CreatedAt time.Time              `json:"createdAt"`
}

// Chart derives the profile's birth chart. CreatedAt stamps the chart so
// repeated calls return identical values.
func (p Profile) Chart() ephemeris.BirthChart {
	return ephemeris.NewBirthChart(p.Birth, p.CreatedAt)
}

// Request is the onboarding payload. BirthDate is YYYY-MM-DD and the optional
// BirthTime is HH:MM in the profile timezone.
type Request struct {
	Name      string  `json:"name"`
	BirthDate string  `json:"birthDate"`
	BirthTime string  `json:"birthTime,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}
