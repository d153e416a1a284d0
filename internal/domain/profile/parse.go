package profile

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	apperrors "github.com/yanqian/cosmic-calendar/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ErrUnknownTimezone is joined into the result of Parse when the requested
// timezone could not be loaded and UTC was substituted.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Parse validates a Request into a BirthProfile. An unknown timezone is not
// fatal: UTC is used instead and ErrUnknownTimezone is returned alongside a
// usable profile.
func Parse(req Request) (ephemeris.BirthProfile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ephemeris.BirthProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "name cannot be empty", nil)
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(req.BirthDate))
	if err != nil {
		return ephemeris.BirthProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birthDate must be formatted as YYYY-MM-DD", err)
	}
	if !finite(req.Latitude) || req.Latitude < -90 || req.Latitude > 90 {
		return ephemeris.BirthProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "latitude must be between -90 and 90", nil)
	}
	if !finite(req.Longitude) || req.Longitude < -180 || req.Longitude > 180 {
		return ephemeris.BirthProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "longitude must be between -180 and 180", nil)
	}

	out := ephemeris.BirthProfile{
		Name:      name,
		BirthDate: date,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  "UTC",
	}
	if raw := strings.TrimSpace(req.BirthTime); raw != "" {
		clock, err := time.Parse(timeLayout, raw)
		if err != nil {
			return ephemeris.BirthProfile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birthTime must be formatted as HH:MM", err)
		}
		out.BirthTime = &ephemeris.TimeOfDay{Hour: clock.Hour(), Minute: clock.Minute()}
	}

	tz := strings.TrimSpace(req.Timezone)
	if tz == "" {
		return out, nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return out, errors.Join(ErrUnknownTimezone, err)
	}
	out.Timezone = tz
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
