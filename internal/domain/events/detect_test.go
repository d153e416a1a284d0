package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/julian"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ofType(events []CosmicEvent, t EventType) []CosmicEvent {
	var out []CosmicEvent
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestDetectMercuryStation(t *testing.T) {
	got := Detect(utcDay(2024, 1, 15), utcDay(2024, 2, 20), time.UTC)

	retro := ofType(got, Retrograde)
	require.Len(t, retro, 1)
	require.Equal(t, ephemeris.Mercury, *retro[0].Planet)
	require.Equal(t, utcDay(2024, 1, 21), retro[0].StartDate)
	require.NotNil(t, retro[0].EndDate)
	require.Equal(t, utcDay(2024, 2, 12), *retro[0].EndDate)
	require.Equal(t, "Mercury Retrograde", retro[0].Title)
	require.Equal(t, VeryChallenging, retro[0].Impact)

	direct := ofType(got, DirectStation)
	require.Len(t, direct, 2)
	require.Equal(t, ephemeris.Uranus, *direct[0].Planet)
	require.Equal(t, utcDay(2024, 1, 21), direct[0].StartDate)
	require.Equal(t, ephemeris.Mercury, *direct[1].Planet)
	require.Equal(t, utcDay(2024, 2, 12), direct[1].StartDate)
}

func TestDetectOrdersByDayThenKind(t *testing.T) {
	got := Detect(utcDay(2024, 1, 15), utcDay(2024, 2, 20), time.UTC)
	for i := 1; i < len(got); i++ {
		require.False(t, got[i].StartDate.Before(got[i-1].StartDate))
	}

	var jan21 []EventType
	for _, e := range got {
		if e.StartDate.Equal(utcDay(2024, 1, 21)) {
			jan21 = append(jan21, e.Type)
		}
	}
	require.GreaterOrEqual(t, len(jan21), 2)
	require.Equal(t, Retrograde, jan21[0])
	require.Equal(t, DirectStation, jan21[1])
}

func TestDetectBaselineSuppressesOngoingRetrograde(t *testing.T) {
	got := Detect(utcDay(2024, 1, 25), utcDay(2024, 2, 20), time.UTC)
	require.Empty(t, ofType(got, Retrograde))

	direct := ofType(got, DirectStation)
	require.Len(t, direct, 1)
	require.Nil(t, direct[0].EndDate)
}

func TestDetectMoonPhases(t *testing.T) {
	from := utcDay(2031, 3, 1)
	got := Detect(from, from.AddDate(0, 0, 59), time.UTC)

	full := ofType(got, FullMoon)
	newMoons := ofType(got, NewMoon)
	require.GreaterOrEqual(t, len(full), 1)
	require.GreaterOrEqual(t, len(newMoons), 1)
	require.Empty(t, ofType(got, Retrograde))

	for _, e := range full {
		require.Equal(t, ephemeris.FullMoon, ephemeris.MoonPhaseAt(julian.FromTime(e.StartDate)))
		require.NotEqual(t, ephemeris.FullMoon, ephemeris.MoonPhaseAt(julian.FromTime(e.StartDate.AddDate(0, 0, -1))))
		require.Equal(t, "Full Moon", e.Title)
		require.Nil(t, e.Planet)
		require.Equal(t, Positive, e.Impact)
	}
	for _, e := range newMoons {
		require.Equal(t, ephemeris.NewMoon, ephemeris.MoonPhaseAt(julian.FromTime(e.StartDate)))
	}
}

func TestDetectEmptyRange(t *testing.T) {
	require.Nil(t, Detect(utcDay(2024, 2, 1), utcDay(2024, 1, 1), time.UTC))
}

func TestDetectUsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	got := Detect(utcDay(2024, 1, 15), utcDay(2024, 2, 20), tokyo)
	for _, e := range got {
		require.Equal(t, tokyo, e.StartDate.Location())
		require.Zero(t, e.StartDate.Hour())
	}
}

func TestImpactScoreModifier(t *testing.T) {
	require.Equal(t, 1.5, VeryPositive.ScoreModifier())
	require.Equal(t, 0.75, Positive.ScoreModifier())
	require.Equal(t, 0.0, Neutral.ScoreModifier())
	require.Equal(t, -0.75, Challenging.ScoreModifier())
	require.Equal(t, -1.5, VeryChallenging.ScoreModifier())
}

func TestIsActive(t *testing.T) {
	end := utcDay(2024, 2, 12)
	ranged := CosmicEvent{StartDate: utcDay(2024, 1, 21), EndDate: &end}
	require.True(t, ranged.IsActive(utcDay(2024, 2, 1)))
	require.True(t, ranged.IsActive(end))
	require.False(t, ranged.IsActive(end.Add(time.Hour)))

	single := CosmicEvent{StartDate: utcDay(2024, 3, 25)}
	require.True(t, single.IsActive(utcDay(2024, 3, 25).Add(20*time.Hour)))
	require.False(t, single.IsActive(utcDay(2024, 3, 26)))
}
