package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
)

func testChart() *ephemeris.BirthChart {
	chart := ephemeris.NewBirthChart(ephemeris.BirthProfile{
		Name:      "Test",
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		BirthTime: &ephemeris.TimeOfDay{Hour: 14, Minute: 30},
		Latitude:  40.71,
		Longitude: -74.0,
		Timezone:  "America/New_York",
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return &chart
}

func TestOverallScoreFullMoonNoRetrogrades(t *testing.T) {
	require.Equal(t, 6.0, overallScore(ephemeris.FullMoon, nil, nil))

	calc := NewCalculator(2)
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	found := false
	for d := 0; d < 60 && !found; d++ {
		day := calc.Day(start.AddDate(0, 0, d), nil)
		if day.MoonPhase == ephemeris.FullMoon && len(day.ActiveRetrogrades) == 0 {
			require.Equal(t, 6.0, day.OverallScore)
			require.Empty(t, day.SignificantAspects)
			found = true
		}
	}
	require.True(t, found, "expected a full moon within 60 days")
}

func TestOverallScorePenaltiesAndAspects(t *testing.T) {
	tests := []struct {
		name        string
		phase       ephemeris.MoonPhase
		retrogrades []ephemeris.Planet
		aspects     []ephemeris.PlanetaryAspect
		want        float64
	}{
		{"mercury", ephemeris.FirstQuarter, []ephemeris.Planet{ephemeris.Mercury}, nil, 3.5},
		{"outer planets", ephemeris.FirstQuarter, []ephemeris.Planet{ephemeris.Jupiter, ephemeris.Saturn, ephemeris.Uranus, ephemeris.Pluto}, nil, 4.3},
		{"applying trine", ephemeris.FirstQuarter, nil, []ephemeris.PlanetaryAspect{{Aspect: ephemeris.Trine, IsApplying: true}}, 5.54},
		{"separating square", ephemeris.FirstQuarter, nil, []ephemeris.PlanetaryAspect{{Aspect: ephemeris.Square}}, 4.76},
		{"floor", ephemeris.WaningCrescent, []ephemeris.Planet{ephemeris.Mercury, ephemeris.Venus, ephemeris.Mars}, []ephemeris.PlanetaryAspect{
			{Aspect: ephemeris.Opposition, IsApplying: true},
			{Aspect: ephemeris.Opposition, IsApplying: true},
			{Aspect: ephemeris.Opposition, IsApplying: true},
			{Aspect: ephemeris.Opposition, IsApplying: true},
		}, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, overallScore(tc.phase, tc.retrogrades, tc.aspects), 1e-9)
		})
	}
}

func TestDomainScoreRules(t *testing.T) {
	retro := []ephemeris.Planet{ephemeris.Mercury, ephemeris.Venus, ephemeris.Mars}

	// Relationships: Mercury -0.5, Venus -1.5; Mars is not relevant.
	require.InDelta(t, 3.0+1.0, domainScore(ephemeris.Relationships, ephemeris.FullMoon, retro, nil), 1e-9)
	// Career: Mercury -1.5, Mars -0.5.
	require.InDelta(t, 3.0+0.5, domainScore(ephemeris.Career, ephemeris.FirstQuarter, retro, nil), 1e-9)
	// Health: Mars -1.0.
	require.InDelta(t, 4.0+0.25, domainScore(ephemeris.Health, ephemeris.WaningCrescent, retro, nil), 1e-9)

	aspects := []ephemeris.PlanetaryAspect{
		{Planet1: ephemeris.Saturn, Planet2: ephemeris.Saturn, Aspect: ephemeris.Trine},
	}
	// Saturn only touches career.
	require.InDelta(t, 5.75, domainScore(ephemeris.Career, ephemeris.LastQuarter, nil, aspects), 1e-9)
	require.InDelta(t, 5.0, domainScore(ephemeris.Relationships, ephemeris.LastQuarter, nil, aspects), 1e-9)
}

func TestDayMercuryRetrograde(t *testing.T) {
	calc := NewCalculator(1)
	day := calc.Day(time.Date(2024, 1, 31, 15, 45, 0, 0, time.UTC), nil)

	require.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), day.Date)
	require.Equal(t, []ephemeris.Planet{ephemeris.Mercury}, day.ActiveRetrogrades)
	require.True(t, day.RetrogradeDataCovered)
	require.InDelta(t, clamp(3.5+domainPhaseBonus[ephemeris.Career][day.MoonPhase]), day.CareerScore, 1e-9)
	require.InDelta(t, clamp(4.5+domainPhaseBonus[ephemeris.Relationships][day.MoonPhase]), day.RelationshipScore, 1e-9)
	require.Equal(t, "Double-Check Communications", day.Recommendations[0].Title)
	require.Equal(t, CategoryFrom(day.OverallScore), day.Category)
	require.Equal(t, day.Category.Description(), day.CategoryDescription)
}

func TestDayOutsideRetrogradeTable(t *testing.T) {
	day := NewCalculator(1).Day(time.Date(1950, 5, 1, 0, 0, 0, 0, time.UTC), nil)
	require.False(t, day.RetrogradeDataCovered)
	require.Empty(t, day.ActiveRetrogrades)
}

func TestDayUsesCallerLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	day := NewCalculator(1).Day(time.Date(2024, 5, 10, 23, 0, 0, 0, tokyo), nil)
	require.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, tokyo), day.Date)
	require.Equal(t, "2024-05-10", day.Key())
}

func TestScoreBounds(t *testing.T) {
	calc := NewCalculator(4)
	chart := testChart()
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() <= 2100; d = d.AddDate(0, 0, 173) {
		for _, c := range []*ephemeris.BirthChart{nil, chart} {
			day := calc.Day(d, c)
			for _, score := range []float64{day.OverallScore, day.RelationshipScore, day.CareerScore, day.HealthScore} {
				require.GreaterOrEqual(t, score, minScore, d.String())
				require.LessOrEqual(t, score, maxScore, d.String())
			}
			require.LessOrEqual(t, len(day.Recommendations), 6)
				require.Equal(t, CategoryFrom(day.OverallScore), day.Category, d.String())
		}
	}
}

func TestDeterminism(t *testing.T) {
	calc := NewCalculator(4)
	chart := testChart()
	date := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, calc.Day(date, chart), calc.Day(date, chart))
	require.Equal(t, calc.Month(2024, time.August, time.UTC, chart), calc.Month(2024, time.August, time.UTC, chart))
}

func TestMonthDayCounts(t *testing.T) {
	calc := NewCalculator(3)
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2026, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tc := range tests {
		got := calc.Month(tc.year, tc.month, time.UTC, nil)
		require.Len(t, got, tc.want, "%d-%02d", tc.year, tc.month)
		require.Equal(t, tc.want, DaysIn(tc.year, tc.month))
		first := time.Date(tc.year, tc.month, 1, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		require.Contains(t, got, first)
		require.Equal(t, first, got[first].Key())
	}
	require.Empty(t, calc.Month(2025, 13, time.UTC, nil))
}

func TestMonthMatchesDay(t *testing.T) {
	calc := NewCalculator(8)
	chart := testChart()
	month := calc.Month(2024, time.March, nil, chart)
	day := calc.Day(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), chart)
	require.Equal(t, day, month["2024-03-20"])
}

func TestCategoryFrom(t *testing.T) {
	tests := []struct {
		score float64
		want  ScoreCategory
	}{
		{10, Excellent},
		{8.5, Excellent},
		{8.49, Good},
		{7, Good},
		{6.99, Neutral},
		{5, Neutral},
		{4.99, Challenging},
		{3.0, Challenging},
		{2.99, Difficult},
		{1, Difficult},
		{10.01, Difficult},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, CategoryFrom(tc.score), "score %v", tc.score)
	}
	require.Equal(t, "Favorable energies support your endeavors", Good.Description())
}
