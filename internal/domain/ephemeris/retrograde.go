package ephemeris

import "math"

// Window is an inclusive Julian Day span.
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Contains reports whether jd lies in the window, inclusive on both ends.
func (w Window) Contains(jd float64) bool {
	return jd >= w.Start && jd <= w.End
}

// Static retrograde stations, 2023-2025. Outside these windows no planet is
// ever reported retrograde; see RetrogradeCoverage. Sun and Moon must never
// appear here.
var retrogradeWindows = map[Planet][]Window{
	Mercury: {
		{2460330.0, 2460352.0},
		{2460430.0, 2460453.0},
		{2460530.0, 2460553.0},
		{2460633.0, 2460656.0},
	},
	Venus: {
		{2460500.0, 2460542.0},
	},
	Mars: {
		{2460620.0, 2460695.0},
	},
	Jupiter: {
		{2460200.0, 2460320.0},
		{2460565.0, 2460685.0},
	},
	Saturn: {
		{2460150.0, 2460290.0},
		{2460515.0, 2460655.0},
	},
	Uranus: {
		{2460180.0, 2460330.0},
		{2460545.0, 2460695.0},
	},
	Neptune: {
		{2460130.0, 2460290.0},
		{2460495.0, 2460655.0},
	},
	Pluto: {
		{2460090.0, 2460270.0},
		{2460455.0, 2460635.0},
	},
}

var coverage = func() Window {
	w := Window{Start: math.Inf(1), End: math.Inf(-1)}
	for _, windows := range retrogradeWindows {
		for _, rw := range windows {
			w.Start = math.Min(w.Start, rw.Start)
			w.End = math.Max(w.End, rw.End)
		}
	}
	return w
}()

// IsRetrograde reports whether p is inside one of its static retrograde
// windows at jd.
func IsRetrograde(p Planet, jd float64) bool {
	if !p.CanBeRetrograde() {
		return false
	}
	for _, w := range retrogradeWindows[p] {
		if w.Contains(jd) {
			return true
		}
	}
	return false
}

// RetrogradeWindows returns a copy of the static windows for p.
func RetrogradeWindows(p Planet) []Window {
	src := retrogradeWindows[p]
	out := make([]Window, len(src))
	copy(out, src)
	return out
}

// RetrogradeCoverage is the span of the retrograde table. Dates outside it
// carry no retrograde information.
func RetrogradeCoverage() Window {
	return coverage
}
