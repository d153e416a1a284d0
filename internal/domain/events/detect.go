package events

import (
	"fmt"
	"time"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/julian"
	"github.com/yanqian/cosmic-calendar/pkg/util"
)

const directDescription = "The retrograde period ends. Forward motion resumes!"

type skyState struct {
	retrograde map[ephemeris.Planet]bool
	phase      ephemeris.MoonPhase
}

func stateAt(day time.Time) skyState {
	positions := ephemeris.Positions(julian.FromTime(day))
	retro := make(map[ephemeris.Planet]bool, len(positions))
	for _, p := range ephemeris.RetrogradesFrom(positions) {
		retro[p] = true
	}
	return skyState{retrograde: retro, phase: ephemeris.MoonPhaseFrom(positions)}
}

// Detect walks each calendar day from from to to inclusive, in loc, and emits
// an event on the first day a planet turns retrograde or direct and on the
// first day of each full or new moon. The day before from is the baseline, so
// a condition already in effect on that day produces no event. Events are
// ordered by day, then retrogrades, direct stations and moon phases.
func Detect(from, to time.Time, loc *time.Location) []CosmicEvent {
	if loc == nil {
		loc = time.UTC
	}
	first := util.StartOfDay(from.In(loc))
	last := util.StartOfDay(to.In(loc))
	if last.Before(first) {
		return nil
	}

	var out []CosmicEvent
	open := make(map[ephemeris.Planet]int)
	prev := stateAt(first.AddDate(0, 0, -1))

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		cur := stateAt(day)

		for _, p := range ephemeris.AllPlanets {
			if cur.retrograde[p] && !prev.retrograde[p] {
				open[p] = len(out)
				out = append(out, retrogradeEvent(p, day))
			}
		}
		for _, p := range ephemeris.AllPlanets {
			if prev.retrograde[p] && !cur.retrograde[p] {
				if idx, ok := open[p]; ok {
					end := day
					out[idx].EndDate = &end
					delete(open, p)
				}
				out = append(out, directEvent(p, day))
			}
		}
		if cur.phase != prev.phase {
			switch cur.phase {
			case ephemeris.FullMoon:
				out = append(out, moonEvent(FullMoon, cur.phase, day, Positive))
			case ephemeris.NewMoon:
				out = append(out, moonEvent(NewMoon, cur.phase, day, Neutral))
			}
		}
		prev = cur
	}
	return out
}

func retrogradeEvent(p ephemeris.Planet, day time.Time) CosmicEvent {
	planet := p
	return CosmicEvent{
		Type:        Retrograde,
		Planet:      &planet,
		StartDate:   day,
		Title:       fmt.Sprintf("%s Retrograde", p),
		Description: p.RetrogradeImpact(),
		Impact:      retrogradeImpact(p),
	}
}

func directEvent(p ephemeris.Planet, day time.Time) CosmicEvent {
	planet := p
	return CosmicEvent{
		Type:        DirectStation,
		Planet:      &planet,
		StartDate:   day,
		Title:       fmt.Sprintf("%s Direct", p),
		Description: directDescription,
		Impact:      Positive,
	}
}

func moonEvent(t EventType, phase ephemeris.MoonPhase, day time.Time, impact Impact) CosmicEvent {
	return CosmicEvent{
		Type:        t,
		StartDate:   day,
		Title:       phase.String(),
		Description: phase.Description(),
		Impact:      impact,
	}
}

func retrogradeImpact(p ephemeris.Planet) Impact {
	switch p {
	case ephemeris.Mercury:
		return VeryChallenging
	case ephemeris.Venus, ephemeris.Mars:
		return Challenging
	default:
		return Neutral
	}
}
