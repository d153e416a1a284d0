package scoring

import (
	"fmt"
	"math"
)

// ScoreCategory buckets a score for display.
type ScoreCategory int

const (
	Excellent ScoreCategory = iota
	Good
	Neutral
	Challenging
	Difficult
)

var categoryNames = [...]string{
	Excellent:   "Excellent",
	Good:        "Good",
	Neutral:     "Neutral",
	Challenging: "Challenging",
	Difficult:   "Difficult",
}

var categoryDescriptions = [...]string{
	Excellent:   "The cosmos are strongly aligned in your favor",
	Good:        "Favorable energies support your endeavors",
	Neutral:     "A balanced day with mixed influences",
	Challenging: "Navigate with extra awareness today",
	Difficult:   "Practice patience and self-care",
}

// CategoryFrom maps a score onto [8.5,10] Excellent, [7,8.5) Good, [5,7)
// Neutral, [3,5) Challenging and anything else, including NaN, Difficult.
func CategoryFrom(score float64) ScoreCategory {
	switch {
	case math.IsNaN(score):
		return Difficult
	case score >= 8.5 && score <= 10:
		return Excellent
	case score >= 7 && score < 8.5:
		return Good
	case score >= 5 && score < 7:
		return Neutral
	case score >= 3 && score < 5:
		return Challenging
	default:
		return Difficult
	}
}

func (c ScoreCategory) valid() bool { return c >= Excellent && c <= Difficult }

func (c ScoreCategory) String() string {
	if !c.valid() {
		return fmt.Sprintf("ScoreCategory(%d)", int(c))
	}
	return categoryNames[c]
}

func (c ScoreCategory) Description() string {
	if !c.valid() {
		return ""
	}
	return categoryDescriptions[c]
}

func (c ScoreCategory) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("invalid score category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *ScoreCategory) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = ScoreCategory(i)
			return nil
		}
	}
	return fmt.Errorf("unknown score category %q", string(text))
}
