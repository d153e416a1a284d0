package ephemeris

import (
	"fmt"
	"math"
)

// ZodiacSign is one of twelve 30° ecliptic sectors starting at Aries.
type ZodiacSign int

const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// AllSigns lists the signs in zodiac order.
var AllSigns = []ZodiacSign{Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces}

// Element is the classical element of a sign.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Modality is the quality of a sign.
type Modality int

const (
	Cardinal Modality = iota
	Fixed
	Mutable
)

type signInfo struct {
	name     string
	symbol   string
	element  Element
	modality Modality
	ruler    Planet
}

var signTable = [...]signInfo{
	Aries:       {"Aries", "♈", Fire, Cardinal, Mars},
	Taurus:      {"Taurus", "♉", Earth, Fixed, Venus},
	Gemini:      {"Gemini", "♊", Air, Mutable, Mercury},
	Cancer:      {"Cancer", "♋", Water, Cardinal, Moon},
	Leo:         {"Leo", "♌", Fire, Fixed, Sun},
	Virgo:       {"Virgo", "♍", Earth, Mutable, Mercury},
	Libra:       {"Libra", "♎", Air, Cardinal, Venus},
	Scorpio:     {"Scorpio", "♏", Water, Fixed, Pluto},
	Sagittarius: {"Sagittarius", "♐", Fire, Mutable, Jupiter},
	Capricorn:   {"Capricorn", "♑", Earth, Cardinal, Saturn},
	Aquarius:    {"Aquarius", "♒", Air, Fixed, Uranus},
	Pisces:      {"Pisces", "♓", Water, Mutable, Neptune},
}

// SignFromDegree maps an ecliptic longitude to its sign. Any finite degree is
// accepted; 360 wraps to Aries.
func SignFromDegree(degree float64) ZodiacSign {
	idx := int(Normalize360(degree) / 30)
	if idx > int(Pisces) {
		idx = int(Pisces)
	}
	return ZodiacSign(idx)
}

// Normalize360 wraps an angle into [0, 360). Non-finite input yields 0.
func Normalize360(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	out := math.Mod(deg, 360)
	if out < 0 {
		out += 360
	}
	if out >= 360 {
		out = 0
	}
	return out
}

func (s ZodiacSign) valid() bool { return s >= Aries && s <= Pisces }

func (s ZodiacSign) String() string {
	if !s.valid() {
		return fmt.Sprintf("ZodiacSign(%d)", int(s))
	}
	return signTable[s].name
}

// Symbol returns the sign glyph.
func (s ZodiacSign) Symbol() string {
	if !s.valid() {
		return ""
	}
	return signTable[s].symbol
}

func (s ZodiacSign) Element() Element {
	if !s.valid() {
		return Fire
	}
	return signTable[s].element
}

func (s ZodiacSign) Modality() Modality {
	if !s.valid() {
		return Cardinal
	}
	return signTable[s].modality
}

// Ruler returns the traditional ruling planet.
func (s ZodiacSign) Ruler() Planet {
	if !s.valid() {
		return Mars
	}
	return signTable[s].ruler
}

func (s ZodiacSign) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid zodiac sign %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *ZodiacSign) UnmarshalText(text []byte) error {
	for _, candidate := range AllSigns {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown zodiac sign %q", string(text))
}

var elementNames = [...]string{Fire: "Fire", Earth: "Earth", Air: "Air", Water: "Water"}

var elementDescriptions = [...]string{
	Fire:  "Passionate, energetic, and action-oriented",
	Earth: "Practical, grounded, and reliable",
	Air:   "Intellectual, communicative, and social",
	Water: "Emotional, intuitive, and nurturing",
}

func (e Element) String() string {
	if e < Fire || e > Water {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

func (e Element) Description() string {
	if e < Fire || e > Water {
		return ""
	}
	return elementDescriptions[e]
}

func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Element) UnmarshalText(text []byte) error {
	for i, name := range elementNames {
		if name == string(text) {
			*e = Element(i)
			return nil
		}
	}
	return fmt.Errorf("unknown element %q", string(text))
}

var modalityNames = [...]string{Cardinal: "Cardinal", Fixed: "Fixed", Mutable: "Mutable"}

var modalityDescriptions = [...]string{
	Cardinal: "Initiators and leaders",
	Fixed:    "Stabilizers and maintainers",
	Mutable:  "Adapters and communicators",
}

func (m Modality) String() string {
	if m < Cardinal || m > Mutable {
		return fmt.Sprintf("Modality(%d)", int(m))
	}
	return modalityNames[m]
}

func (m Modality) Description() string {
	if m < Cardinal || m > Mutable {
		return ""
	}
	return modalityDescriptions[m]
}

func (m Modality) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Modality) UnmarshalText(text []byte) error {
	for i, name := range modalityNames {
		if name == string(text) {
			*m = Modality(i)
			return nil
		}
	}
	return fmt.Errorf("unknown modality %q", string(text))
}
