// Package model defines the core athlete-event record and its enumerations.
package model

import "strings"

// Medal is the placement of one athlete in one event. The zero value means
// the athlete did not place.
type Medal uint8

const (
	NoMedal Medal = iota
	Gold
	Silver
	Bronze
)

// Medals lists the podium placements in display order.
var Medals = [...]Medal{Gold, Silver, Bronze}

func (m Medal) String() string {
	switch m {
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	default:
		return "No Medal"
	}
}

// Won reports whether the medal is a podium placement.
func (m Medal) Won() bool { return m != NoMedal }

// MarshalText encodes the medal by name.
func (m Medal) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMedal maps the raw file value to a Medal. Anything that is not a
// podium placement ("NA", empty, NaN) is NoMedal.
func ParseMedal(s string) Medal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return Gold
	case "silver":
		return Silver
	case "bronze":
		return Bronze
	default:
		return NoMedal
	}
}

// Gender of an athlete. GenderUnknown also serves as "any" in filters.
type Gender uint8

const (
	GenderUnknown Gender = iota
	Male
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return ""
	}
}

// MarshalText encodes the gender by name.
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// ParseGender accepts M, F, Male, Female in any case.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, true
	case "f", "female":
		return Female, true
	default:
		return GenderUnknown, false
	}
}

// AthleteRecord is one participation of one athlete in one event of one
// edition. Region is empty when the NOC has no mapping.
type AthleteRecord struct {
	Name     string
	Gender   Gender
	Age      int
	AgeKnown bool
	NOC      string
	Region   string
	Year     int
	Season   string
	Sport    string
	Event    string
	Medal    Medal
}

// HasRegion reports whether the NOC resolved to a region.
func (r AthleteRecord) HasRegion() bool { return r.Region != "" }

// Mode selects how a derived table sizes its marks.
type Mode uint8

const (
	Absolute Mode = iota
	Relative
)

func (m Mode) String() string {
	if m == Relative {
		return "Relative"
	}
	return "Absolute"
}

// ParseMode accepts "Absolute" or "Relative" in any case; empty is Absolute.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return Absolute, true
	case "relative":
		return Relative, true
	default:
		return Absolute, false
	}
}
