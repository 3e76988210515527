// Package filter turns the raw selections of the dashboard into a typed
// Filter. Nothing reaches an aggregation until Parse has accepted it.
package filter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/agegroup"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
	"github.com/alexdes2202/inf8808-team7-deploy/pkg/metrics"
)

// Accepted ranges.
const (
	MinYear = 1896
	MaxYear = 2100
	MaxAge  = 99
)

// Field names, as used in query strings and error reports.
const (
	FieldSport       = "sport"
	FieldCountry     = "country"
	FieldSex         = "sex"
	FieldAge         = "age"
	FieldMode        = "mode"
	FieldYear        = "year"
	FieldEvent       = "event"
	FieldShowAverage = "show_avg"
)

// Raw holds the selections exactly as the user sent them.
type Raw struct {
	Sport       string
	Country     string
	Sex         string
	Age         string
	Mode        string
	Year        string
	Event       string
	ShowAverage string
}

// Filter is a validated selection. Zero values mean "not selected".
type Filter struct {
	Sport       string
	Country     string // NOC
	CountryName string
	Sex         model.Gender
	Age         int
	AgeSet      bool
	Mode        model.Mode
	Year        int // 0 means every edition
	Event       string
	ShowAverage bool
}

// HasSport reports whether a discipline was picked.
func (f Filter) HasSport() bool { return f.Sport != "" }

// HasCountry reports whether a country was picked.
func (f Filter) HasCountry() bool { return f.Country != "" }

// AgeGroup returns the group of the user's age, if one was given and it
// falls in a bin.
func (f Filter) AgeGroup() (agegroup.Group, bool) {
	if !f.AgeSet {
		return 0, false
	}
	return agegroup.Bin(f.Age)
}

// Resolver maps between countries and NOC codes.
type Resolver interface {
	NOCForRegion(region string) (string, bool)
	RegionForNOC(noc string) (string, bool)
	HasNOC(noc string) bool
}

// Parse validates raw against the sport catalog and res. The first
// rejected field is returned as a *FieldError wrapping ErrInvalidInput.
func Parse(raw Raw, res Resolver) (f Filter, err error) {
	defer func() {
		var fe *FieldError
		if errors.As(err, &fe) {
			metrics.RecordInvalidInput(fe.Field)
			f = Filter{}
		}
	}()

	if f.Sport, err = parseSport(raw.Sport); err != nil {
		return f, err
	}
	if f.Country, f.CountryName, err = parseCountry(raw.Country, res); err != nil {
		return f, err
	}
	if f.Sex, err = parseSex(raw.Sex); err != nil {
		return f, err
	}
	if f.Age, f.AgeSet, err = parseAge(raw.Age); err != nil {
		return f, err
	}
	if f.Mode, err = parseMode(raw.Mode); err != nil {
		return f, err
	}
	if f.Year, err = parseYear(raw.Year); err != nil {
		return f, err
	}
	f.Event = parseEvent(raw.Event)
	if f.ShowAverage, err = parseBool(FieldShowAverage, raw.ShowAverage); err != nil {
		return f, err
	}
	return f, nil
}

func none(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "None")
}

func parseSport(s string) (string, error) {
	if none(s) {
		return "", nil
	}
	sport, ok := CanonicalSport(s)
	if !ok {
		return "", &FieldError{Field: FieldSport, Value: s, Reason: "not a known discipline"}
	}
	return sport, nil
}

func parseCountry(s string, res Resolver) (noc, name string, err error) {
	if none(s) {
		return "", "", nil
	}
	s = strings.TrimSpace(s)
	if res == nil {
		return "", "", &FieldError{Field: FieldCountry, Value: s, Reason: "no region table loaded"}
	}
	if noc, ok := res.NOCForRegion(s); ok {
		return noc, s, nil
	}
	code := strings.ToUpper(s)
	if res.HasNOC(code) {
		name, _ := res.RegionForNOC(code)
		return code, name, nil
	}
	return "", "", &FieldError{Field: FieldCountry, Value: s, Reason: "not a known country or NOC"}
}

func parseSex(s string) (model.Gender, error) {
	if strings.TrimSpace(s) == "" {
		return model.GenderUnknown, nil
	}
	g, ok := model.ParseGender(s)
	if !ok {
		return model.GenderUnknown, &FieldError{Field: FieldSex, Value: s, Reason: "expected M or F"}
	}
	return g, nil
}

func parseAge(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, &FieldError{Field: FieldAge, Value: s, Reason: "not an integer"}
	}
	if n < 0 || n > MaxAge {
		return 0, false, &FieldError{Field: FieldAge, Value: s, Reason: "out of range 0-" + strconv.Itoa(MaxAge)}
	}
	return n, true, nil
}

func parseMode(s string) (model.Mode, error) {
	m, ok := model.ParseMode(s)
	if !ok {
		return model.Absolute, &FieldError{Field: FieldMode, Value: s, Reason: "expected Absolute or Relative"}
	}
	return m, nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") || strings.EqualFold(s, "All Editions") {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldError{Field: FieldYear, Value: s, Reason: "not an integer"}
	}
	if n < MinYear || n > MaxYear {
		return 0, &FieldError{Field: FieldYear, Value: s, Reason: "out of range"}
	}
	return n, nil
}

func parseEvent(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "All") {
		return ""
	}
	return s
}

func parseBool(field, s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &FieldError{Field: field, Value: s, Reason: "expected true or false"}
	}
	return b, nil
}
