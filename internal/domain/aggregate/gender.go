package aggregate

import (
	"regexp"
	"sort"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// GenderYearCount is the number of rows of one gender in one edition with
// its share of that edition.
type GenderYearCount struct {
	Year       int          `json:"year"`
	Gender     model.Gender `json:"gender"`
	Count      int          `json:"count"`
	Percentage *float64     `json:"percentage"`
}

// GenderByYear counts rows per (Year, Gender), ordered by year then Male
// before Female, with percentages relative to the year total. Rows of
// unknown gender are skipped.
func GenderByYear(records []model.AthleteRecord) []GenderYearCount {
	type key struct {
		year   int
		gender model.Gender
	}
	counts := make(map[key]int)
	for _, r := range records {
		if r.Gender == model.GenderUnknown {
			continue
		}
		counts[key{r.Year, r.Gender}]++
	}

	out := make([]GenderYearCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GenderYearCount{Year: k.year, Gender: k.gender, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Gender < out[j].Gender
	})
	Normalize(out, model.Relative,
		func(r GenderYearCount) int { return r.Year },
		func(r GenderYearCount) int { return r.Count },
		func(r *GenderYearCount, p *float64) { r.Percentage = p })
	return out
}

// GenderRatio is the pivoted gender split of one edition.
type GenderRatio struct {
	Year          int     `json:"year"`
	Female        int     `json:"female"`
	Male          int     `json:"male"`
	Total         int     `json:"total"`
	FemalePercent float64 `json:"female_percent"`
	MalePercent   float64 `json:"male_percent"`
}

// GenderRatioByYear pivots GenderByYear into one row per edition.
func GenderRatioByYear(records []model.AthleteRecord) []GenderRatio {
	long := GenderByYear(records)
	out := make([]GenderRatio, 0, len(long))
	for _, row := range long {
		if len(out) == 0 || out[len(out)-1].Year != row.Year {
			out = append(out, GenderRatio{Year: row.Year})
		}
		cur := &out[len(out)-1]
		switch row.Gender {
		case model.Female:
			cur.Female = row.Count
		case model.Male:
			cur.Male = row.Count
		}
	}
	for i := range out {
		r := &out[i]
		r.Total = r.Female + r.Male
		if p := Percent(r.Female, r.Total); p != nil {
			r.FemalePercent = *p
		}
		if p := Percent(r.Male, r.Total); p != nil {
			r.MalePercent = *p
		}
	}
	return out
}

var (
	genderWords = regexp.MustCompile(`Men's |Women's |Mixed `)
	eventGender = regexp.MustCompile(`Men's|Women's`)
)

// EventGenderCount is the number of men's and women's rows of one event
// once the gender qualifier is removed from its name.
type EventGenderCount struct {
	Event string `json:"event"`
	Men   int    `json:"men"`
	Women int    `json:"women"`
}

// EventsByGender groups rows by event name stripped of "Men's ", "Women's "
// and "Mixed ", counting men's and women's entries. Rows whose event names
// no gender are not attributed; events left with no attributed rows are
// omitted. Output is ordered by event name.
func EventsByGender(records []model.AthleteRecord) []EventGenderCount {
	byEvent := make(map[string]*EventGenderCount)
	for _, r := range records {
		var men, women int
		switch eventGender.FindString(r.Event) {
		case "Men's":
			men = 1
		case "Women's":
			women = 1
		default:
			continue
		}
		name := genderWords.ReplaceAllLiteralString(r.Event, "")
		row, ok := byEvent[name]
		if !ok {
			row = &EventGenderCount{Event: name}
			byEvent[name] = row
		}
		row.Men += men
		row.Women += women
	}

	out := make([]EventGenderCount, 0, len(byEvent))
	for _, row := range byEvent {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Event < out[j].Event })
	return out
}
