package aggregate

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/agegroup"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// YearAgeCount is the number of rows of one age group in one edition.
type YearAgeCount struct {
	Year       int            `json:"year"`
	AgeGroup   agegroup.Group `json:"age_group"`
	Midpoint   int            `json:"age_midpoint"`
	Count      int            `json:"count"`
	Percentage *float64       `json:"percentage"`
}

// ByYearAndAgeGroup counts rows per (Year, AgeGroup), ordered by year then
// group. Rows without a binnable age are skipped.
func ByYearAndAgeGroup(records []model.AthleteRecord) []YearAgeCount {
	type key struct {
		year  int
		group agegroup.Group
	}
	counts := make(map[key]int)
	for _, b := range agegroup.Assign(records) {
		counts[key{b.Year, b.Group}]++
	}

	out := make([]YearAgeCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, YearAgeCount{Year: k.year, AgeGroup: k.group, Midpoint: k.group.Midpoint(), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].AgeGroup < out[j].AgeGroup
	})
	return out
}

// NormalizeByYear sizes a year by age-group table, partitioned by Year.
func NormalizeByYear(rows []YearAgeCount, mode model.Mode) string {
	return Normalize(rows, mode,
		func(r YearAgeCount) int { return r.Year },
		func(r YearAgeCount) int { return r.Count },
		func(r *YearAgeCount, p *float64) { r.Percentage = p })
}

// MedalAgeCount is the number of medals of one type won by one age group.
type MedalAgeCount struct {
	Medal    model.Medal    `json:"medal"`
	AgeGroup agegroup.Group `json:"age_group"`
	Midpoint int            `json:"age_midpoint"`
	Count    int            `json:"count"`
}

// ByMedalAndAgeGroup counts medalled rows with a binnable age per
// (Medal, AgeGroup), ordered Gold, Silver, Bronze then by group.
func ByMedalAndAgeGroup(records []model.AthleteRecord) []MedalAgeCount {
	type key struct {
		medal model.Medal
		group agegroup.Group
	}
	counts := make(map[key]int)
	for _, b := range agegroup.Assign(records) {
		if !b.Medal.Won() {
			continue
		}
		counts[key{b.Medal, b.Group}]++
	}

	out := make([]MedalAgeCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, MedalAgeCount{Medal: k.medal, AgeGroup: k.group, Midpoint: k.group.Midpoint(), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Medal != out[j].Medal {
			return out[i].Medal < out[j].Medal
		}
		return out[i].AgeGroup < out[j].AgeGroup
	})
	return out
}

// YearAverageAge is the mean age of binnable rows in one edition.
type YearAverageAge struct {
	Year       int     `json:"year"`
	AverageAge float64 `json:"average_age"`
}

// AverageAgeByYear returns the mean age per edition over rows with a
// binnable age, ordered by year and rounded to 2 decimals.
func AverageAgeByYear(records []model.AthleteRecord) []YearAverageAge {
	ages := make(map[int][]float64)
	for _, b := range agegroup.Assign(records) {
		ages[b.Year] = append(ages[b.Year], float64(b.Age))
	}

	out := make([]YearAverageAge, 0, len(ages))
	for year, xs := range ages {
		out = append(out, YearAverageAge{Year: year, AverageAge: Round2(stats.Mean(xs))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
