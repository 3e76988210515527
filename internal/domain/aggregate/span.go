package aggregate

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// AgeSpan is the youngest and oldest known age seen in one sport, with the
// mean number of distinct editions per athlete of that sport.
type AgeSpan struct {
	Sport       string  `json:"sport"`
	MinAge      int     `json:"min_age"`
	MaxAge      int     `json:"max_age"`
	AvgEditions float64 `json:"avg_editions"`
	Selected    bool    `json:"selected"`
}

// AgeSpanBySport returns one row per sport with at least one known age,
// ordered by sport name. The row for selected is flagged.
func AgeSpanBySport(records []model.AthleteRecord, selected string) []AgeSpan {
	ages := make(map[string][]float64)
	editions := make(map[string]map[string]map[int]struct{})
	for _, r := range records {
		if r.AgeKnown {
			ages[r.Sport] = append(ages[r.Sport], float64(r.Age))
		}
		athletes, ok := editions[r.Sport]
		if !ok {
			athletes = make(map[string]map[int]struct{})
			editions[r.Sport] = athletes
		}
		years, ok := athletes[r.Name]
		if !ok {
			years = make(map[int]struct{})
			athletes[r.Name] = years
		}
		years[r.Year] = struct{}{}
	}

	out := make([]AgeSpan, 0, len(ages))
	for sport, xs := range ages {
		lo, hi := stats.Bounds(xs)
		perAthlete := make([]float64, 0, len(editions[sport]))
		for _, years := range editions[sport] {
			perAthlete = append(perAthlete, float64(len(years)))
		}
		out = append(out, AgeSpan{
			Sport:       sport,
			MinAge:      int(lo),
			MaxAge:      int(hi),
			AvgEditions: Round2(stats.Mean(perAthlete)),
			Selected:    sport == selected,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sport < out[j].Sport })
	return out
}
