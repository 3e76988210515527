package aggregate

import (
	"sort"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// AthleteMedalCount is the number of medals of one type won by one athlete.
type AthleteMedalCount struct {
	Name  string      `json:"name"`
	Medal model.Medal `json:"medal"`
	Count int         `json:"count"`
}

// MedalsByAthlete counts podium rows per (Name, Medal), ordered by name
// then Gold, Silver, Bronze.
func MedalsByAthlete(records []model.AthleteRecord) []AthleteMedalCount {
	type key struct {
		name  string
		medal model.Medal
	}
	counts := make(map[key]int)
	for _, r := range records {
		if r.Medal.Won() {
			counts[key{r.Name, r.Medal}]++
		}
	}

	out := make([]AthleteMedalCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, AthleteMedalCount{Name: k.name, Medal: k.medal, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Medal < out[j].Medal
	})
	return out
}
