package ranking

import (
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/aggregate"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// Odds is the share of athletes at one participation index who won one
// medal type there.
type Odds struct {
	Participation aggregate.Participation `json:"participation"`
	Medal         model.Medal             `json:"medal"`
	Athletes      int                     `json:"athletes"`
	Winners       int                     `json:"winners"`
	Percentage    float64                 `json:"percentage"`
}

// ParticipationOdds counts distinct athletes rather than rows: several rows
// of one athlete at one index count once, both in the denominator and for
// each medal type won. Output holds Gold, Silver, Bronze for every index
// present, ordered by index.
func ParticipationOdds(records []model.AthleteRecord) []Odds {
	type cell struct {
		p     aggregate.Participation
		medal model.Medal
	}
	athletes := make(map[aggregate.Participation]map[string]struct{})
	winners := make(map[cell]map[string]struct{})
	add := func(m map[string]struct{}, name string) map[string]struct{} {
		if m == nil {
			m = make(map[string]struct{})
		}
		m[name] = struct{}{}
		return m
	}
	for _, r := range aggregate.AssignParticipation(records) {
		athletes[r.Participation] = add(athletes[r.Participation], r.Name)
		if r.Medal.Won() {
			c := cell{r.Participation, r.Medal}
			winners[c] = add(winners[c], r.Name)
		}
	}

	out := make([]Odds, 0, len(athletes)*len(model.Medals))
	for _, p := range aggregate.Participations {
		n := len(athletes[p])
		if n == 0 {
			continue
		}
		for _, m := range model.Medals {
			w := len(winners[cell{p, m}])
			out = append(out, Odds{
				Participation: p,
				Medal:         m,
				Athletes:      n,
				Winners:       w,
				Percentage:    *aggregate.Percent(w, n),
			})
		}
	}
	return out
}
