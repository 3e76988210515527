package aggregate

import (
	"sort"
	"strconv"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// Participation is the 1-based chronological index of an athlete's Olympic
// appearance. Indices past the fourth are folded into FourthPlus.
type Participation uint8

const (
	FirstParticipation Participation = iota + 1
	SecondParticipation
	ThirdParticipation
	FourthPlus
)

// Participations lists every index in order.
var Participations = [...]Participation{FirstParticipation, SecondParticipation, ThirdParticipation, FourthPlus}

// ParticipationOf folds a raw 1-based index.
func ParticipationOf(index int) Participation {
	if index >= int(FourthPlus) {
		return FourthPlus
	}
	return Participation(index)
}

func (p Participation) String() string {
	if p >= FourthPlus {
		return "4+"
	}
	return strconv.Itoa(int(p))
}

// MarshalText encodes the index by label.
func (p Participation) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Participating pairs a record with its participation index.
type Participating struct {
	model.AthleteRecord
	Index         int
	Participation Participation
}

// AssignParticipation tags each record with the rank of its Year among
// the distinct Years of the same athlete Name. Several rows of one athlete
// in one edition share an index. Input order is preserved.
func AssignParticipation(records []model.AthleteRecord) []Participating {
	years := make(map[string][]int)
	for _, r := range records {
		years[r.Name] = append(years[r.Name], r.Year)
	}
	rank := make(map[string]map[int]int, len(years))
	for name, ys := range years {
		sort.Ints(ys)
		idx := make(map[int]int, len(ys))
		for _, y := range ys {
			if _, ok := idx[y]; !ok {
				idx[y] = len(idx) + 1
			}
		}
		rank[name] = idx
	}

	out := make([]Participating, len(records))
	for i, r := range records {
		n := rank[r.Name][r.Year]
		out[i] = Participating{AthleteRecord: r, Index: n, Participation: ParticipationOf(n)}
	}
	return out
}

// Medal status labels.
const (
	StatusMedalWon = "Medal Won"
	StatusNoMedal  = "No Medal"
)

// ParticipationStatusCount is the number of rows at one participation index
// that did or did not end on the podium.
type ParticipationStatusCount struct {
	Participation Participation `json:"participation"`
	Status        string        `json:"status"`
	Count         int           `json:"count"`
}

// ByParticipationAndStatus counts rows per (Participation, medal status),
// ordered by index then "Medal Won" before "No Medal". Zero cells are kept
// so each present index has both statuses.
func ByParticipationAndStatus(records []model.AthleteRecord) []ParticipationStatusCount {
	won := make(map[Participation]int)
	lost := make(map[Participation]int)
	for _, p := range AssignParticipation(records) {
		if p.Medal.Won() {
			won[p.Participation]++
		} else {
			lost[p.Participation]++
		}
	}

	out := make([]ParticipationStatusCount, 0, 2*len(Participations))
	for _, p := range Participations {
		if won[p]+lost[p] == 0 {
			continue
		}
		out = append(out,
			ParticipationStatusCount{Participation: p, Status: StatusMedalWon, Count: won[p]},
			ParticipationStatusCount{Participation: p, Status: StatusNoMedal, Count: lost[p]},
		)
	}
	return out
}

// SportParticipationMedals is the outcome breakdown of one sport at one
// participation index. Percentages are shares of all rows at that index.
type SportParticipationMedals struct {
	Sport         string        `json:"sport"`
	Participation Participation `json:"participation"`
	Gold          int           `json:"gold"`
	Silver        int           `json:"silver"`
	Bronze        int           `json:"bronze"`
	NoMedal       int           `json:"no_medal"`
	GoldPercent   float64       `json:"gold_percent"`
	SilverPercent float64       `json:"silver_percent"`
	BronzePercent float64       `json:"bronze_percent"`
}

// BySportParticipationMedal counts rows per (Sport, Participation, Medal),
// ordered by sport then index.
func BySportParticipationMedal(records []model.AthleteRecord) []SportParticipationMedals {
	type key struct {
		sport string
		p     Participation
	}
	cells := make(map[key]*SportParticipationMedals)
	for _, p := range AssignParticipation(records) {
		k := key{p.Sport, p.Participation}
		row, ok := cells[k]
		if !ok {
			row = &SportParticipationMedals{Sport: p.Sport, Participation: p.Participation}
			cells[k] = row
		}
		switch p.Medal {
		case model.Gold:
			row.Gold++
		case model.Silver:
			row.Silver++
		case model.Bronze:
			row.Bronze++
		default:
			row.NoMedal++
		}
	}

	out := make([]SportParticipationMedals, 0, len(cells))
	for _, row := range cells {
		total := row.Gold + row.Silver + row.Bronze + row.NoMedal
		row.GoldPercent = *Percent(row.Gold, total)
		row.SilverPercent = *Percent(row.Silver, total)
		row.BronzePercent = *Percent(row.Bronze, total)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sport != out[j].Sport {
			return out[i].Sport < out[j].Sport
		}
		return out[i].Participation < out[j].Participation
	})
	return out
}
