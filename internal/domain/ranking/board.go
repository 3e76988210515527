// Package ranking orders athletes by medal totals: the hall of fame, a
// single athlete's standing, and the odds of winning by participation.
package ranking

import (
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/aggregate"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// DefaultHallOfFameSize is the number of athletes shown when no size is set.
const DefaultHallOfFameSize = 10

// Entry is one athlete on the board. Rank is dense: equal totals share a
// rank and the next total takes the following rank.
type Entry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Gold   int    `json:"gold"`
	Silver int    `json:"silver"`
	Bronze int    `json:"bronze"`
	Total  int    `json:"total"`
}

// Standing is an Entry with its ordinal position among Of athletes.
type Standing struct {
	Entry
	Position int `json:"position"`
	Of       int `json:"of"`
}

type tally struct {
	gold, silver, bronze int
	first                int
}

func (t *tally) total() int { return t.gold + t.silver + t.bronze }

// Board holds every medalled athlete of a slice in rank order.
type Board struct {
	root   *node
	byName map[string]*tally
}

// NewBoard tallies podium rows per athlete. Rows without a medal are ignored.
func NewBoard(records []model.AthleteRecord) *Board {
	b := &Board{byName: make(map[string]*tally)}
	for i, r := range records {
		if !r.Medal.Won() {
			continue
		}
		t, ok := b.byName[r.Name]
		if !ok {
			t = &tally{first: i}
			b.byName[r.Name] = t
		}
		switch r.Medal {
		case model.Gold:
			t.gold++
		case model.Silver:
			t.silver++
		case model.Bronze:
			t.bronze++
		}
	}
	for name, t := range b.byName {
		b.root = insert(b.root, name, t.total(), t.first)
	}
	return b
}

// Len returns the number of medalled athletes.
func (b *Board) Len() int { return nsize(b.root) }

// Top returns the first n athletes.
func (b *Board) Top(n int) ([]Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	nodes := make([]*node, 0, min(n, b.Len()))
	collect(b.root, n, &nodes)
	return b.entries(nodes), nil
}

// Rank returns the standing of one athlete.
func (b *Board) Rank(name string) (Standing, error) {
	t, ok := b.byName[name]
	if !ok {
		return Standing{}, ErrNotFound
	}
	nodes := make([]*node, 0, b.Len())
	collect(b.root, b.Len(), &nodes)
	for _, e := range b.entries(nodes) {
		if e.Name == name {
			return Standing{
				Entry:    e,
				Position: position(b.root, t.total(), t.first),
				Of:       b.Len(),
			}, nil
		}
	}
	return Standing{}, ErrNotFound
}

func (b *Board) entries(nodes []*node) []Entry {
	out := make([]Entry, 0, len(nodes))
	rank := 0
	for i, n := range nodes {
		if i == 0 || n.total != nodes[i-1].total {
			rank++
		}
		t := b.byName[n.name]
		out = append(out, Entry{
			Rank:   rank,
			Name:   n.name,
			Gold:   t.gold,
			Silver: t.silver,
			Bronze: t.bronze,
			Total:  n.total,
		})
	}
	return out
}

// HallOfFame is the top of the board with the per-medal rows of the
// athletes on it.
type HallOfFame struct {
	Entries []Entry                       `json:"entries"`
	Rows    []aggregate.AthleteMedalCount `json:"rows"`
}

// TopAthletes returns the n most decorated athletes of records.
func TopAthletes(records []model.AthleteRecord, n int) (HallOfFame, error) {
	entries, err := NewBoard(records).Top(n)
	if err != nil {
		return HallOfFame{}, err
	}
	keep := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		keep[e.Name] = struct{}{}
	}
	rows := make([]aggregate.AthleteMedalCount, 0, 3*len(entries))
	for _, r := range aggregate.MedalsByAthlete(records) {
		if _, ok := keep[r.Name]; ok {
			rows = append(rows, r)
		}
	}
	return HallOfFame{Entries: entries, Rows: rows}, nil
}
