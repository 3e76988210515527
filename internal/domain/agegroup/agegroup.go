// Package agegroup maps athlete ages onto the eight fixed ordinal age groups
// used by every age chart.
package agegroup

import "github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"

// Group is an ordinal age bucket. Groups compare in age order.
type Group uint8

const (
	Age10to14 Group = iota
	Age15to17
	Age18to20
	Age21to23
	Age24to26
	Age27to30
	Age31to35
	Age36Plus
)

type bucket struct {
	lo, hi   int // [lo, hi)
	label    string
	midpoint int
}

var buckets = [...]bucket{
	Age10to14: {10, 14, "10-14", 12},
	Age15to17: {14, 17, "15-17", 16},
	Age18to20: {17, 20, "18-20", 19},
	Age21to23: {20, 23, "21-23", 22},
	Age24to26: {23, 26, "24-26", 25},
	Age27to30: {26, 30, "27-30", 28},
	Age31to35: {30, 35, "31-35", 33},
	Age36Plus: {35, 100, "36+", 40},
}

// Ages outside [MinAge, MaxAge) fall in no group.
const (
	MinAge = 10
	MaxAge = 100
)

// All returns the groups in ordinal order.
func All() []Group {
	out := make([]Group, len(buckets))
	for i := range buckets {
		out[i] = Group(i)
	}
	return out
}

// Bin returns the group containing age. Out-of-range ages are not clamped.
func Bin(age int) (Group, bool) {
	if age < MinAge || age >= MaxAge {
		return 0, false
	}
	for i, b := range buckets {
		if age < b.hi {
			return Group(i), true
		}
	}
	return 0, false
}

// Label returns the display label, e.g. "21-23".
func (g Group) Label() string { return buckets[g].label }

// Midpoint returns the representative age plotted for the group.
func (g Group) Midpoint() int { return buckets[g].midpoint }

// Bounds returns the half-open age interval [lo, hi) of the group.
func (g Group) Bounds() (lo, hi int) { return buckets[g].lo, buckets[g].hi }

func (g Group) String() string { return g.Label() }

// MarshalText encodes the group by label.
func (g Group) MarshalText() ([]byte, error) { return []byte(g.Label()), nil }

// Binned pairs a record with its age group.
type Binned struct {
	model.AthleteRecord
	Group Group
}

// Assign keeps the records whose age is known and inside a group, in input
// order, and tags each with its group.
func Assign(records []model.AthleteRecord) []Binned {
	out := make([]Binned, 0, len(records))
	for _, r := range records {
		if !r.AgeKnown {
			continue
		}
		g, ok := Bin(r.Age)
		if !ok {
			continue
		}
		out = append(out, Binned{AthleteRecord: r, Group: g})
	}
	return out
}
