package probe

import (
	"errors"
	"fmt"
	"math"
)

// ErrViolation marks a table that breaks a chart invariant.
var ErrViolation = errors.New("invariant violated")

// verifyFlow checks that each country's outgoing edges add up to its total,
// and in relative mode that its shares add up to 100.
func verifyFlow(f flow, relative bool) error {
	if len(f.Edges) != len(f.Countries)*4 {
		return fmt.Errorf("%w: %d edges for %d countries", ErrViolation, len(f.Edges), len(f.Countries))
	}
	counts := make([]int, len(f.Countries))
	shares := make([]float64, len(f.Countries))
	nulls := make([]int, len(f.Countries))
	for _, e := range f.Edges {
		if e.Source < 0 || e.Source >= len(f.Countries) {
			return fmt.Errorf("%w: edge source %d is not a country node", ErrViolation, e.Source)
		}
		counts[e.Source] += e.Count
		if e.Value == nil {
			nulls[e.Source]++
			continue
		}
		shares[e.Source] += *e.Value
	}
	for i, c := range f.Countries {
		if counts[i] != c.Total {
			return fmt.Errorf("%w: %s edges count %d, total %d", ErrViolation, c.NOC, counts[i], c.Total)
		}
		if !relative {
			continue
		}
		if c.Total == 0 {
			if nulls[i] != 4 {
				return fmt.Errorf("%w: %s has no rows but carries shares", ErrViolation, c.NOC)
			}
			continue
		}
		if math.Abs(shares[i]-percentTotal) > percentTolerance {
			return fmt.Errorf("%w: %s shares add up to %.2f", ErrViolation, c.NOC, shares[i])
		}
	}
	return nil
}

// verifyAgeShares checks that relative shares of each edition add up to 100.
func verifyAgeShares(d ageDistribution) error {
	sums := make(map[int]float64)
	for _, c := range d.Counts {
		if c.Percentage == nil {
			return fmt.Errorf("%w: %d %s has no share", ErrViolation, c.Year, c.AgeGroup)
		}
		sums[c.Year] += *c.Percentage
	}
	for year, sum := range sums {
		if math.Abs(sum-percentTotal) > percentTolerance {
			return fmt.Errorf("%w: edition %d shares add up to %.2f", ErrViolation, year, sum)
		}
	}
	return nil
}
