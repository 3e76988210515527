// Package aggregate turns filtered athlete records into the grouped count
// tables behind each chart. Every function is pure: same input, same output,
// and an empty input yields an empty, non-nil table.
package aggregate

import (
	"math"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// Size column hints returned to the charting layer.
const (
	SizeCount      = "Count"
	SizePercentage = "Percentage"
)

// Normalize sizes rows for mode and returns the name of the column the
// chart should encode as mark size.
//
// In Relative mode every row gets 100 × count / (sum of counts sharing its
// partition key), rounded to 2 decimals. A partition summing to 0 gets a
// nil percentage. In Absolute mode rows are left untouched.
func Normalize[T any, K comparable](rows []T, mode model.Mode, partition func(T) K, count func(T) int, set func(*T, *float64)) string {
	if mode != model.Relative {
		return SizeCount
	}
	totals := make(map[K]int)
	for _, r := range rows {
		totals[partition(r)] += count(r)
	}
	for i := range rows {
		total := totals[partition(rows[i])]
		if total == 0 {
			set(&rows[i], nil)
			continue
		}
		set(&rows[i], Percent(count(rows[i]), total))
	}
	return SizePercentage
}

// Percent returns 100 × part / whole rounded to 2 decimals, or nil when
// whole is 0.
func Percent(part, whole int) *float64 {
	if whole == 0 {
		return nil
	}
	p := Round2(100 * float64(part) / float64(whole))
	return &p
}

// Round2 rounds half away from zero to 2 decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
