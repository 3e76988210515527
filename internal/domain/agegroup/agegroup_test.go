package agegroup_test

import (
	"testing"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/agegroup"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBin(t *testing.T) {
	Convey("Given the fixed age groups", t, func() {
		Convey("Then boundaries should be half-open", func() {
			cases := map[int]string{
				10: "10-14", 13: "10-14",
				14: "15-17", 16: "15-17",
				17: "18-20", 19: "18-20",
				20: "21-23", 22: "21-23",
				23: "24-26", 25: "24-26",
				26: "27-30", 29: "27-30",
				30: "31-35", 34: "31-35",
				35: "36+", 99: "36+",
			}
			for age, label := range cases {
				g, ok := agegroup.Bin(age)
				So(ok, ShouldBeTrue)
				So(g.Label(), ShouldEqual, label)
			}
		})

		Convey("And every age in [10,100) should land in exactly one group", func() {
			for age := agegroup.MinAge; age < agegroup.MaxAge; age++ {
				g, ok := agegroup.Bin(age)
				So(ok, ShouldBeTrue)
				lo, hi := g.Bounds()
				So(age, ShouldBeGreaterThanOrEqualTo, lo)
				So(age, ShouldBeLessThan, hi)
			}
		})

		Convey("And ages outside the range should not be clamped", func() {
			for _, age := range []int{-1, 0, 9, 100, 150} {
				_, ok := agegroup.Bin(age)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("And midpoints should follow the display table", func() {
			want := []int{12, 16, 19, 22, 25, 28, 33, 40}
			for i, g := range agegroup.All() {
				So(g.Midpoint(), ShouldEqual, want[i])
			}
		})
	})
}

func TestAssign(t *testing.T) {
	Convey("Given records with known, unknown and out-of-range ages", t, func() {
		records := []model.AthleteRecord{
			{Name: "A", Age: 24, AgeKnown: true},
			{Name: "B"},
			{Name: "C", Age: 8, AgeKnown: true},
			{Name: "D", Age: 36, AgeKnown: true},
			{Name: "E", Age: 100, AgeKnown: true},
		}

		Convey("When assigning groups", func() {
			binned := agegroup.Assign(records)

			Convey("Then only binnable rows should remain, in input order", func() {
				So(len(binned), ShouldEqual, 2)
				So(binned[0].Name, ShouldEqual, "A")
				So(binned[0].Group, ShouldEqual, agegroup.Age24to26)
				So(binned[1].Name, ShouldEqual, "D")
				So(binned[1].Group, ShouldEqual, agegroup.Age36Plus)
			})
		})

		Convey("When the input is empty", func() {
			binned := agegroup.Assign(nil)

			Convey("Then the output should be empty but usable", func() {
				So(binned, ShouldNotBeNil)
				So(binned, ShouldBeEmpty)
			})
		})
	})
}
