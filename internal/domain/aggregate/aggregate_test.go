package aggregate_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/agegroup"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/aggregate"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(name string, g model.Gender, age int, year int, sport, event string, medal model.Medal) model.AthleteRecord {
	return model.AthleteRecord{
		Name: name, Gender: g, Age: age, AgeKnown: age > 0,
		NOC: "USA", Year: year, Sport: sport, Event: event, Medal: medal,
	}
}

func swimming() []model.AthleteRecord {
	return []model.AthleteRecord{
		rec("Phelps", model.Male, 15, 2000, "Swimming", "Men's 200 metres Butterfly", model.NoMedal),
		rec("Phelps", model.Male, 19, 2004, "Swimming", "Men's 200 metres Butterfly", model.Gold),
		rec("Phelps", model.Male, 19, 2004, "Swimming", "Men's 100 metres Butterfly", model.Gold),
		rec("Phelps", model.Male, 23, 2008, "Swimming", "Men's 200 metres Butterfly", model.Gold),
		rec("Phelps", model.Male, 27, 2012, "Swimming", "Men's 200 metres Butterfly", model.Silver),
		rec("Phelps", model.Male, 31, 2016, "Swimming", "Men's 200 metres Butterfly", model.Gold),
		rec("Ledecky", model.Female, 15, 2012, "Swimming", "Women's 800 metres Freestyle", model.Gold),
		rec("Ledecky", model.Female, 19, 2016, "Swimming", "Women's 800 metres Freestyle", model.Gold),
		rec("Coughlin", model.Female, 22, 2004, "Swimming", "Women's 100 metres Backstroke", model.Gold),
		rec("Coughlin", model.Female, 26, 2008, "Swimming", "Women's 100 metres Backstroke", model.Gold),
		rec("Nobody", model.Male, 0, 2004, "Swimming", "Men's 200 metres Butterfly", model.NoMedal),
		rec("Veteran", model.Female, 41, 2008, "Swimming", "Mixed 4 x 100 metres Medley Relay", model.Bronze),
	}
}

func TestByYearAndAgeGroup(t *testing.T) {
	Convey("Given swimming records", t, func() {
		records := swimming()

		Convey("When grouping by year and age group", func() {
			rows := aggregate.ByYearAndAgeGroup(records)

			Convey("Then rows should be ordered by year then group", func() {
				So(rows[0].Year, ShouldEqual, 2000)
				So(rows[0].AgeGroup, ShouldEqual, agegroup.Age15to17)
				So(rows[0].Midpoint, ShouldEqual, 16)
				for i := 1; i < len(rows); i++ {
					prev, cur := rows[i-1], rows[i]
					So(prev.Year < cur.Year || (prev.Year == cur.Year && prev.AgeGroup < cur.AgeGroup), ShouldBeTrue)
				}
			})

			Convey("And unknown ages should be excluded from the counts", func() {
				total := 0
				for _, r := range rows {
					total += r.Count
				}
				So(total, ShouldEqual, len(records)-1)
			})

			Convey("And duplicate keys should be merged", func() {
				var found bool
				for _, r := range rows {
					if r.Year == 2004 && r.AgeGroup == agegroup.Age18to20 {
						So(r.Count, ShouldEqual, 2)
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When the input is empty", func() {
			rows := aggregate.ByYearAndAgeGroup(nil)

			Convey("Then the table should be empty, not nil", func() {
				So(rows, ShouldNotBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given a year by age-group table", t, func() {
		rows := aggregate.ByYearAndAgeGroup(swimming())

		Convey("When sizing in absolute mode", func() {
			col := aggregate.NormalizeByYear(rows, model.Absolute)

			Convey("Then counts should be the size column", func() {
				So(col, ShouldEqual, aggregate.SizeCount)
				for _, r := range rows {
					So(r.Percentage, ShouldBeNil)
				}
			})
		})

		Convey("When sizing in relative mode", func() {
			col := aggregate.NormalizeByYear(rows, model.Relative)

			Convey("Then percentages per year should sum to 100", func() {
				So(col, ShouldEqual, aggregate.SizePercentage)
				sums := map[int]float64{}
				n := map[int]int{}
				for _, r := range rows {
					So(r.Percentage, ShouldNotBeNil)
					sums[r.Year] += *r.Percentage
					n[r.Year]++
				}
				for year, s := range sums {
					So(math.Abs(s-100), ShouldBeLessThanOrEqualTo, 0.01*float64(n[year]))
				}
			})
		})
	})

	Convey("Given a partition whose counts sum to zero", t, func() {
		rows := []aggregate.YearAgeCount{
			{Year: 1900, Count: 0},
			{Year: 1900, Count: 0},
			{Year: 1904, Count: 1},
			{Year: 1904, Count: 2},
		}

		Convey("When sizing in relative mode", func() {
			aggregate.NormalizeByYear(rows, model.Relative)

			Convey("Then that partition should have no percentage", func() {
				So(rows[0].Percentage, ShouldBeNil)
				So(rows[1].Percentage, ShouldBeNil)
				So(*rows[2].Percentage, ShouldEqual, 33.33)
				So(*rows[3].Percentage, ShouldEqual, 66.67)
			})

			Convey("And it should encode as JSON null", func() {
				b, err := json.Marshal(rows[0])
				So(err, ShouldBeNil)
				So(string(b), ShouldContainSubstring, `"percentage":null`)
			})
		})
	})

	Convey("Given Percent", t, func() {
		So(aggregate.Percent(1, 0), ShouldBeNil)
		So(*aggregate.Percent(1, 3), ShouldEqual, 33.33)
		So(aggregate.Round2(2.675), ShouldAlmostEqual, 2.68, 0.011)
	})
}

func TestByMedalAndAgeGroup(t *testing.T) {
	Convey("Given swimming records", t, func() {
		rows := aggregate.ByMedalAndAgeGroup(swimming())

		Convey("Then only medals with binnable ages should be counted", func() {
			total := 0
			for _, r := range rows {
				So(r.Medal.Won(), ShouldBeTrue)
				total += r.Count
			}
			So(total, ShouldEqual, 10)
		})

		Convey("And rows should be ordered Gold, Silver, Bronze", func() {
			So(rows[0].Medal, ShouldEqual, model.Gold)
			So(rows[len(rows)-1].Medal, ShouldEqual, model.Bronze)
			So(rows[len(rows)-1].AgeGroup, ShouldEqual, agegroup.Age36Plus)
		})
	})
}

func TestAverageAgeByYear(t *testing.T) {
	Convey("Given swimming records", t, func() {
		rows := aggregate.AverageAgeByYear(swimming())

		Convey("Then each edition should carry the mean binnable age", func() {
			So(rows[0], ShouldResemble, aggregate.YearAverageAge{Year: 2000, AverageAge: 15})
			for _, r := range rows {
				if r.Year == 2004 {
					So(r.AverageAge, ShouldEqual, 20)
				}
				if r.Year == 2008 {
					So(r.AverageAge, ShouldEqual, 30)
				}
			}
		})
	})
}

func TestGenderByYear(t *testing.T) {
	Convey("Given swimming records", t, func() {
		rows := aggregate.GenderByYear(swimming())

		Convey("Then shares within each year should sum to 100", func() {
			sums := map[int]float64{}
			for _, r := range rows {
				sums[r.Year] += *r.Percentage
			}
			for _, s := range sums {
				So(s, ShouldAlmostEqual, 100, 0.02)
			}
		})

		Convey("And the pivot should agree with the long table", func() {
			ratios := aggregate.GenderRatioByYear(swimming())
			So(ratios[0], ShouldResemble, aggregate.GenderRatio{Year: 2000, Male: 1, Total: 1, MalePercent: 100})
			for _, r := range ratios {
				if r.Year == 2004 {
					So(r.Male, ShouldEqual, 3)
					So(r.Female, ShouldEqual, 1)
					So(r.FemalePercent, ShouldEqual, 25)
				}
			}
		})
	})
}

func TestEventsByGender(t *testing.T) {
	Convey("Given swimming records", t, func() {
		rows := aggregate.EventsByGender(swimming())

		Convey("Then gender qualifiers should be stripped and counted", func() {
			byName := map[string]aggregate.EventGenderCount{}
			for _, r := range rows {
				byName[r.Event] = r
			}
			So(byName["200 metres Butterfly"].Men, ShouldEqual, 6)
			So(byName["800 metres Freestyle"].Women, ShouldEqual, 2)
		})

		Convey("And mixed events should not be attributed", func() {
			for _, r := range rows {
				So(r.Event, ShouldNotContainSubstring, "Medley Relay")
			}
		})

		Convey("And events should be sorted by name", func() {
			So(rows[0].Event, ShouldEqual, "100 metres Backstroke")
		})
	})
}

func TestParticipation(t *testing.T) {
	Convey("Given swimming records", t, func() {
		records := swimming()

		Convey("When assigning participation indices", func() {
			tagged := aggregate.AssignParticipation(records)

			Convey("Then same-edition rows should share an index", func() {
				So(tagged[1].Index, ShouldEqual, 2)
				So(tagged[2].Index, ShouldEqual, 2)
			})

			Convey("And indices beyond three should fold into 4+", func() {
				So(tagged[4].Index, ShouldEqual, 4)
				So(tagged[5].Index, ShouldEqual, 5)
				So(tagged[5].Participation, ShouldEqual, aggregate.FourthPlus)
				So(tagged[5].Participation.String(), ShouldEqual, "4+")
			})
		})

		Convey("When counting by participation and status", func() {
			rows := aggregate.ByParticipationAndStatus(records)

			Convey("Then each index should list both statuses and conserve the row count", func() {
				total := 0
				for i, r := range rows {
					total += r.Count
					if i%2 == 0 {
						So(r.Status, ShouldEqual, aggregate.StatusMedalWon)
					} else {
						So(r.Status, ShouldEqual, aggregate.StatusNoMedal)
					}
				}
				So(total, ShouldEqual, len(records))
				So(rows[0], ShouldResemble, aggregate.ParticipationStatusCount{
					Participation: aggregate.FirstParticipation, Status: aggregate.StatusMedalWon, Count: 3,
				})
			})
		})

		Convey("When breaking down by sport, participation and medal", func() {
			rows := aggregate.BySportParticipationMedal(records)

			Convey("Then percentages should be shares of the index total", func() {
				first := rows[0]
				So(first.Participation, ShouldEqual, aggregate.FirstParticipation)
				So(first.Gold+first.Silver+first.Bronze+first.NoMedal, ShouldEqual, 5)
				So(first.GoldPercent, ShouldEqual, 40)
				So(first.BronzePercent, ShouldEqual, 20)
			})
		})
	})
}

func TestAgeSpanBySport(t *testing.T) {
	Convey("Given records from two sports", t, func() {
		records := append(swimming(),
			rec("Curler", model.Male, 0, 2010, "Curling", "Men's Curling", model.NoMedal),
			rec("Rower", model.Male, 20, 2000, "Rowing", "Men's Eights", model.NoMedal),
			rec("Rower", model.Male, 24, 2004, "Rowing", "Men's Eights", model.Gold),
		)

		Convey("When computing spans with Swimming selected", func() {
			rows := aggregate.AgeSpanBySport(records, "Swimming")

			Convey("Then sports without known ages should be omitted", func() {
				So(len(rows), ShouldEqual, 2)
				So(rows[0].Sport, ShouldEqual, "Rowing")
			})

			Convey("And bounds and the selection flag should be set", func() {
				So(rows[1], ShouldResemble, aggregate.AgeSpan{
					Sport: "Swimming", MinAge: 15, MaxAge: 41, AvgEditions: 2.2, Selected: true,
				})
				So(rows[0].Selected, ShouldBeFalse)
				So(rows[0].AvgEditions, ShouldEqual, 2)
			})
		})
	})
}

func TestMedalsByAthlete(t *testing.T) {
	Convey("Given swimming records", t, func() {
		rows := aggregate.MedalsByAthlete(swimming())

		Convey("Then only podium rows should be counted, ordered by name and medal", func() {
			So(rows[0], ShouldResemble, aggregate.AthleteMedalCount{Name: "Coughlin", Medal: model.Gold, Count: 2})
			var phelps []aggregate.AthleteMedalCount
			for _, r := range rows {
				So(r.Name, ShouldNotEqual, "Nobody")
				if r.Name == "Phelps" {
					phelps = append(phelps, r)
				}
			}
			So(phelps, ShouldResemble, []aggregate.AthleteMedalCount{
				{Name: "Phelps", Medal: model.Gold, Count: 4},
				{Name: "Phelps", Medal: model.Silver, Count: 1},
			})
		})
	})
}

func TestIdempotence(t *testing.T) {
	Convey("Given the same input twice", t, func() {
		records := swimming()

		Convey("Then every aggregation should produce byte-identical JSON", func() {
			for _, fn := range []func() any{
				func() any { return aggregate.ByYearAndAgeGroup(records) },
				func() any { return aggregate.ByMedalAndAgeGroup(records) },
				func() any { return aggregate.GenderByYear(records) },
				func() any { return aggregate.EventsByGender(records) },
				func() any { return aggregate.ByParticipationAndStatus(records) },
				func() any { return aggregate.BySportParticipationMedal(records) },
				func() any { return aggregate.AgeSpanBySport(records, "Swimming") },
				func() any { return aggregate.MedalsByAthlete(records) },
			} {
				a, err := json.Marshal(fn())
				So(err, ShouldBeNil)
				b, err := json.Marshal(fn())
				So(err, ShouldBeNil)
				So(string(a), ShouldEqual, string(b))
			}
		})
	})
}
