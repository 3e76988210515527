package sankey_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/sankey"
	. "github.com/smartystreets/goconvey/convey"
)

// entries appends n rows of one NOC and outcome.
func entries(out []model.AthleteRecord, noc string, year int, medal model.Medal, n int) []model.AthleteRecord {
	for i := 0; i < n; i++ {
		out = append(out, model.AthleteRecord{
			Name:  fmt.Sprintf("%s-%d-%s-%d", noc, year, medal, i),
			NOC:   noc,
			Year:  year,
			Sport: "Swimming",
			Event: "Swimming Men's 100 metres Freestyle",
			Medal: medal,
		})
	}
	return out
}

func pool() []model.AthleteRecord {
	var rs []model.AthleteRecord
	rs = entries(rs, "AUS", 2000, model.Gold, 5)
	rs = entries(rs, "AUS", 2000, model.NoMedal, 10)
	rs = entries(rs, "GBR", 2000, model.Silver, 3)
	rs = entries(rs, "GBR", 2004, model.NoMedal, 20)
	rs = entries(rs, "HUN", 2004, model.Bronze, 3)
	rs = entries(rs, "HUN", 2004, model.NoMedal, 2)
	rs = entries(rs, "CAN", 2004, model.Bronze, 1)
	rs = entries(rs, "CAN", 2004, model.NoMedal, 7)
	rs = entries(rs, "USA", 2004, model.NoMedal, 4)
	rs = append(rs, model.AthleteRecord{Name: "Curler", NOC: "USA", Year: 2004, Sport: "Curling", Medal: model.Gold})
	return rs
}

func TestBuild(t *testing.T) {
	Convey("Given swimming participations of five countries", t, func() {
		records := pool()

		Convey("When the user's country is outside the top three", func() {
			flow, err := sankey.Build(records, sankey.Params{Sport: "Swimming", Country: "USA"})

			Convey("Then three leaders plus the user's country should be drawn", func() {
				So(err, ShouldBeNil)
				So(len(flow.Countries), ShouldEqual, 4)
				So(flow.CountryAdded, ShouldBeTrue)
				So(flow.CountryHasData, ShouldBeTrue)
				nocs := []string{}
				for _, c := range flow.Countries {
					nocs = append(nocs, c.NOC)
				}
				So(nocs, ShouldResemble, []string{"GBR", "AUS", "HUN", "USA"})
			})

			Convey("And each country's outcome weights should sum to its participations", func() {
				sums := map[int]float64{}
				for _, e := range flow.Edges {
					So(e.Value, ShouldNotBeNil)
					sums[e.Source] += *e.Value
				}
				for i, c := range flow.Countries {
					So(sums[i], ShouldEqual, float64(c.Total))
				}
			})

			Convey("And nodes should list countries then four labelled outcomes each", func() {
				So(len(flow.Nodes), ShouldEqual, 4+4*4)
				So(flow.Nodes[0].Label, ShouldEqual, "GBR")
				So(flow.Nodes[0].Outcome, ShouldBeNil)
				So(flow.Nodes[4].Label, ShouldEqual, "Gold_GBR")
				So(flow.Nodes[7].Label, ShouldEqual, "No Medal_GBR")
				So(len(flow.Edges), ShouldEqual, 16)
				for _, e := range flow.Edges {
					So(flow.Nodes[e.Target].Country, ShouldEqual, flow.Nodes[e.Source].Country)
				}
			})
		})

		Convey("When the user's country is already a leader", func() {
			flow, err := sankey.Build(records, sankey.Params{Sport: "Swimming", Country: "AUS"})

			Convey("Then only three countries should be drawn", func() {
				So(err, ShouldBeNil)
				So(len(flow.Countries), ShouldEqual, 3)
				So(flow.CountryAdded, ShouldBeFalse)
				So(flow.CountryHasData, ShouldBeTrue)
			})
		})

		Convey("When medal counts tie", func() {
			flow, err := sankey.Build(records, sankey.Params{Sport: "Swimming", TopK: 2})

			Convey("Then the tie should be broken by NOC", func() {
				So(err, ShouldBeNil)
				So(flow.Countries[0].NOC, ShouldEqual, "GBR")
				So(flow.Countries[1].NOC, ShouldEqual, "AUS")
			})
		})

		Convey("When sizing relatively", func() {
			flow, err := sankey.Build(records, sankey.Params{Sport: "Swimming", Country: "USA", Mode: model.Relative})

			Convey("Then each country's shares should sum to 100", func() {
				So(err, ShouldBeNil)
				sums := map[int]float64{}
				for _, e := range flow.Edges {
					sums[e.Source] += *e.Value
				}
				for i := range flow.Countries {
					So(math.Abs(sums[i]-100), ShouldBeLessThan, 1e-6)
				}
			})
		})

		Convey("When restricted to one edition", func() {
			flow, err := sankey.Build(records, sankey.Params{Sport: "Swimming", Year: 2004})

			Convey("Then only that edition should count", func() {
				So(err, ShouldBeNil)
				So(len(flow.Countries), ShouldEqual, 2)
				So(flow.Countries[0].NOC, ShouldEqual, "CAN")
				So(flow.Countries[0].Total, ShouldEqual, 8)
				So(flow.Countries[1].NOC, ShouldEqual, "HUN")
			})
		})
	})

	Convey("Given a country with no participations", t, func() {
		records := pool()

		Convey("When sizing relatively", func() {
			flow, err := sankey.Build(records, sankey.Params{Sport: "Swimming", Country: "JAM", Mode: model.Relative})

			Convey("Then its edges should be kept with null values", func() {
				So(err, ShouldBeNil)
				So(flow.CountryHasData, ShouldBeFalse)
				So(flow.CountryAdded, ShouldBeTrue)
				last := flow.Edges[len(flow.Edges)-4:]
				for _, e := range last {
					So(e.Value, ShouldBeNil)
				}
				b, err := json.Marshal(last[0])
				So(err, ShouldBeNil)
				So(string(b), ShouldContainSubstring, `"value":null`)
			})
		})

		Convey("When nothing else is selected", func() {
			_, err := sankey.Build(records, sankey.Params{Sport: "Curling", Year: 1900, Country: "JAM"})

			Convey("Then there should be no data", func() {
				So(err, ShouldEqual, sankey.ErrNoData)
			})
		})
	})

	Convey("Given an empty slice", t, func() {
		_, err := sankey.Build(nil, sankey.Params{Sport: "Swimming"})

		Convey("Then ErrNoData should be returned", func() {
			So(err, ShouldEqual, sankey.ErrNoData)
		})
	})
}
