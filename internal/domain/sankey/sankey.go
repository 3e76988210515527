// Package sankey builds the country → outcome flow behind the performance
// chart: the top medal-winning NOCs of a sport, plus the user's own country,
// each split into Gold, Silver, Bronze and No Medal participations.
package sankey

import (
	"sort"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/aggregate"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// DefaultTopK is the number of leading countries shown when Params.TopK is
// not set.
const DefaultTopK = 3

// Outcomes lists the four outcome nodes of every country in display order.
var Outcomes = [...]model.Medal{model.Gold, model.Silver, model.Bronze, model.NoMedal}

// Params selects the slice of the dataset to draw.
type Params struct {
	Sport   string
	Year    int // 0 means every edition
	Country string
	Mode    model.Mode
	TopK    int
}

// Country is the outcome breakdown of one NOC.
type Country struct {
	NOC     string `json:"noc"`
	Region  string `json:"region"`
	Gold    int    `json:"gold"`
	Silver  int    `json:"silver"`
	Bronze  int    `json:"bronze"`
	NoMedal int    `json:"no_medal"`
	Total   int    `json:"total"`
}

// Count returns the number of participations ending in outcome.
func (c Country) Count(outcome model.Medal) int {
	switch outcome {
	case model.Gold:
		return c.Gold
	case model.Silver:
		return c.Silver
	case model.Bronze:
		return c.Bronze
	default:
		return c.NoMedal
	}
}

func (c Country) medals() int { return c.Gold + c.Silver + c.Bronze }

// Node is either a country (Outcome unset) or one outcome of a country.
type Node struct {
	Label   string       `json:"label"`
	Country string       `json:"country"`
	Outcome *model.Medal `json:"outcome,omitempty"`
}

// Edge links a country node to one of its outcome nodes. Value is the count
// in absolute mode and the percentage of the country total in relative mode;
// it is nil when the country has no participations.
type Edge struct {
	Source  int         `json:"source"`
	Target  int         `json:"target"`
	Outcome model.Medal `json:"outcome"`
	Count   int         `json:"count"`
	Value   *float64    `json:"value"`
}

// Flow is a finished Sankey diagram.
type Flow struct {
	Nodes          []Node    `json:"nodes"`
	Edges          []Edge    `json:"edges"`
	Countries      []Country `json:"countries"`
	CountryHasData bool      `json:"country_has_data"`
	CountryAdded   bool      `json:"country_added"`
}

// Build computes the flow for p over records.
func Build(records []model.AthleteRecord, p Params) (Flow, error) {
	k := p.TopK
	if k <= 0 {
		k = DefaultTopK
	}

	byNOC := make(map[string]*Country)
	for _, r := range records {
		if r.Sport != p.Sport || (p.Year != 0 && r.Year != p.Year) {
			continue
		}
		c, ok := byNOC[r.NOC]
		if !ok {
			c = &Country{NOC: r.NOC, Region: r.Region}
			byNOC[r.NOC] = c
		}
		c.Total++
		switch r.Medal {
		case model.Gold:
			c.Gold++
		case model.Silver:
			c.Silver++
		case model.Bronze:
			c.Bronze++
		default:
			c.NoMedal++
		}
	}

	selected := topByMedals(byNOC, k)

	var flow Flow
	if p.Country != "" {
		c, ok := byNOC[p.Country]
		flow.CountryHasData = ok
		if !containsNOC(selected, p.Country) {
			if !ok {
				c = &Country{NOC: p.Country}
			}
			selected = append(selected, *c)
			flow.CountryAdded = true
		}
	}

	total := 0
	for _, c := range selected {
		total += c.Total
	}
	if total == 0 {
		return Flow{}, ErrNoData
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Total != selected[j].Total {
			return selected[i].Total > selected[j].Total
		}
		return selected[i].NOC < selected[j].NOC
	})
	flow.Countries = selected
	flow.Nodes, flow.Edges = layout(selected, p.Mode)
	return flow, nil
}

// topByMedals ranks countries with at least one medal by medal count, ties
// broken by NOC, and keeps the first k.
func topByMedals(byNOC map[string]*Country, k int) []Country {
	ranked := make([]Country, 0, len(byNOC))
	for _, c := range byNOC {
		if c.medals() > 0 {
			ranked = append(ranked, *c)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].medals() != ranked[j].medals() {
			return ranked[i].medals() > ranked[j].medals()
		}
		return ranked[i].NOC < ranked[j].NOC
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func containsNOC(cs []Country, noc string) bool {
	for _, c := range cs {
		if c.NOC == noc {
			return true
		}
	}
	return false
}

func layout(countries []Country, mode model.Mode) ([]Node, []Edge) {
	nodes := make([]Node, 0, len(countries)*(1+len(Outcomes)))
	for _, c := range countries {
		nodes = append(nodes, Node{Label: c.NOC, Country: c.NOC})
	}
	edges := make([]Edge, 0, len(countries)*len(Outcomes))
	for i, c := range countries {
		values := weights(c, mode)
		for j, outcome := range Outcomes {
			o := outcome
			nodes = append(nodes, Node{Label: o.String() + "_" + c.NOC, Country: c.NOC, Outcome: &o})
			edges = append(edges, Edge{
				Source:  i,
				Target:  len(nodes) - 1,
				Outcome: o,
				Count:   c.Count(o),
				Value:   values[j],
			})
		}
	}
	return nodes, edges
}

// weights returns one value per outcome in Outcomes order. In relative mode
// No Medal takes whatever the rounded medal shares leave of 100.
func weights(c Country, mode model.Mode) [len(Outcomes)]*float64 {
	var out [len(Outcomes)]*float64
	if mode != model.Relative {
		for i, o := range Outcomes {
			v := float64(c.Count(o))
			out[i] = &v
		}
		return out
	}
	if c.Total == 0 {
		return out
	}
	sum := 0.0
	for i, o := range Outcomes[:len(Outcomes)-1] {
		out[i] = aggregate.Percent(c.Count(o), c.Total)
		sum += *out[i]
	}
	rest := aggregate.Round2(100 - sum)
	out[len(Outcomes)-1] = &rest
	return out
}
