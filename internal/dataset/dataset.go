// Package dataset loads the athlete-event and region tables into an
// immutable in-memory Dataset shared read-only by every request.
package dataset

import (
	"sort"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// Dataset is the normalized, region-resolved athlete table. It is never
// mutated after New returns; every accessor hands out copies.
type Dataset struct {
	records    []model.AthleteRecord
	regions    *Regions
	sports     []string
	years      []int
	regionSet  []string
	nocs       map[string]struct{}
	athletes   int
	unresolved []string
}

// Stats summarizes the loaded dataset.
type Stats struct {
	Rows           int      `json:"rows"`
	Athletes       int      `json:"athletes"`
	Sports         int      `json:"sports"`
	Regions        int      `json:"regions"`
	UnresolvedNOCs []string `json:"unresolved_nocs"`
	FirstYear      int      `json:"first_year"`
	LastYear       int      `json:"last_year"`
}

// New builds a Dataset over a private copy of records and resolves each
// record's Region from regions. A nil regions leaves every NOC unresolved.
func New(records []model.AthleteRecord, regions *Regions) *Dataset {
	if regions == nil {
		regions = NewRegions(nil)
	}
	d := &Dataset{
		records: make([]model.AthleteRecord, len(records)),
		regions: regions,
		nocs:    make(map[string]struct{}),
	}

	sports := make(map[string]struct{})
	years := make(map[int]struct{})
	regionNames := make(map[string]struct{})
	names := make(map[string]struct{})
	unresolved := make(map[string]struct{})

	for i, r := range records {
		r.Region, _ = regions.Region(r.NOC)
		d.records[i] = r

		sports[r.Sport] = struct{}{}
		years[r.Year] = struct{}{}
		names[r.Name] = struct{}{}
		d.nocs[r.NOC] = struct{}{}
		if r.HasRegion() {
			regionNames[r.Region] = struct{}{}
		} else {
			unresolved[r.NOC] = struct{}{}
		}
	}

	d.sports = sortedKeys(sports)
	d.regionSet = sortedKeys(regionNames)
	d.unresolved = sortedKeys(unresolved)
	d.athletes = len(names)
	d.years = make([]int, 0, len(years))
	for y := range years {
		d.years = append(d.years, y)
	}
	sort.Ints(d.years)
	return d
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of every row in file order.
func (d *Dataset) Records() []model.AthleteRecord {
	return d.Filter(nil)
}

// Filter returns a new slice holding the rows accepted by keep, in file
// order. A nil keep accepts every row.
func (d *Dataset) Filter(keep func(model.AthleteRecord) bool) []model.AthleteRecord {
	out := make([]model.AthleteRecord, 0, len(d.records))
	for _, r := range d.records {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sports returns every sport present, sorted.
func (d *Dataset) Sports() []string { return append([]string(nil), d.sports...) }

// Years returns every edition year present, ascending.
func (d *Dataset) Years() []int { return append([]int(nil), d.years...) }

// EditionsSince returns the edition years at or after minYear, newest first.
func (d *Dataset) EditionsSince(minYear int) []int {
	out := make([]int, 0, len(d.years))
	for i := len(d.years) - 1; i >= 0; i-- {
		if d.years[i] >= minYear {
			out = append(out, d.years[i])
		}
	}
	return out
}

// Regions returns the resolved region names that appear in the data, sorted.
func (d *Dataset) Regions() []string { return append([]string(nil), d.regionSet...) }

// NOCForRegion resolves a region name to the first NOC listed for it.
func (d *Dataset) NOCForRegion(region string) (string, bool) { return d.regions.NOC(region) }

// RegionForNOC resolves an NOC code to its region name.
func (d *Dataset) RegionForNOC(noc string) (string, bool) { return d.regions.Region(noc) }

// HasNOC reports whether noc appears in the data or in the region table.
func (d *Dataset) HasNOC(noc string) bool {
	if _, ok := d.nocs[noc]; ok {
		return true
	}
	_, ok := d.regions.Region(noc)
	return ok
}

// Events returns the distinct events of sport in first-appearance order.
func (d *Dataset) Events(sport string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range d.records {
		if r.Sport != sport {
			continue
		}
		if _, ok := seen[r.Event]; ok {
			continue
		}
		seen[r.Event] = struct{}{}
		out = append(out, r.Event)
	}
	return out
}

// Stats summarizes the dataset.
func (d *Dataset) Stats() Stats {
	s := Stats{
		Rows:           len(d.records),
		Athletes:       d.athletes,
		Sports:         len(d.sports),
		Regions:        len(d.regionSet),
		UnresolvedNOCs: append(make([]string, 0, len(d.unresolved)), d.unresolved...),
	}
	if len(d.years) > 0 {
		s.FirstYear = d.years[0]
		s.LastYear = d.years[len(d.years)-1]
	}
	return s
}
