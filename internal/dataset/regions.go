package dataset

import (
	"io"
	"sort"
	"strings"
)

// RegionEntry is one row of the NOC to region table.
type RegionEntry struct {
	NOC    string
	Region string
}

// Regions resolves NOC codes to region names. Several NOCs may share one
// region; the reverse lookup returns the first NOC listed for it.
type Regions struct {
	byNOC    map[string]string
	firstNOC map[string]string
}

// NewRegions builds a lookup from table rows in file order. Rows with an
// empty region leave their NOC unresolved.
func NewRegions(entries []RegionEntry) *Regions {
	r := &Regions{
		byNOC:    make(map[string]string, len(entries)),
		firstNOC: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		noc := strings.TrimSpace(e.NOC)
		region := strings.TrimSpace(e.Region)
		if noc == "" || region == "" {
			continue
		}
		if _, dup := r.byNOC[noc]; !dup {
			r.byNOC[noc] = region
		}
		if _, seen := r.firstNOC[region]; !seen {
			r.firstNOC[region] = noc
		}
	}
	return r
}

// ParseRegions reads the NOC to region CSV. The region column may be
// spelled "Region" or "region".
func ParseRegions(r io.Reader) (*Regions, error) {
	df, err := readFrame(r, "regions")
	if err != nil {
		return nil, err
	}
	cols, err := df.columns("NOC", "Region")
	if err != nil {
		return nil, err
	}
	nocs, names := cols["NOC"], cols["Region"]
	entries := make([]RegionEntry, len(nocs))
	for i := range nocs {
		entries[i] = RegionEntry{NOC: nocs[i], Region: clean(names[i])}
	}
	return NewRegions(entries), nil
}

// Region returns the region of noc.
func (r *Regions) Region(noc string) (string, bool) {
	name, ok := r.byNOC[noc]
	return name, ok
}

// NOC returns the first NOC listed for region.
func (r *Regions) NOC(region string) (string, bool) {
	noc, ok := r.firstNOC[region]
	return noc, ok
}

// Len returns the number of resolvable NOCs.
func (r *Regions) Len() int { return len(r.byNOC) }

// Names returns every region name, sorted.
func (r *Regions) Names() []string {
	out := make([]string, 0, len(r.firstNOC))
	for name := range r.firstNOC {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
