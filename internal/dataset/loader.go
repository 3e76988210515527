package dataset

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

// Load reads the athlete-events file and the region file concurrently and
// builds the normalized Dataset.
func Load(ctx context.Context, athletesPath, regionsPath string) (*Dataset, error) {
	var (
		records []model.AthleteRecord
		regions *Regions
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return withFile(ctx, athletesPath, func(r io.Reader) error {
			var err error
			records, err = parseAthletes(r)
			return err
		})
	})
	g.Go(func() error {
		return withFile(ctx, regionsPath, func(r io.Reader) error {
			var err error
			regions, err = ParseRegions(r)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return New(records, regions), nil
}

// Parse builds a Dataset from already opened CSV streams.
func Parse(athletes, regions io.Reader) (*Dataset, error) {
	reg, err := ParseRegions(regions)
	if err != nil {
		return nil, err
	}
	records, err := parseAthletes(athletes)
	if err != nil {
		return nil, err
	}
	return New(records, reg), nil
}

func withFile(ctx context.Context, path string, fn func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrData, err)
	}
	defer f.Close()
	return fn(f)
}

func parseAthletes(r io.Reader) ([]model.AthleteRecord, error) {
	df, err := readFrame(r, "athletes")
	if err != nil {
		return nil, err
	}
	cols, err := df.columns("Name", "Sex|Gender", "Age", "NOC", "Year", "Sport", "Event", "Medal")
	if err != nil {
		return nil, err
	}
	seasons := df.optional("Season")

	n := len(cols["Name"])
	out := make([]model.AthleteRecord, n)
	for i := 0; i < n; i++ {
		year, err := strconv.Atoi(clean(cols["Year"][i]))
		if err != nil {
			// +2: header line and 1-based numbering.
			return nil, fmt.Errorf("%w: athletes: line %d: invalid Year %q", ErrData, i+2, cols["Year"][i])
		}
		gender, _ := model.ParseGender(cols["Sex"][i])
		age, ageKnown := parseAge(cols["Age"][i])
		sport := clean(cols["Sport"][i])

		rec := model.AthleteRecord{
			Name:     clean(cols["Name"][i]),
			Gender:   gender,
			Age:      age,
			AgeKnown: ageKnown,
			NOC:      clean(cols["NOC"][i]),
			Year:     year,
			Sport:    sport,
			Event:    NormalizeEvent(sport, clean(cols["Event"][i])),
			Medal:    model.ParseMedal(cols["Medal"][i]),
		}
		if seasons != nil {
			rec.Season = clean(seasons[i])
		}
		out[i] = rec
	}
	return out, nil
}

// parseAge accepts integers and integral floats ("24.0"). Anything else,
// including negatives, is an unknown age.
func parseAge(raw string) (int, bool) {
	s := clean(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
