package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/dataset"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/agegroup"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/aggregate"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/filter"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/ranking"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/sankey"
	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
	"github.com/alexdes2202/inf8808-team7-deploy/pkg/metrics"
)

// Chart names, used as metric labels and log fields.
const (
	ChartAgeDistribution   = "age_distribution"
	ChartEventAge          = "event_age"
	ChartMedalAge          = "medal_age"
	ChartPerformance       = "performance"
	ChartGenderEvents      = "gender_events"
	ChartGenderRatio       = "gender_ratio"
	ChartParticipationOdds = "participation_odds"
	ChartCareerSpan        = "career_span"
	ChartHallOfFame        = "hall_of_fame"
	ChartAthleteRank       = "athlete_rank"
)

// Informational messages attached to empty charts.
const (
	MessageNoData        = "No data available for the selected filters."
	MessageNoCountryData = "No data available for the selected country. However, here are the top countries:"
)

// Chart is one finished table with its display hints.
type Chart[T any] struct {
	Data       T
	SizeColumn string
	Empty      bool
	Message    string
}

func ready[T any](data T, empty bool, sizeColumn string) Chart[T] {
	c := Chart[T]{Data: data, SizeColumn: sizeColumn, Empty: empty}
	if empty {
		c.Message = MessageNoData
	}
	return c
}

// observe times one chart computation and records it.
func observe[T any](ctx context.Context, s *Service, chart string, f filter.Filter, build func(*dataset.Dataset) (Chart[T], error)) (Chart[T], error) {
	start := time.Now()
	ds, err := s.loaded()
	if err != nil {
		return Chart[T]{}, err
	}
	c, err := build(ds)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordErrorByComponent("service", chart)
		s.logger.Debug(ctx, "chart not built",
			logger.String("chart", chart),
			logger.String("sport", f.Sport),
			logger.Error(err),
		)
		return Chart[T]{}, err
	}
	metrics.RecordChart(chart, float64(elapsed.Microseconds())/1000, c.Empty)
	s.logger.Debug(ctx, "chart built",
		logger.String("chart", chart),
		logger.String("sport", f.Sport),
		logger.String("country", f.Country),
		logger.String("mode", f.Mode.String()),
		logger.Bool("empty", c.Empty),
		logger.Duration("took", elapsed),
	)
	return c, nil
}

// bySport returns the rows of the selected sport, narrowed to the selected
// sex when withSex is set.
func bySport(ds *dataset.Dataset, f filter.Filter, withSex bool) []model.AthleteRecord {
	return ds.Filter(func(r model.AthleteRecord) bool {
		if r.Sport != f.Sport {
			return false
		}
		return !withSex || f.Sex == model.GenderUnknown || r.Gender == f.Sex
	})
}

// AgeDistribution is the year by age-group bubble chart.
type AgeDistribution struct {
	Counts       []aggregate.YearAgeCount   `json:"counts"`
	AverageAge   []aggregate.YearAverageAge `json:"average_age,omitempty"`
	UserAgeGroup *agegroup.Group            `json:"user_age_group,omitempty"`
}

func userGroup(f filter.Filter) *agegroup.Group {
	if g, ok := f.AgeGroup(); ok {
		return &g
	}
	return nil
}

// AgeDistribution counts participations per edition and age group of the
// selected sport.
func (s *Service) AgeDistribution(ctx context.Context, f filter.Filter) (Chart[AgeDistribution], error) {
	return observe(ctx, s, ChartAgeDistribution, f, func(ds *dataset.Dataset) (Chart[AgeDistribution], error) {
		if !f.HasSport() {
			return Chart[AgeDistribution]{}, ErrSportRequired
		}
		records := bySport(ds, f, true)
		out := AgeDistribution{
			Counts:       aggregate.ByYearAndAgeGroup(records),
			UserAgeGroup: userGroup(f),
		}
		size := aggregate.NormalizeByYear(out.Counts, f.Mode)
		if f.ShowAverage {
			out.AverageAge = aggregate.AverageAgeByYear(records)
		}
		return ready(out, len(out.Counts) == 0, size), nil
	})
}

// EventAge is the age evolution of one event, or of every event of a sport.
type EventAge struct {
	Events []string                 `json:"events"`
	Event  string                   `json:"event"`
	Counts []aggregate.YearAgeCount `json:"counts"`
}

// EventAgeEvolution counts participations per edition and age group of the
// selected event.
func (s *Service) EventAgeEvolution(ctx context.Context, f filter.Filter) (Chart[EventAge], error) {
	return observe(ctx, s, ChartEventAge, f, func(ds *dataset.Dataset) (Chart[EventAge], error) {
		if !f.HasSport() {
			return Chart[EventAge]{}, ErrSportRequired
		}
		records := bySport(ds, f, true)
		if f.Event != "" {
			kept := records[:0]
			for _, r := range records {
				if r.Event == f.Event {
					kept = append(kept, r)
				}
			}
			records = kept
		}
		out := EventAge{
			Events: ds.Events(f.Sport),
			Event:  f.Event,
			Counts: aggregate.ByYearAndAgeGroup(records),
		}
		size := aggregate.NormalizeByYear(out.Counts, f.Mode)
		return ready(out, len(out.Counts) == 0, size), nil
	})
}

// MedalAge is the medal by age-group bubble chart.
type MedalAge struct {
	Counts       []aggregate.MedalAgeCount `json:"counts"`
	UserAgeGroup *agegroup.Group           `json:"user_age_group,omitempty"`
}

// MedalAgeDistribution counts medals per type and age group of the selected
// sport.
func (s *Service) MedalAgeDistribution(ctx context.Context, f filter.Filter) (Chart[MedalAge], error) {
	return observe(ctx, s, ChartMedalAge, f, func(ds *dataset.Dataset) (Chart[MedalAge], error) {
		if !f.HasSport() {
			return Chart[MedalAge]{}, ErrSportRequired
		}
		out := MedalAge{
			Counts:       aggregate.ByMedalAndAgeGroup(bySport(ds, f, true)),
			UserAgeGroup: userGroup(f),
		}
		return ready(out, len(out.Counts) == 0, aggregate.SizeCount), nil
	})
}

// Performance builds the country to outcome flow of the selected sport.
// When the user's country has no data the leaders are still returned, with
// an informational message.
func (s *Service) Performance(ctx context.Context, f filter.Filter) (Chart[sankey.Flow], error) {
	return observe(ctx, s, ChartPerformance, f, func(ds *dataset.Dataset) (Chart[sankey.Flow], error) {
		if !f.HasSport() {
			return Chart[sankey.Flow]{}, ErrSportRequired
		}
		if !f.HasCountry() {
			return Chart[sankey.Flow]{}, ErrCountryRequired
		}
		flow, err := sankey.Build(bySport(ds, f, false), sankey.Params{
			Sport:   f.Sport,
			Year:    f.Year,
			Country: f.Country,
			Mode:    f.Mode,
			TopK:    s.topK,
		})
		size := aggregate.SizeCount
		if f.Mode == model.Relative {
			size = aggregate.SizePercentage
		}
		if errors.Is(err, sankey.ErrNoData) {
			return ready(sankey.Flow{}, true, size), nil
		}
		if err != nil {
			return Chart[sankey.Flow]{}, err
		}
		c := ready(flow, false, size)
		if !flow.CountryHasData {
			c.Message = MessageNoCountryData
		}
		return c, nil
	})
}

// GenderEvents counts men's and women's entries per event of the selected
// sport.
func (s *Service) GenderEvents(ctx context.Context, f filter.Filter) (Chart[[]aggregate.EventGenderCount], error) {
	return observe(ctx, s, ChartGenderEvents, f, func(ds *dataset.Dataset) (Chart[[]aggregate.EventGenderCount], error) {
		if !f.HasSport() {
			return Chart[[]aggregate.EventGenderCount]{}, ErrSportRequired
		}
		rows := aggregate.EventsByGender(bySport(ds, f, false))
		return ready(rows, len(rows) == 0, aggregate.SizeCount), nil
	})
}

// GenderRatio is the gender split per edition, long and pivoted.
type GenderRatio struct {
	Counts []aggregate.GenderYearCount `json:"counts"`
	Ratios []aggregate.GenderRatio     `json:"ratios"`
}

// GenderRatio splits participations of the selected sport by gender per
// edition.
func (s *Service) GenderRatio(ctx context.Context, f filter.Filter) (Chart[GenderRatio], error) {
	return observe(ctx, s, ChartGenderRatio, f, func(ds *dataset.Dataset) (Chart[GenderRatio], error) {
		if !f.HasSport() {
			return Chart[GenderRatio]{}, ErrSportRequired
		}
		records := bySport(ds, f, false)
		out := GenderRatio{
			Counts: aggregate.GenderByYear(records),
			Ratios: aggregate.GenderRatioByYear(records),
		}
		return ready(out, len(out.Ratios) == 0, aggregate.SizePercentage), nil
	})
}

// ParticipationOdds is the outcome of athletes by how many Games they had
// attended.
type ParticipationOdds struct {
	Odds      []ranking.Odds                       `json:"odds"`
	Status    []aggregate.ParticipationStatusCount `json:"status"`
	Breakdown []aggregate.SportParticipationMedals `json:"breakdown"`
}

// ParticipationOdds computes the odds of a medal per participation index in
// the selected sport.
func (s *Service) ParticipationOdds(ctx context.Context, f filter.Filter) (Chart[ParticipationOdds], error) {
	return observe(ctx, s, ChartParticipationOdds, f, func(ds *dataset.Dataset) (Chart[ParticipationOdds], error) {
		if !f.HasSport() {
			return Chart[ParticipationOdds]{}, ErrSportRequired
		}
		records := bySport(ds, f, false)
		out := ParticipationOdds{
			Odds:      ranking.ParticipationOdds(records),
			Status:    aggregate.ByParticipationAndStatus(records),
			Breakdown: aggregate.BySportParticipationMedal(records),
		}
		return ready(out, len(out.Odds) == 0, aggregate.SizePercentage), nil
	})
}

// CareerSpan compares the age span of every sport, flagging the selected
// one.
func (s *Service) CareerSpan(ctx context.Context, f filter.Filter) (Chart[[]aggregate.AgeSpan], error) {
	return observe(ctx, s, ChartCareerSpan, f, func(ds *dataset.Dataset) (Chart[[]aggregate.AgeSpan], error) {
		if !f.HasSport() {
			return Chart[[]aggregate.AgeSpan]{}, ErrSportRequired
		}
		rows := aggregate.AgeSpanBySport(ds.Records(), f.Sport)
		return ready(rows, len(rows) == 0, aggregate.SizeCount), nil
	})
}

// HallOfFame lists the most decorated athletes of the selected sport.
func (s *Service) HallOfFame(ctx context.Context, f filter.Filter) (Chart[ranking.HallOfFame], error) {
	return observe(ctx, s, ChartHallOfFame, f, func(ds *dataset.Dataset) (Chart[ranking.HallOfFame], error) {
		if !f.HasSport() {
			return Chart[ranking.HallOfFame]{}, ErrSportRequired
		}
		hof, err := ranking.TopAthletes(bySport(ds, f, false), s.hallOfFameSize)
		if err != nil {
			return Chart[ranking.HallOfFame]{}, err
		}
		return ready(hof, len(hof.Entries) == 0, aggregate.SizeCount), nil
	})
}

// AthleteRank returns the standing of one athlete in the selected sport, or
// across every sport when none is selected.
func (s *Service) AthleteRank(ctx context.Context, f filter.Filter, name string) (Chart[ranking.Standing], error) {
	return observe(ctx, s, ChartAthleteRank, f, func(ds *dataset.Dataset) (Chart[ranking.Standing], error) {
		records := ds.Filter(func(r model.AthleteRecord) bool {
			return r.Medal.Won() && (!f.HasSport() || r.Sport == f.Sport)
		})
		st, err := ranking.NewBoard(records).Rank(name)
		if err != nil {
			return Chart[ranking.Standing]{}, err
		}
		return ready(st, false, aggregate.SizeCount), nil
	})
}

// Options lists every value the dashboard pickers may offer.
type Options struct {
	Sports    []string `json:"sports"`
	Countries []string `json:"countries"`
	Editions  []int    `json:"editions"`
	Events    []string `json:"events"`
	Modes     []string `json:"modes"`
	AgeGroups []string `json:"age_groups"`
}

// FilterOptions returns the picker values. Events are listed only when a
// sport is selected.
func (s *Service) FilterOptions(ctx context.Context, f filter.Filter) (Options, error) {
	ds, err := s.loaded()
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		Sports:    append([]string(nil), filter.Sports...),
		Countries: ds.Regions(),
		Editions:  ds.EditionsSince(s.minEditionYear),
		Events:    []string{},
		Modes:     []string{model.Absolute.String(), model.Relative.String()},
	}
	if f.HasSport() {
		opts.Events = ds.Events(f.Sport)
	}
	for _, g := range agegroup.All() {
		opts.AgeGroups = append(opts.AgeGroups, g.Label())
	}
	s.logger.Debug(ctx, "filter options listed",
		logger.Int("countries", len(opts.Countries)),
		logger.Int("editions", len(opts.Editions)),
		logger.Int("events", len(opts.Events)),
	)
	return opts, nil
}
