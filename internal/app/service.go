// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/dataset"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/filter"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/ranking"
	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/sankey"
	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
)

// Source hands out the loaded dataset. *dataset.Cache satisfies it.
type Source interface {
	Get(ctx context.Context) (*dataset.Dataset, error)
}

type staticSource struct{ ds *dataset.Dataset }

func (s staticSource) Get(context.Context) (*dataset.Dataset, error) { return s.ds, nil }

// Service answers chart queries over one immutable dataset.
type Service struct {
	mu sync.RWMutex

	source Source
	ds     *dataset.Dataset

	// Configuration
	topK           int
	hallOfFameSize int
	minEditionYear int

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets where the dataset is loaded from.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithDataset serves an already loaded dataset.
func WithDataset(ds *dataset.Dataset) Option {
	return func(s *Service) {
		if ds != nil {
			s.source = staticSource{ds: ds}
		}
	}
}

// WithTopK sets how many leading countries the performance chart shows.
func WithTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithHallOfFameSize sets how many athletes the hall of fame lists.
func WithHallOfFameSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.hallOfFameSize = n
		}
	}
}

// WithMinEditionYear sets the earliest edition offered in the year picker.
func WithMinEditionYear(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.minEditionYear = year
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		topK:           sankey.DefaultTopK,
		hallOfFameSize: ranking.DefaultHallOfFameSize,
		minEditionYear: 1999,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset. A load failure is returned as is and leaves the
// service stopped.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.source == nil {
		return ErrNotStarted
	}

	s.logger.Info(ctx, "starting dashboard service...")

	ds, err := s.source.Get(ctx)
	if err != nil {
		return err
	}
	s.ds = ds

	s.started = true
	st := ds.Stats()
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("rows", st.Rows),
		logger.Int("topK", s.topK),
		logger.Int("hallOfFameSize", s.hallOfFameSize),
		logger.Int("minEditionYear", s.minEditionYear),
	)

	return nil
}

// Stop releases the dataset.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.ds = nil
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

func (s *Service) loaded() (*dataset.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.ds, nil
}

// ParseFilter validates raw selections against the loaded region table.
func (s *Service) ParseFilter(ctx context.Context, raw filter.Raw) (filter.Filter, error) {
	ds, err := s.loaded()
	if err != nil {
		return filter.Filter{}, err
	}
	f, err := filter.Parse(raw, ds)
	if err != nil {
		s.logger.Debug(ctx, "rejected selection", logger.Error(err))
	}
	return f, err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"topK":           s.topK,
		"hallOfFameSize": s.hallOfFameSize,
		"minEditionYear": s.minEditionYear,
	}

	if s.started {
		st := s.ds.Stats()
		stats["rows"] = st.Rows
		stats["athletes"] = st.Athletes
		stats["sports"] = st.Sports
		stats["regions"] = st.Regions
		stats["unresolvedNOCs"] = st.UnresolvedNOCs
		stats["firstYear"] = st.FirstYear
		stats["lastYear"] = st.LastYear
	}

	return stats
}
