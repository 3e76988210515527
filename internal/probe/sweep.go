package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
)

// counters are shared by the sweep workers.
type counters struct {
	requests   atomic.Int64
	ok         atomic.Int64
	noData     atomic.Int64
	failed     atomic.Int64
	violations atomic.Int64
}

// sweep requests the checked charts of every sport with a bounded number of
// workers. Request failures and violations are counted, not returned; only
// cancellation stops the sweep early.
func sweep(ctx context.Context, config *Config, client *HTTPClient, sports []string, stats *Stats) error {
	log := logger.Get()
	log.Info(ctx, "sweeping sports",
		logger.Int("sports", len(sports)),
		logger.Int("workers", config.Workers))

	var c counters
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(config.Workers, 1))

	for _, sport := range sports {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			checkSport(gctx, config, client, sport, &c)
			return gctx.Err()
		})
	}
	err := g.Wait()

	stats.SportsSwept = len(sports)
	stats.Requests = int(c.requests.Load())
	stats.OK = int(c.ok.Load())
	stats.NoData = int(c.noData.Load())
	stats.Failed = int(c.failed.Load())
	stats.Violations = int(c.violations.Load())

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// checkSport verifies the performance flow and the age distribution of one
// sport.
func checkSport(ctx context.Context, config *Config, client *HTTPClient, sport string, c *counters) {
	log := logger.Get()
	relative := config.Mode == "Relative"

	query := url.Values{}
	query.Set("sport", sport)
	query.Set("mode", config.Mode)

	checks := []struct {
		path   string
		query  url.Values
		verify func(json.RawMessage) error
	}{
		{
			path:  "/api/charts/performance",
			query: withCountry(query, config.Country),
			verify: func(raw json.RawMessage) error {
				var f flow
				if err := json.Unmarshal(raw, &f); err != nil {
					return err
				}
				return verifyFlow(f, relative)
			},
		},
		{
			path:  "/api/charts/age-distribution",
			query: query,
			verify: func(raw json.RawMessage) error {
				if !relative {
					return nil
				}
				var d ageDistribution
				if err := json.Unmarshal(raw, &d); err != nil {
					return err
				}
				return verifyAgeShares(d)
			},
		},
	}

	for _, check := range checks {
		c.requests.Add(1)
		env, err := client.envelope(ctx, check.path, check.query)
		if err != nil {
			c.failed.Add(1)
			log.Warn(ctx, "chart request failed",
				logger.String("sport", sport),
				logger.String("path", check.path),
				logger.Error(err))
			continue
		}
		if env.Status == statusNoData {
			c.noData.Add(1)
			continue
		}
		c.ok.Add(1)
		if err := check.verify(env.Data); err != nil {
			c.violations.Add(1)
			log.Error(ctx, "chart violates invariant",
				logger.String("sport", sport),
				logger.String("path", check.path),
				logger.Error(err))
			continue
		}
		if config.Verbose {
			log.Info(ctx, "chart verified",
				logger.String("sport", sport),
				logger.String("path", check.path),
				logger.String("sizeColumn", env.SizeColumn))
		}
	}
}

func withCountry(q url.Values, country string) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	if country != "" {
		out.Set("country", country)
	}
	return out
}

// listSports asks the dashboard which sports it offers.
func listSports(ctx context.Context, client *HTTPClient) ([]string, error) {
	env, err := client.envelope(ctx, "/api/filters", nil)
	if err != nil {
		return nil, err
	}
	var opts options
	if err := json.Unmarshal(env.Data, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode filter options: %w", err)
	}
	return opts.Sports, nil
}
