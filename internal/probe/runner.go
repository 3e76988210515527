package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
)

// Run executes a complete sweep and returns its statistics. It fails when
// the dashboard is unhealthy or any chart breaks an invariant.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting dashboard probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout),
		logger.String("mode", config.Mode),
		logger.String("country", config.Country),
		logger.Bool("verbose", config.Verbose))

	client := newHTTPClient(config.BaseURL, config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Pick the sports
	sports := config.Sports
	if len(sports) == 0 {
		var err error
		if sports, err = listSports(ctx, client); err != nil {
			return stats, fmt.Errorf("filter options retrieval failed: %w", err)
		}
	}

	// Step 3: Sweep them concurrently
	if err := sweep(ctx, config, client, sports, stats); err != nil {
		return stats, fmt.Errorf("sweep interrupted: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Violations > 0 {
		return stats, fmt.Errorf("%w: %d charts", ErrViolation, stats.Violations)
	}
	log.Info(ctx, "probe completed successfully")
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, "/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(ctx, "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 is healthy; the body is the Prometheus exposition
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	var requestsPerSecond float64
	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.Requests) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("sportsSwept", stats.SportsSwept),
		logger.Int("requests", stats.Requests),
		logger.Int("ok", stats.OK),
		logger.Int("noData", stats.NoData),
		logger.Int("failed", stats.Failed),
		logger.Int("violations", stats.Violations),
		logger.Duration("duration", stats.Duration),
		logger.Float64("requestsPerSecond", requestsPerSecond))
}
