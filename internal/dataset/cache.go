package dataset

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
	"github.com/alexdes2202/inf8808-team7-deploy/pkg/metrics"
)

const cacheKey = "dataset"

// Cache loads the Dataset at most once per process. Concurrent first
// callers share one load; a failed load is not remembered.
type Cache struct {
	athletesPath string
	regionsPath  string
	log          logger.Logger
	load         func(ctx context.Context, athletesPath, regionsPath string) (*Dataset, error)

	group singleflight.Group
	mu    sync.RWMutex
	ds    *Dataset
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used to report loads.
func WithLogger(l logger.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCache returns a Cache reading the two given files.
func NewCache(athletesPath, regionsPath string, opts ...CacheOption) *Cache {
	c := &Cache{
		athletesPath: athletesPath,
		regionsPath:  regionsPath,
		load:         Load,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the memoized Dataset, loading it on first use.
func (c *Cache) Get(ctx context.Context) (*Dataset, error) {
	c.mu.RLock()
	ds := c.ds
	c.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	v, err, _ := c.group.Do(cacheKey, func() (any, error) {
		c.mu.RLock()
		cached := c.ds
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		start := time.Now()
		loaded, err := c.load(ctx, c.athletesPath, c.regionsPath)
		elapsed := time.Since(start)
		metrics.RecordDatasetLoad(float64(elapsed.Milliseconds()), err)
		if err != nil {
			if c.log != nil {
				c.log.Error(ctx, "dataset load failed",
					logger.String("athletes", c.athletesPath),
					logger.String("regions", c.regionsPath),
					logger.Error(err))
			}
			return nil, err
		}

		st := loaded.Stats()
		metrics.SetDatasetShape(st.Rows, st.Athletes, len(st.UnresolvedNOCs))
		if c.log != nil {
			c.log.Info(ctx, "dataset loaded",
				logger.Int("rows", st.Rows),
				logger.Int("athletes", st.Athletes),
				logger.Int("sports", st.Sports),
				logger.Strings("unresolved_nocs", st.UnresolvedNOCs),
				logger.Duration("took", elapsed))
		}

		c.mu.Lock()
		c.ds = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}
