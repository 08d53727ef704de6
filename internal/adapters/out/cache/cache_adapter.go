package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/ports/out"
)

type daySnapshotCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, *domain.DaySnapshot]
}

type rosterCache struct {
	mu        sync.RWMutex
	employees []domain.Employee
	timestamp time.Time
	ttl       time.Duration
}

type CacheAdapter struct {
	daySnapshots *daySnapshotCache
	roster       *rosterCache
	logger       out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruDayCache, err := lru.New[string, *domain.DaySnapshot](cfg.Cache.DaysSize)
	if err != nil {
		logger.Error("cache.days.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.DaysSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		daySnapshots: &daySnapshotCache{cache: lruDayCache},
		roster:       &rosterCache{ttl: cfg.Cache.RosterTTL},
		logger:       logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetDaySnapshot(ctx context.Context, dateKey string) (*domain.DaySnapshot, bool) {
	c.daySnapshots.mu.RLock()
	defer c.daySnapshots.mu.RUnlock()

	snapshot, exists := c.daySnapshots.cache.Get(dateKey)
	if !exists {
		c.logger.Debug("cache.day.get.miss", out.LogFields{
			"date": dateKey,
		})
		return nil, false
	}

	c.logger.Debug("cache.day.get.hit", out.LogFields{
		"date":              dateKey,
		"appointmentsCount": len(snapshot.Appointments),
	})
	return snapshot, true
}

func (c *CacheAdapter) StoreDaySnapshot(ctx context.Context, dateKey string, snapshot domain.DaySnapshot) {
	c.daySnapshots.mu.Lock()
	defer c.daySnapshots.mu.Unlock()

	c.logger.Debug("cache.day.store", out.LogFields{
		"date":              dateKey,
		"appointmentsCount": len(snapshot.Appointments),
		"timeRecordsCount":  len(snapshot.TimeRecords),
	})

	c.daySnapshots.cache.Add(dateKey, &snapshot)
}

func (c *CacheAdapter) InvalidateDay(ctx context.Context, dateKey string) {
	c.daySnapshots.mu.Lock()
	defer c.daySnapshots.mu.Unlock()

	c.logger.Debug("cache.day.invalidate", out.LogFields{
		"date": dateKey,
	})

	c.daySnapshots.cache.Remove(dateKey)
}

func (c *CacheAdapter) InvalidateAllDays(ctx context.Context) {
	c.daySnapshots.mu.Lock()
	defer c.daySnapshots.mu.Unlock()

	c.daySnapshots.cache.Purge()
}

func (c *CacheAdapter) GetRoster(ctx context.Context) ([]domain.Employee, bool) {
	c.roster.mu.RLock()
	defer c.roster.mu.RUnlock()

	if c.roster.employees == nil || time.Since(c.roster.timestamp) > c.roster.ttl {
		return nil, false
	}

	return c.roster.employees, true
}

func (c *CacheAdapter) StoreRoster(ctx context.Context, employees []domain.Employee) {
	c.roster.mu.Lock()
	defer c.roster.mu.Unlock()

	c.roster.employees = employees
	c.roster.timestamp = time.Now()
}

func (c *CacheAdapter) InvalidateRoster(ctx context.Context) {
	c.roster.mu.Lock()
	defer c.roster.mu.Unlock()

	c.roster.employees = nil
	c.roster.timestamp = time.Time{}
}
