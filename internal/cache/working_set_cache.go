// Package cache keeps loaded budget working sets in memory between requests.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/dgraph-io/ristretto"
)

// WorkingSetCache stores working sets keyed by organization and year.
// A nil *WorkingSetCache is valid and caches nothing.
type WorkingSetCache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	// keys per organization, so every year of an organization can be dropped at once
	mu   sync.Mutex
	keys map[string]map[string]struct{}
}

// NewWorkingSetCache creates a cache bounded by maxCost, where a working set costs one
// unit per category, line item and data point it holds. A ttl of zero keeps entries
// until they are evicted or invalidated.
func NewWorkingSetCache(maxCost int64, ttl time.Duration) (*WorkingSetCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10, // number of keys to track frequency of
		MaxCost:     maxCost,
		BufferItems: 64, // number of keys per Get buffer
		// costs are counted in records, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize working set cache: %w", err)
	}
	return &WorkingSetCache{
		cache: c,
		ttl:   ttl,
		keys:  make(map[string]map[string]struct{}),
	}, nil
}

func cacheKey(organizationID string, year int) string {
	return fmt.Sprintf("ws:%s:%d", organizationID, year)
}

// Cost is the cache weight of a working set.
func Cost(ws *domain.BudgetWorkingSet) int64 {
	return int64(1 + len(ws.Categories) + len(ws.LineItems) + len(ws.Points))
}

// Get returns the cached working set for organizationID/year.
func (c *WorkingSetCache) Get(organizationID string, year int) (*domain.BudgetWorkingSet, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.cache.Get(cacheKey(organizationID, year))
	if !ok {
		return nil, false
	}
	ws, ok := v.(*domain.BudgetWorkingSet)
	return ws, ok
}

// Set stores ws and waits until it is visible to Get.
func (c *WorkingSetCache) Set(ws *domain.BudgetWorkingSet) {
	if c == nil || ws == nil {
		return
	}
	key := cacheKey(ws.OrganizationID, ws.Year)

	c.mu.Lock()
	orgKeys, ok := c.keys[ws.OrganizationID]
	if !ok {
		orgKeys = make(map[string]struct{})
		c.keys[ws.OrganizationID] = orgKeys
	}
	orgKeys[key] = struct{}{}
	c.mu.Unlock()

	if c.ttl > 0 {
		c.cache.SetWithTTL(key, ws, Cost(ws), c.ttl)
	} else {
		c.cache.Set(key, ws, Cost(ws))
	}
	c.cache.Wait()
}

// DeleteOrganization drops every cached year of organizationID.
func (c *WorkingSetCache) DeleteOrganization(organizationID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	for key := range c.keys[organizationID] {
		c.cache.Del(key)
	}
	delete(c.keys, organizationID)
	c.mu.Unlock()
}

// Close stops the cache's background goroutines.
func (c *WorkingSetCache) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
