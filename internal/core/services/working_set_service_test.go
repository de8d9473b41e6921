package services

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/cache"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCategories struct{ portsrepo.CategoryReader }

func (stubCategories) ListCategories(context.Context, string, bool) ([]domain.Category, error) {
	return nil, nil
}

type stubLineItems struct{ portsrepo.LineItemReader }

func (stubLineItems) ListLineItems(context.Context, string, string, bool) ([]domain.LineItem, error) {
	return nil, nil
}

type stubVersions struct{ portsrepo.VersionReader }

func (stubVersions) ListVersions(context.Context, string, int) ([]domain.Version, error) {
	return nil, nil
}

// stubData calls during before returning, like a write committed while the set loads.
type stubData struct {
	portsrepo.BudgetDataReader
	during func()
}

func (d stubData) ListDataPoints(context.Context, string, int) ([]domain.BudgetDataPoint, error) {
	if d.during != nil {
		d.during()
	}
	return nil, nil
}

func newTestWorkingSetService(t *testing.T, data stubData) (*workingSetService, *cache.WorkingSetCache) {
	t.Helper()
	c, err := cache.NewWorkingSetCache(1000, time.Minute)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	svc := NewWorkingSetService(WorkingSetRepos{
		Categories: stubCategories{},
		LineItems:  stubLineItems{},
		Data:       data,
		Versions:   stubVersions{},
	}, c).(*workingSetService)
	return svc, c
}

func TestWorkingSet_LoadIsCached(t *testing.T) {
	svc, c := newTestWorkingSetService(t, stubData{})

	ws, err := svc.LoadWorkingSet(context.Background(), "org-1", 2025)
	require.NoError(t, err)

	cached, ok := c.Get("org-1", 2025)
	require.True(t, ok)
	assert.Same(t, ws, cached)

	svc.Invalidate("org-1")
	_, ok = c.Get("org-1", 2025)
	assert.False(t, ok)
}

func TestWorkingSet_InvalidateDuringLoadIsNotCached(t *testing.T) {
	var svc *workingSetService
	svc, c := newTestWorkingSetService(t, stubData{during: func() { svc.Invalidate("org-1") }})

	ws, err := svc.LoadWorkingSet(context.Background(), "org-1", 2025)
	require.NoError(t, err)
	require.NotNil(t, ws)

	_, ok := c.Get("org-1", 2025)
	assert.False(t, ok, "a set loaded before the invalidation must not be cached")
}

func TestWorkingSet_CacheIfCurrent(t *testing.T) {
	svc, c := newTestWorkingSetService(t, stubData{})
	ws := &domain.BudgetWorkingSet{OrganizationID: "org-1", Year: 2025}

	stale := svc.generation("org-1")
	svc.Invalidate("org-1")
	assert.False(t, svc.cacheIfCurrent(ws, stale))
	_, ok := c.Get("org-1", 2025)
	assert.False(t, ok)

	assert.True(t, svc.cacheIfCurrent(ws, svc.generation("org-1")))
	_, ok = c.Get("org-1", 2025)
	assert.True(t, ok)
}
