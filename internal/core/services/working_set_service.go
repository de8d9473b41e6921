package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/cache"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// WorkingSetRepos are the readers a working set is assembled from.
type WorkingSetRepos struct {
	Categories portsrepo.CategoryReader
	LineItems  portsrepo.LineItemReader
	Data       portsrepo.BudgetDataReader
	Versions   portsrepo.VersionReader
}

// workingSetService implements the WorkingSetSvc interface
type workingSetService struct {
	BaseService
	repos WorkingSetRepos
	cache *cache.WorkingSetCache
	now   func() time.Time

	// generation per organization; a load that raced with an invalidation is not cached.
	// mu also orders cache writes against invalidations.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewWorkingSetService creates a working set service. A nil cache disables caching.
func NewWorkingSetService(repos WorkingSetRepos, wsCache *cache.WorkingSetCache, options ...Option) portssvc.WorkingSetSvc {
	svc := &workingSetService{
		repos:       repos,
		cache:       wsCache,
		now:         time.Now,
		generations: make(map[string]uint64),
	}
	svc.apply(options)
	return svc
}

var _ portssvc.WorkingSetSvc = (*workingSetService)(nil)

func (s *workingSetService) LoadWorkingSet(ctx context.Context, organizationID string, year int) (*domain.BudgetWorkingSet, error) {
	if ws, ok := s.cache.Get(organizationID, year); ok {
		s.LogDebug(ctx, "Working set served from cache",
			slog.String("organization_id", organizationID),
			slog.Int("year", year))
		return ws, nil
	}
	return s.load(ctx, organizationID, year)
}

func (s *workingSetService) Reload(ctx context.Context, organizationID string, year int) (*domain.BudgetWorkingSet, error) {
	s.Invalidate(organizationID)
	return s.load(ctx, organizationID, year)
}

func (s *workingSetService) Invalidate(organizationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[organizationID]++
	s.cache.DeleteOrganization(organizationID)
}

func (s *workingSetService) generation(organizationID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[organizationID]
}

// cacheIfCurrent stores ws unless the organization was invalidated after gen was read.
// Returns whether ws was stored.
func (s *workingSetService) cacheIfCurrent(ws *domain.BudgetWorkingSet, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[ws.OrganizationID] != gen {
		return false
	}
	s.cache.Set(ws)
	return true
}

func (s *workingSetService) load(ctx context.Context, organizationID string, year int) (*domain.BudgetWorkingSet, error) {
	gen := s.generation(organizationID)
	ws := &domain.BudgetWorkingSet{
		OrganizationID: organizationID,
		Year:           year,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := s.repos.Categories.ListCategories(gctx, organizationID, true)
		ws.Categories = categories
		return err
	})
	g.Go(func() error {
		items, err := s.repos.LineItems.ListLineItems(gctx, organizationID, "", true)
		ws.LineItems = items
		return err
	})
	g.Go(func() error {
		points, err := s.repos.Data.ListDataPoints(gctx, organizationID, year)
		ws.Points = points
		return err
	})
	g.Go(func() error {
		versions, err := s.repos.Versions.ListVersions(gctx, organizationID, year)
		for i := range versions {
			switch versions[i].VersionType {
			case domain.VersionBudget:
				ws.BudgetVersion = &versions[i]
			case domain.VersionForecast:
				ws.ForecastVersion = &versions[i]
			}
		}
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load working set",
			slog.String("organization_id", organizationID),
			slog.Int("year", year))
		return nil, err
	}
	ws.LoadedAt = s.now()

	s.cacheIfCurrent(ws, gen)

	s.LogDebug(ctx, "Working set loaded",
		slog.String("organization_id", organizationID),
		slog.Int("year", year),
		slog.Int("line_items", len(ws.LineItems)),
		slog.Int("points", len(ws.Points)))
	return ws, nil
}
