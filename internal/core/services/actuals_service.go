package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/utils/budgeting"
)

// actualsService implements the ActualsSvc interface
type actualsService struct {
	BaseService
	dataRepo   portsrepo.BudgetDataWriter
	workingSet portssvc.WorkingSetSvc
	now        func() time.Time
}

// NewActualsService creates a new actuals service. The working set service is
// both the data source and the cache invalidated after a close.
func NewActualsService(dataRepo portsrepo.BudgetDataWriter, workingSet portssvc.WorkingSetSvc, options ...Option) portssvc.ActualsSvc {
	svc := &actualsService{
		dataRepo:   dataRepo,
		workingSet: workingSet,
		now:        time.Now,
	}
	svc.WorkingSet = workingSet
	svc.apply(options)
	return svc
}

var _ portssvc.ActualsSvc = (*actualsService)(nil)

// LockMonthAsActual closes a month line item by line item. An already closed line item
// is skipped, a non-zero actual is kept, and otherwise the forecast becomes the actual.
// Each line item is written on its own so an interrupted run can simply be repeated.
func (s *actualsService) LockMonthAsActual(ctx context.Context, organizationID string, year int, month domain.Month, userID string) (*domain.MonthLockResult, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to close month",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	ws, err := s.workingSet.Reload(ctx, organizationID, year)
	if err != nil {
		return nil, err
	}
	points := ws.PointIndex()
	result := &domain.MonthLockResult{Year: year, Month: month}

	for _, li := range ws.ActiveLineItems() {
		if err := ctx.Err(); err != nil {
			s.InvalidateWorkingSet(organizationID)
			return result, err
		}

		point, ok := points[li.LineItemID][month]
		if ok && point.IsActualLocked() {
			result.AlreadyLocked++
			continue
		}

		now := s.now()
		actual := domain.BudgetDataPoint{
			OrganizationID: organizationID,
			LineItemID:     li.LineItemID,
			Year:           year,
			Month:          month,
			ActualLockedAt: &now,
			UpdatedAt:      now,
			UpdatedBy:      userID,
		}
		if ok && !point.ActualAmount.IsZero() {
			actual.ActualAmount = point.ActualAmount
			result.Preserved++
		} else {
			// an unwritten month has a zero forecast, which becomes a zero actual
			actual.ActualAmount = point.ForecastAmount
			result.Copied++
		}

		if err := s.dataRepo.UpsertValue(ctx, actual, domain.KindActuals); err != nil {
			s.LogError(ctx, err, "Failed to lock actual for line item",
				slog.String("organization_id", organizationID),
				slog.String("line_item_id", li.LineItemID),
				slog.Int("year", year),
				slog.Int("month", int(month)))
			s.InvalidateWorkingSet(organizationID)
			return result, fmt.Errorf("locking actual for line item %s: %w", li.LineItemID, err)
		}
	}
	s.InvalidateWorkingSet(organizationID)

	s.PublishEvent(ctx, domain.BudgetEvent{
		Type:           domain.EventMonthActualsLock,
		OrganizationID: organizationID,
		Year:           year,
		Month:          &month,
		UserID:         userID,
		Timestamp:      s.now(),
	})

	s.LogInfo(ctx, "Month locked as actual",
		slog.String("organization_id", organizationID),
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.Int("copied", result.Copied),
		slog.Int("preserved", result.Preserved),
		slog.Int("already_locked", result.AlreadyLocked))
	return result, nil
}

// IsMonthLocked reports whether every active line item has a closed actual for month
func (s *actualsService) IsMonthLocked(ctx context.Context, organizationID string, year int, month domain.Month, userID string) (bool, error) {
	if err := validateMonth(month); err != nil {
		return false, err
	}
	ws, err := s.load(ctx, organizationID, year, userID)
	if err != nil {
		return false, err
	}
	return budgeting.IsMonthLocked(ws, month), nil
}

// LockedMonths lists the closed months of a year
func (s *actualsService) LockedMonths(ctx context.Context, organizationID string, year int, userID string) ([]domain.Month, error) {
	ws, err := s.load(ctx, organizationID, year, userID)
	if err != nil {
		return nil, err
	}
	return budgeting.LockedMonths(ws), nil
}

func (s *actualsService) load(ctx context.Context, organizationID string, year int, userID string) (*domain.BudgetWorkingSet, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.workingSet.LoadWorkingSet(ctx, organizationID, year)
}
