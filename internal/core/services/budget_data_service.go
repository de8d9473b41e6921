package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/apperrors"
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// budgetDataService implements the BudgetDataSvc interface
type budgetDataService struct {
	BaseService
	dataRepo     portsrepo.BudgetDataRepositoryFacade
	lineItemRepo portsrepo.LineItemReader
	versionRepo  portsrepo.VersionReader
	now          func() time.Time
}

// NewBudgetDataService creates a new budget data service with the provided options
func NewBudgetDataService(
	dataRepo portsrepo.BudgetDataRepositoryFacade,
	lineItemRepo portsrepo.LineItemReader,
	versionRepo portsrepo.VersionReader,
	options ...Option,
) portssvc.BudgetDataSvc {
	svc := &budgetDataService{
		dataRepo:     dataRepo,
		lineItemRepo: lineItemRepo,
		versionRepo:  versionRepo,
		now:          time.Now,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.BudgetDataSvc = (*budgetDataService)(nil)

func (s *budgetDataService) GetDataPoints(ctx context.Context, organizationID string, year int, userID string) ([]domain.BudgetRecord, error) {
	return s.GetBudgetSummary(ctx, organizationID, year, domain.SelectAll, userID)
}

func (s *budgetDataService) GetBudgetSummary(ctx context.Context, organizationID string, year int, selector domain.SummarySelector, userID string) ([]domain.BudgetRecord, error) {
	if organizationID == "" {
		s.LogDebug(ctx, "No organization in context, returning empty budget summary")
		return []domain.BudgetRecord{}, nil
	}
	if !selector.Valid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown summary selector %q", selector))
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	records, err := s.dataRepo.GetBudgetSummary(ctx, organizationID, year, selector)
	if err != nil {
		s.LogError(ctx, err, "Failed to read budget summary",
			slog.String("organization_id", organizationID),
			slog.Int("year", year),
			slog.String("selector", string(selector)))
		return nil, err
	}
	if records == nil {
		return []domain.BudgetRecord{}, nil
	}
	return records, nil
}

func (s *budgetDataService) SetValue(ctx context.Context, organizationID, lineItemID string, year int, month domain.Month, amount decimal.Decimal, kind domain.AmountKind, userID string) error {
	if organizationID == "" {
		s.LogDebug(ctx, "No organization in context, skipping budget write")
		return nil
	}
	if err := s.checkWrite(ctx, organizationID, lineItemID, year, kind, userID); err != nil {
		return err
	}
	if err := validateMonth(month); err != nil {
		return err
	}

	now := s.now()
	point := domain.BudgetDataPoint{
		OrganizationID: organizationID,
		LineItemID:     lineItemID,
		Year:           year,
		Month:          month,
		UpdatedAt:      now,
		UpdatedBy:      userID,
	}.WithAmount(kind, amount)

	if err := s.dataRepo.UpsertValue(ctx, point, kind); err != nil {
		s.LogError(ctx, err, "Failed to set budget value",
			slog.String("organization_id", organizationID),
			slog.String("line_item_id", lineItemID),
			slog.Int("year", year),
			slog.Int("month", int(month)),
			slog.String("kind", string(kind)))
		return err
	}
	s.AnnounceChange(ctx, domain.EventDataChanged, organizationID, year, userID)

	s.LogDebug(ctx, "Budget value set",
		slog.String("line_item_id", lineItemID),
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.String("kind", string(kind)))
	return nil
}

func (s *budgetDataService) BulkSetValues(ctx context.Context, organizationID, lineItemID string, year int, amounts domain.MonthlyAmounts, kind domain.AmountKind, userID string) error {
	if organizationID == "" {
		s.LogDebug(ctx, "No organization in context, skipping bulk budget write")
		return nil
	}
	if err := s.checkWrite(ctx, organizationID, lineItemID, year, kind, userID); err != nil {
		return err
	}

	if err := s.dataRepo.UpsertSeries(ctx, organizationID, lineItemID, year, amounts, kind, userID); err != nil {
		s.LogError(ctx, err, "Failed to bulk set budget values",
			slog.String("organization_id", organizationID),
			slog.String("line_item_id", lineItemID),
			slog.Int("year", year),
			slog.String("kind", string(kind)))
		return err
	}
	s.AnnounceChange(ctx, domain.EventDataChanged, organizationID, year, userID)

	s.LogInfo(ctx, "Budget values set for year",
		slog.String("line_item_id", lineItemID),
		slog.Int("year", year),
		slog.String("kind", string(kind)))
	return nil
}

// checkWrite runs the validation, authorization and lock checks shared by both write paths.
func (s *budgetDataService) checkWrite(ctx context.Context, organizationID, lineItemID string, year int, kind domain.AmountKind, userID string) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	if err := validateYear(year); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return err
	}
	if _, err := s.lineItemRepo.FindLineItemByID(ctx, organizationID, lineItemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up line item",
				slog.String("line_item_id", lineItemID))
		}
		return err
	}
	if kind == domain.KindBudget {
		return s.ensureBudgetUnlocked(ctx, organizationID, year)
	}
	return nil
}

func (s *budgetDataService) ensureBudgetUnlocked(ctx context.Context, organizationID string, year int) error {
	version, err := s.versionRepo.FindVersion(ctx, organizationID, year, domain.VersionBudget)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if !version.IsLocked {
		return nil
	}
	lockErr := &apperrors.LockedVersionError{OrganizationID: organizationID, Year: year}
	if version.LockedBy != nil {
		lockErr.LockedBy = *version.LockedBy
	}
	return lockErr
}
