package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	portssvc "github.com/SscSPs/budget_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/budget_forecast_app/internal/utils/budgeting"
)

// reportService implements the ReportSvc interface
type reportService struct {
	BaseService
	workingSet portssvc.WorkingSetSvc
}

// NewReportService creates a new report service with the provided options
func NewReportService(workingSet portssvc.WorkingSetSvc, options ...Option) portssvc.ReportSvc {
	svc := &reportService{workingSet: workingSet}
	svc.apply(options)
	return svc
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) series(ctx context.Context, organizationID string, year int, userID string) ([]domain.LineItemSeries, error) {
	if err := requireOrganization(organizationID); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	// ReadOnly is sufficient for viewing reports
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view budget reports",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}
	ws, err := s.workingSet.LoadWorkingSet(ctx, organizationID, year)
	if err != nil {
		return nil, err
	}
	return budgeting.SeriesFromWorkingSet(ws), nil
}

// GetTotals returns monthly, quarterly and full-year revenue, expense and profit/loss
func (s *reportService) GetTotals(ctx context.Context, organizationID string, year int, kind domain.AmountKind, userID string) (*domain.TotalsReport, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	series, err := s.series(ctx, organizationID, year, userID)
	if err != nil {
		return nil, err
	}

	monthly := budgeting.CalculateTotalsFor(series, kind)
	return &domain.TotalsReport{
		OrganizationID: organizationID,
		Year:           year,
		Kind:           kind,
		Monthly:        monthly,
		Quarterly: domain.QuarterlyTotals{
			Revenue:    budgeting.CalculateQuarterlyTotals(monthly.Revenue),
			Expense:    budgeting.CalculateQuarterlyTotals(monthly.Expense),
			ProfitLoss: budgeting.CalculateQuarterlyTotals(monthly.ProfitLoss),
		},
		FullYear: domain.YearTotals{
			Revenue:    budgeting.FullYear(monthly.Revenue),
			Expense:    budgeting.FullYear(monthly.Expense),
			ProfitLoss: budgeting.FullYear(monthly.ProfitLoss),
		},
	}, nil
}

// GetCategoryTotals returns the category groups of a year sorted by key, each with its summed series
func (s *reportService) GetCategoryTotals(ctx context.Context, organizationID string, year int, kind domain.AmountKind, userID string) ([]domain.CategoryTotals, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	series, err := s.series(ctx, organizationID, year, userID)
	if err != nil {
		return nil, err
	}

	groups := budgeting.GroupByCategory(series)
	result := make([]domain.CategoryTotals, 0, len(groups))
	for key, group := range groups {
		totals := budgeting.CalculateTotalsFor(group.Items, kind)
		monthly := totals.Revenue
		if group.Type == domain.Expense {
			monthly = totals.Expense
		}
		// mixed groups fall back to profit/loss
		if hasMixedTypes(group.Items) {
			monthly = totals.ProfitLoss
		}
		result = append(result, domain.CategoryTotals{
			Key:      key,
			Type:     group.Type,
			Items:    group.Items,
			Monthly:  monthly,
			FullYear: budgeting.FullYear(monthly),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func hasMixedTypes(items []domain.LineItemSeries) bool {
	for _, it := range items[1:] {
		if it.Type != items[0].Type {
			return true
		}
	}
	return false
}

// GetComparison returns the budget/forecast/actual comparison of a year
func (s *reportService) GetComparison(ctx context.Context, organizationID string, year int, userID string) (*domain.Comparison, error) {
	series, err := s.series(ctx, organizationID, year, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Comparison{
		OrganizationID: organizationID,
		Year:           year,
		Rows:           budgeting.BuildComparison(series),
		Summary:        budgeting.SummarizeComparison(series),
	}, nil
}
