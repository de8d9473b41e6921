package services

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetDataSvc reads and writes per line item, per month amounts.
// An empty organization id is treated as missing context: reads return nothing and
// writes do nothing, without error.
type BudgetDataSvc interface {
	// GetDataPoints returns every record of the year annotated with line item and category.
	GetDataPoints(ctx context.Context, organizationID string, year int, userID string) ([]domain.BudgetRecord, error)

	// GetBudgetSummary returns the records projected by selector.
	GetBudgetSummary(ctx context.Context, organizationID string, year int, selector domain.SummarySelector, userID string) ([]domain.BudgetRecord, error)

	// SetValue upserts a single month of one kind.
	SetValue(ctx context.Context, organizationID, lineItemID string, year int, month domain.Month, amount decimal.Decimal, kind domain.AmountKind, userID string) error

	// BulkSetValues upserts all twelve months of one kind atomically.
	BulkSetValues(ctx context.Context, organizationID, lineItemID string, year int, amounts domain.MonthlyAmounts, kind domain.AmountKind, userID string) error
}

// VersionSvc controls the budget lock and the forecast derivation.
type VersionSvc interface {
	GetVersions(ctx context.Context, organizationID string, year int, userID string) (*domain.VersionStatus, error)

	// LockVersion sets the lock state of the budget version. Repeating a call is a no-op.
	LockVersion(ctx context.Context, organizationID string, year int, isLocked bool, userID string) (*domain.Version, error)

	// CreateForecastFromBudget copies budget into forecast for the year.
	CreateForecastFromBudget(ctx context.Context, organizationID string, year int, overwrite bool, userID string) (*domain.Version, error)
}

// ActualsSvc closes months by realizing actuals.
type ActualsSvc interface {
	// LockMonthAsActual closes month for every line item of the year. It can be re-run to
	// complete a partially applied close.
	LockMonthAsActual(ctx context.Context, organizationID string, year int, month domain.Month, userID string) (*domain.MonthLockResult, error)

	IsMonthLocked(ctx context.Context, organizationID string, year int, month domain.Month, userID string) (bool, error)

	LockedMonths(ctx context.Context, organizationID string, year int, userID string) ([]domain.Month, error)
}

// WorkingSetSvc loads and caches the working set of an organization/year.
type WorkingSetSvc interface {
	// LoadWorkingSet returns the cached working set, loading it on a miss.
	LoadWorkingSet(ctx context.Context, organizationID string, year int) (*domain.BudgetWorkingSet, error)

	// Reload discards any cached copy and loads a fresh one.
	Reload(ctx context.Context, organizationID string, year int) (*domain.BudgetWorkingSet, error)

	// Invalidate drops every cached year of an organization; the next load reads the store.
	Invalidate(organizationID string)
}

// ReportSvc derives aggregation and comparison views from the working set.
type ReportSvc interface {
	GetTotals(ctx context.Context, organizationID string, year int, kind domain.AmountKind, userID string) (*domain.TotalsReport, error)

	GetCategoryTotals(ctx context.Context, organizationID string, year int, kind domain.AmountKind, userID string) ([]domain.CategoryTotals, error)

	GetComparison(ctx context.Context, organizationID string, year int, userID string) (*domain.Comparison, error)
}

// EventPublisher delivers lifecycle events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BudgetEvent) error
}
