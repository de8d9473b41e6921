package repositories

import (
	"context"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
)

// BudgetDataReader defines read operations for per-month budget data
type BudgetDataReader interface {
	// ListDataPoints retrieves every stored data point of an organization/year.
	ListDataPoints(ctx context.Context, organizationID string, year int) ([]domain.BudgetDataPoint, error)

	// FindDataPoint retrieves one data point; ErrNotFound when the month was never written.
	FindDataPoint(ctx context.Context, organizationID, lineItemID string, year int, month domain.Month) (*domain.BudgetDataPoint, error)

	// GetBudgetSummary calls get_budget_summary and returns the projected records.
	GetBudgetSummary(ctx context.Context, organizationID string, year int, selector domain.SummarySelector) ([]domain.BudgetRecord, error)
}

// BudgetDataWriter defines write operations for per-month budget data
type BudgetDataWriter interface {
	// UpsertValue writes the amount column for kind of one data point; other columns
	// default to zero on insert and are left alone on update. Actuals writes also
	// close the month for the line item.
	UpsertValue(ctx context.Context, point domain.BudgetDataPoint, kind domain.AmountKind) error

	// UpsertSeries writes twelve months of one kind atomically.
	UpsertSeries(ctx context.Context, organizationID, lineItemID string, year int, amounts domain.MonthlyAmounts, kind domain.AmountKind, userID string) error
}

// BudgetDataRepositoryFacade combines all budget-data repository interfaces
type BudgetDataRepositoryFacade interface {
	BudgetDataReader
	BudgetDataWriter
}

// VersionReader defines read operations for budget/forecast versions
type VersionReader interface {
	// FindVersion retrieves one version row; ErrNotFound when it was never created.
	FindVersion(ctx context.Context, organizationID string, year int, versionType domain.VersionType) (*domain.Version, error)

	ListVersions(ctx context.Context, organizationID string, year int) ([]domain.Version, error)
}

// VersionWriter defines lifecycle writes for budget/forecast versions
type VersionWriter interface {
	// UpsertBudgetLock creates or updates the budget version row with the lock state of version
	// and returns the stored row. Re-locking a locked budget keeps the original lock stamp.
	UpsertBudgetLock(ctx context.Context, version domain.Version) (*domain.Version, error)

	// DeriveForecast copies budget into forecast for every data row of the year and records
	// the forecast version, in one transaction. It fails with ErrDuplicate when the forecast
	// already exists and overwrite is false.
	DeriveForecast(ctx context.Context, organizationID string, year int, overwrite bool, userID string) (*domain.Version, error)
}

// VersionRepositoryFacade combines all version repository interfaces
type VersionRepositoryFacade interface {
	VersionReader
	VersionWriter
}
