package dto

import (
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetValueRequest sets one month of one amount kind. Amount is a pointer so an
// omitted value is rejected instead of being written as zero.
type SetValueRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Kind   string           `json:"kind" binding:"required,budgetkind"`
}

// BulkSetValuesRequest sets all twelve months of one amount kind.
type BulkSetValuesRequest struct {
	Amounts []decimal.Decimal `json:"amounts" binding:"required,len=12"`
	Kind    string            `json:"kind" binding:"required,budgetkind"`
}

// MonthlyAmounts converts the request slice into a fixed series. The binding guarantees twelve entries.
func (r BulkSetValuesRequest) MonthlyAmounts() domain.MonthlyAmounts {
	var a domain.MonthlyAmounts
	copy(a[:], r.Amounts)
	return a
}

// BudgetRecordsResponse wraps the records of one organization/year.
type BudgetRecordsResponse struct {
	OrganizationID string                `json:"organizationID"`
	Year           int                   `json:"year"`
	Selector       string                `json:"selector,omitempty"`
	Records        []domain.BudgetRecord `json:"records"`
}

// LockVersionRequest locks or unlocks the budget version.
type LockVersionRequest struct {
	IsLocked *bool `json:"isLocked" binding:"required"`
}

// CreateForecastRequest derives the forecast from the budget.
type CreateForecastRequest struct {
	Overwrite bool `json:"overwrite"`
}

// MonthStatusResponse reports whether a month has been closed.
type MonthStatusResponse struct {
	OrganizationID string         `json:"organizationID"`
	Year           int            `json:"year"`
	Month          domain.Month   `json:"month"`
	IsLocked       bool           `json:"isLocked"`
	LockedMonths   []domain.Month `json:"lockedMonths"`
}

// ListCategoryTotalsResponse wraps per-category totals.
type ListCategoryTotalsResponse struct {
	OrganizationID string                  `json:"organizationID"`
	Year           int                     `json:"year"`
	Kind           domain.AmountKind       `json:"kind"`
	Categories     []domain.CategoryTotals `json:"categories"`
}
