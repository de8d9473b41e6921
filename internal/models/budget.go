package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a row of the budget_categories table.
type Category struct {
	CategoryID     string `db:"category_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Type           string `db:"type"`
	Description    string `db:"description"`
	Color          string `db:"color"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// LineItem is a row of the budget_line_items table.
type LineItem struct {
	LineItemID     string `db:"line_item_id"`
	OrganizationID string `db:"organization_id"`
	CategoryID     string `db:"category_id"`
	Name           string `db:"name"`
	Description    string `db:"description"`
	Type           string `db:"type"`
	IsRecurring    bool   `db:"is_recurring"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

// BudgetData is a row of the budget_data table.
type BudgetData struct {
	OrganizationID string          `db:"organization_id"`
	LineItemID     string          `db:"line_item_id"`
	Year           int             `db:"year"`
	Month          int             `db:"month"`
	BudgetAmount   decimal.Decimal `db:"budget_amount"`
	ForecastAmount decimal.Decimal `db:"forecast_amount"`
	ActualAmount   decimal.Decimal `db:"actual_amount"`
	ActualLockedAt *time.Time      `db:"actual_locked_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	UpdatedBy      string          `db:"updated_by"`
}

// BudgetSummaryRow is a row returned by the get_budget_summary function.
// Category columns are nullable because line items are joined to categories with a left join.
type BudgetSummaryRow struct {
	BudgetData
	LineItemName  string  `db:"line_item_name"`
	LineItemType  string  `db:"line_item_type"`
	IsRecurring   bool    `db:"is_recurring"`
	CategoryID    *string `db:"category_id"`
	CategoryName  *string `db:"category_name"`
	CategoryType  *string `db:"category_type"`
	CategoryColor *string `db:"category_color"`
}

// BudgetVersion is a row of the budget_versions table.
type BudgetVersion struct {
	OrganizationID string     `db:"organization_id"`
	Year           int        `db:"year"`
	VersionType    string     `db:"version_type"`
	IsLocked       bool       `db:"is_locked"`
	LockedAt       *time.Time `db:"locked_at"`
	LockedBy       *string    `db:"locked_by"`
	AuditFields
}
