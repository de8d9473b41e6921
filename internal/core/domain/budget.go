package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ItemType is the revenue/expense classification shared by categories and line items.
type ItemType string

const (
	Revenue ItemType = "REVENUE"
	Expense ItemType = "EXPENSE"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == Revenue || t == Expense
}

// ParseItemType accepts either case ("revenue", "EXPENSE").
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown item type %q", s)
	}
	return t, nil
}

// Category is a named, typed grouping of line items.
type Category struct {
	CategoryID     string   `json:"categoryID"`
	OrganizationID string   `json:"organizationID"`
	Name           string   `json:"name"`
	Type           ItemType `json:"type"`
	Description    string   `json:"description"`
	Color          string   `json:"color"`
	IsActive       bool     `json:"isActive"` // soft delete flag
	AuditFields
}

// LineItem is the smallest budgeted unit, owned by exactly one category.
type LineItem struct {
	LineItemID     string   `json:"lineItemID"`
	OrganizationID string   `json:"organizationID"`
	CategoryID     string   `json:"categoryID"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Type           ItemType `json:"type"`
	IsRecurring    bool     `json:"isRecurring"`
	IsActive       bool     `json:"isActive"`
	AuditFields
}

// MonthsPerYear is the fixed length of every monthly series.
const MonthsPerYear = 12

// Month is a calendar month, 1 (January) through 12 (December).
type Month int

// Valid reports whether m is within 1..12.
func (m Month) Valid() bool {
	return m >= 1 && m <= MonthsPerYear
}

// Index is the zero-based slot of m in a MonthlyAmounts array.
func (m Month) Index() int {
	return int(m) - 1
}

// Months returns 1..12 in order.
func Months() []Month {
	ms := make([]Month, MonthsPerYear)
	for i := range ms {
		ms[i] = Month(i + 1)
	}
	return ms
}

// MonthlyAmounts is a twelve slot series indexed by Month.Index().
type MonthlyAmounts [MonthsPerYear]decimal.Decimal

// At returns the amount for month m.
func (a MonthlyAmounts) At(m Month) decimal.Decimal {
	return a[m.Index()]
}

// Uniform returns a series with amount in every month.
func Uniform(amount decimal.Decimal) MonthlyAmounts {
	var a MonthlyAmounts
	for i := range a {
		a[i] = amount
	}
	return a
}

// ZeroAmounts returns a series of twelve zeros.
func ZeroAmounts() MonthlyAmounts {
	return Uniform(decimal.Zero)
}

// AmountKind names which amount column of a data point an operation targets.
type AmountKind string

const (
	KindBudget   AmountKind = "budget"
	KindForecast AmountKind = "forecast"
	KindActuals  AmountKind = "actuals"
)

var amountColumns = map[AmountKind]string{
	KindBudget:   "budget_amount",
	KindForecast: "forecast_amount",
	KindActuals:  "actual_amount",
}

// Valid reports whether k is a known kind.
func (k AmountKind) Valid() bool {
	_, ok := amountColumns[k]
	return ok
}

// Column returns the storage column for k. Only whitelisted names are ever returned.
func (k AmountKind) Column() (string, error) {
	col, ok := amountColumns[k]
	if !ok {
		return "", fmt.Errorf("unknown amount kind %q", k)
	}
	return col, nil
}

// ParseAmountKind also accepts "actual" as an alias of "actuals".
func ParseAmountKind(s string) (AmountKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "actual" {
		s = string(KindActuals)
	}
	k := AmountKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown amount kind %q", s)
	}
	return k, nil
}

// BudgetDataPoint is the atomic per line item, per month record.
// Keyed by (OrganizationID, LineItemID, Year, Month).
type BudgetDataPoint struct {
	OrganizationID string          `json:"organizationID"`
	LineItemID     string          `json:"lineItemID"`
	Year           int             `json:"year"`
	Month          Month           `json:"month"`
	BudgetAmount   decimal.Decimal `json:"budgetAmount"`
	ForecastAmount decimal.Decimal `json:"forecastAmount"`
	ActualAmount   decimal.Decimal `json:"actualAmount"`
	// ActualLockedAt is set once the month's actual has been realized for this line item.
	ActualLockedAt *time.Time `json:"actualLockedAt,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	UpdatedBy      string     `json:"updatedBy"`
}

// Amount returns the field named by kind.
func (p BudgetDataPoint) Amount(kind AmountKind) decimal.Decimal {
	switch kind {
	case KindBudget:
		return p.BudgetAmount
	case KindForecast:
		return p.ForecastAmount
	case KindActuals:
		return p.ActualAmount
	}
	return decimal.Zero
}

// WithAmount returns a copy of p with the field named by kind replaced.
func (p BudgetDataPoint) WithAmount(kind AmountKind, amount decimal.Decimal) BudgetDataPoint {
	switch kind {
	case KindBudget:
		p.BudgetAmount = amount
	case KindForecast:
		p.ForecastAmount = amount
	case KindActuals:
		p.ActualAmount = amount
	}
	return p
}

// IsActualLocked reports whether the month has been closed for this line item.
func (p BudgetDataPoint) IsActualLocked() bool {
	return p.ActualLockedAt != nil
}

// BudgetRecord is a data point annotated with its line item and category for display.
// It is the row shape returned by the budget summary read.
type BudgetRecord struct {
	BudgetDataPoint
	LineItemName  string   `json:"lineItemName"`
	LineItemType  ItemType `json:"lineItemType"`
	IsRecurring   bool     `json:"isRecurring"`
	CategoryID    string   `json:"categoryID"`
	CategoryName  string   `json:"categoryName"`
	CategoryType  ItemType `json:"categoryType"`
	CategoryColor string   `json:"categoryColor"`
}

// SummarySelector chooses which amount columns the budget summary read projects.
type SummarySelector string

const (
	SelectBudget   SummarySelector = "budget"
	SelectForecast SummarySelector = "forecast"
	SelectAll      SummarySelector = "all"
)

// Valid reports whether s is a known selector.
func (s SummarySelector) Valid() bool {
	return s == SelectBudget || s == SelectForecast || s == SelectAll
}

// VersionType distinguishes the budget version from the derived forecast version.
type VersionType string

const (
	VersionBudget   VersionType = "budget"
	VersionForecast VersionType = "forecast"
)

// Version is the control-plane record for one organization's budget or forecast in one year.
type Version struct {
	OrganizationID string      `json:"organizationID"`
	Year           int         `json:"year"`
	VersionType    VersionType `json:"versionType"`
	IsLocked       bool        `json:"isLocked"`
	LockedAt       *time.Time  `json:"lockedAt,omitempty"`
	LockedBy       *string     `json:"lockedBy,omitempty"`
	AuditFields
}

// MonthLockResult reports what LockMonthAsActual did per line item.
type MonthLockResult struct {
	Year          int   `json:"year"`
	Month         Month `json:"month"`
	Copied        int   `json:"copied"`        // forecast copied into actual
	Preserved     int   `json:"preserved"`     // existing non-zero actual kept
	AlreadyLocked int   `json:"alreadyLocked"` // closed by an earlier run
}

// VersionStatus is the lifecycle state of one organization/year.
// Budget is always present; an absent row reads as unlocked. Forecast is nil until derived.
type VersionStatus struct {
	OrganizationID string   `json:"organizationID"`
	Year           int      `json:"year"`
	Budget         Version  `json:"budget"`
	Forecast       *Version `json:"forecast,omitempty"`
}
