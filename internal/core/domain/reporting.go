package domain

import "github.com/shopspring/decimal"

// LineItemSeries is one line item's twelve months of budget, forecast and actual amounts.
type LineItemSeries struct {
	LineItemID    string         `json:"lineItemID"`
	LineItemName  string         `json:"lineItemName"`
	CategoryID    string         `json:"categoryID"`
	CategoryName  string         `json:"categoryName"`
	CategoryColor string         `json:"categoryColor"`
	Type          ItemType       `json:"type"`
	Budget        MonthlyAmounts `json:"budget"`
	Forecast      MonthlyAmounts `json:"forecast"`
	Actual        MonthlyAmounts `json:"actual"`
}

// Amounts returns the series for kind.
func (s LineItemSeries) Amounts(kind AmountKind) MonthlyAmounts {
	switch kind {
	case KindForecast:
		return s.Forecast
	case KindActuals:
		return s.Actual
	default:
		return s.Budget
	}
}

// CategoryGroup is the aggregation view of all line items sharing a normalized category name.
type CategoryGroup struct {
	Key   string           `json:"key"`
	Type  ItemType         `json:"type"`
	Items []LineItemSeries `json:"items"`
}

// TypeTotals holds monthly revenue, expense and profit/loss series.
type TypeTotals struct {
	Revenue    MonthlyAmounts `json:"revenue"`
	Expense    MonthlyAmounts `json:"expense"`
	ProfitLoss MonthlyAmounts `json:"profitLoss"`
}

// QuarterlyAmounts holds Q1..Q4 sums.
type QuarterlyAmounts [4]decimal.Decimal

// ComparisonRow joins budget, forecast and actual for one line item with per-month variance.
type ComparisonRow struct {
	LineItemID     string         `json:"lineItemID"`
	LineItemName   string         `json:"lineItemName"`
	CategoryName   string         `json:"categoryName"`
	Type           ItemType       `json:"type"`
	Budget         MonthlyAmounts `json:"budget"`
	Forecast       MonthlyAmounts `json:"forecast"`
	Actual         MonthlyAmounts `json:"actual"`
	Variance       MonthlyAmounts `json:"variance"`       // percent, forecast against budget
	MonthOverMonth MonthlyAmounts `json:"monthOverMonth"` // percent, forecast against prior month
}

// ComparisonSummary is the full-year three-series comparison for one item type.
type ComparisonSummary struct {
	Type            ItemType        `json:"type"`
	Budget          decimal.Decimal `json:"budget"`
	Forecast        decimal.Decimal `json:"forecast"`
	Actual          decimal.Decimal `json:"actual"`
	VariancePercent decimal.Decimal `json:"variancePercent"`
}

// Comparison is the response of the comparison read.
type Comparison struct {
	OrganizationID string              `json:"organizationID"`
	Year           int                 `json:"year"`
	Rows           []ComparisonRow     `json:"rows"`
	Summary        []ComparisonSummary `json:"summary"`
}

// QuarterlyTotals holds the quarterly view of TypeTotals.
type QuarterlyTotals struct {
	Revenue    QuarterlyAmounts `json:"revenue"`
	Expense    QuarterlyAmounts `json:"expense"`
	ProfitLoss QuarterlyAmounts `json:"profitLoss"`
}

// YearTotals holds the full-year view of TypeTotals.
type YearTotals struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Expense    decimal.Decimal `json:"expense"`
	ProfitLoss decimal.Decimal `json:"profitLoss"`
}

// TotalsReport is the monthly, quarterly and full-year type totals of one amount kind.
type TotalsReport struct {
	OrganizationID string          `json:"organizationID"`
	Year           int             `json:"year"`
	Kind           AmountKind      `json:"kind"`
	Monthly        TypeTotals      `json:"monthly"`
	Quarterly      QuarterlyTotals `json:"quarterly"`
	FullYear       YearTotals      `json:"fullYear"`
}

// CategoryTotals is a category group with its summed monthly series for one kind.
type CategoryTotals struct {
	Key      string           `json:"key"`
	Type     ItemType         `json:"type"`
	Items    []LineItemSeries `json:"items"`
	Monthly  MonthlyAmounts   `json:"monthly"`
	FullYear decimal.Decimal  `json:"fullYear"`
}
