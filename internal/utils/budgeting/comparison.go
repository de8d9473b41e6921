package budgeting

import (
	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// VariancePercent is (forecast - budget) / |budget| * 100, rounded to two places.
// A zero budget yields zero instead of an undefined ratio.
func VariancePercent(budget, forecast decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return forecast.Sub(budget).Div(budget.Abs()).Mul(hundred).Round(2)
}

// MonthOverMonthPercent compares series[m] with series[m-1].
// January is its own predecessor; there is no wraparound into the prior year.
func MonthOverMonthPercent(series domain.MonthlyAmounts, m domain.Month) decimal.Decimal {
	if !m.Valid() {
		return decimal.Zero
	}
	prev := m - 1
	if prev < 1 {
		prev = 1
	}
	return VariancePercent(series.At(prev), series.At(m))
}

// BuildComparison joins budget, forecast and actual per line item and month.
// Months without a stored record read as zero on every side.
func BuildComparison(series []domain.LineItemSeries) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, 0, len(series))
	for _, s := range series {
		row := domain.ComparisonRow{
			LineItemID:   s.LineItemID,
			LineItemName: s.LineItemName,
			CategoryName: s.CategoryName,
			Type:         s.Type,
			Budget:       s.Budget,
			Forecast:     s.Forecast,
			Actual:       s.Actual,
		}
		for _, m := range domain.Months() {
			i := m.Index()
			row.Variance[i] = VariancePercent(s.Budget[i], s.Forecast[i])
			row.MonthOverMonth[i] = MonthOverMonthPercent(s.Forecast, m)
		}
		rows = append(rows, row)
	}
	return rows
}

// SummarizeComparison totals each item type over the full year.
// Expense totals use absolute values, matching CalculateTotalsFor.
func SummarizeComparison(series []domain.LineItemSeries) []domain.ComparisonSummary {
	budget := CalculateTotalsFor(series, domain.KindBudget)
	forecast := CalculateTotalsFor(series, domain.KindForecast)
	actual := CalculateTotalsFor(series, domain.KindActuals)

	summary := func(t domain.ItemType, pick func(domain.TypeTotals) domain.MonthlyAmounts) domain.ComparisonSummary {
		b, f := FullYear(pick(budget)), FullYear(pick(forecast))
		return domain.ComparisonSummary{
			Type:            t,
			Budget:          b,
			Forecast:        f,
			Actual:          FullYear(pick(actual)),
			VariancePercent: VariancePercent(b, f),
		}
	}
	return []domain.ComparisonSummary{
		summary(domain.Revenue, func(t domain.TypeTotals) domain.MonthlyAmounts { return t.Revenue }),
		summary(domain.Expense, func(t domain.TypeTotals) domain.MonthlyAmounts { return t.Expense }),
	}
}
