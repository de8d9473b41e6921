// Package budgeting holds the pure aggregation and comparison logic of the engine.
// Nothing in here touches storage; every function works over data already loaded.
package budgeting

import (
	"strings"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedKey is the group key used for records whose category name is blank.
const UncategorizedKey = "uncategorized"

// CategoryKey normalizes a category name into its grouping key.
// Names differing only by case or surrounding whitespace share a key.
func CategoryKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return UncategorizedKey
	}
	return key
}

// Pivot turns per-month records into one twelve-slot series per line item.
// Series are returned in order of the first record seen for each line item.
func Pivot(records []domain.BudgetRecord) []domain.LineItemSeries {
	index := make(map[string]int)
	series := make([]domain.LineItemSeries, 0)
	for _, r := range records {
		if !r.Month.Valid() {
			continue
		}
		i, ok := index[r.LineItemID]
		if !ok {
			i = len(series)
			index[r.LineItemID] = i
			series = append(series, domain.LineItemSeries{
				LineItemID:    r.LineItemID,
				LineItemName:  r.LineItemName,
				CategoryID:    r.CategoryID,
				CategoryName:  r.CategoryName,
				CategoryColor: r.CategoryColor,
				Type:          recordType(r),
				Budget:        domain.ZeroAmounts(),
				Forecast:      domain.ZeroAmounts(),
				Actual:        domain.ZeroAmounts(),
			})
		}
		slot := r.Month.Index()
		series[i].Budget[slot] = r.BudgetAmount
		series[i].Forecast[slot] = r.ForecastAmount
		series[i].Actual[slot] = r.ActualAmount
	}
	return series
}

func recordType(r domain.BudgetRecord) domain.ItemType {
	if r.LineItemType.Valid() {
		return r.LineItemType
	}
	return r.CategoryType
}

// SeriesFromWorkingSet pivots the working set, including active line items that have no data yet.
func SeriesFromWorkingSet(ws *domain.BudgetWorkingSet) []domain.LineItemSeries {
	if ws == nil {
		return nil
	}
	series := Pivot(ws.Records())
	seen := make(map[string]bool, len(series))
	for _, s := range series {
		seen[s.LineItemID] = true
	}
	for _, li := range ws.ActiveLineItems() {
		if seen[li.LineItemID] {
			continue
		}
		cat, _ := ws.CategoryByID(li.CategoryID)
		series = append(series, domain.LineItemSeries{
			LineItemID:    li.LineItemID,
			LineItemName:  li.Name,
			CategoryID:    li.CategoryID,
			CategoryName:  cat.Name,
			CategoryColor: cat.Color,
			Type:          li.Type,
			Budget:        domain.ZeroAmounts(),
			Forecast:      domain.ZeroAmounts(),
			Actual:        domain.ZeroAmounts(),
		})
	}
	return series
}

// GroupByCategory groups series by normalized category name.
// The group type is taken from the first series placed in it.
func GroupByCategory(series []domain.LineItemSeries) map[string]domain.CategoryGroup {
	groups := make(map[string]domain.CategoryGroup)
	for _, s := range series {
		key := CategoryKey(s.CategoryName)
		g, ok := groups[key]
		if !ok {
			g = domain.CategoryGroup{Key: key, Type: s.Type}
		}
		g.Items = append(g.Items, s)
		groups[key] = g
	}
	return groups
}

// CalculateTotals sums the budget series, or the forecast series when isForecast is set.
func CalculateTotals(series []domain.LineItemSeries, isForecast bool) domain.TypeTotals {
	if isForecast {
		return CalculateTotalsFor(series, domain.KindForecast)
	}
	return CalculateTotalsFor(series, domain.KindBudget)
}

// CalculateTotalsFor computes monthly revenue, expense and profit/loss for kind.
// Revenue sums signed amounts; expense sums absolute amounts, so the stored sign of
// an expense never changes the result.
func CalculateTotalsFor(series []domain.LineItemSeries, kind domain.AmountKind) domain.TypeTotals {
	totals := domain.TypeTotals{
		Revenue:    domain.ZeroAmounts(),
		Expense:    domain.ZeroAmounts(),
		ProfitLoss: domain.ZeroAmounts(),
	}
	for _, s := range series {
		amounts := s.Amounts(kind)
		for i, v := range amounts {
			switch s.Type {
			case domain.Revenue:
				totals.Revenue[i] = totals.Revenue[i].Add(v)
			case domain.Expense:
				totals.Expense[i] = totals.Expense[i].Add(v.Abs())
			}
		}
	}
	for i := range totals.ProfitLoss {
		totals.ProfitLoss[i] = totals.Revenue[i].Sub(totals.Expense[i])
	}
	return totals
}

// CalculateQuarterlyTotals sums months 1-3, 4-6, 7-9 and 10-12.
func CalculateQuarterlyTotals(monthly domain.MonthlyAmounts) domain.QuarterlyAmounts {
	var q domain.QuarterlyAmounts
	for i := range q {
		q[i] = decimal.Zero
	}
	for i, v := range monthly {
		q[i/3] = q[i/3].Add(v)
	}
	return q
}

// FullYear is the sum of all twelve months.
func FullYear(monthly domain.MonthlyAmounts) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range monthly {
		sum = sum.Add(v)
	}
	return sum
}

// SumQuarters is the sum of four quarterly totals.
func SumQuarters(q domain.QuarterlyAmounts) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range q {
		sum = sum.Add(v)
	}
	return sum
}
