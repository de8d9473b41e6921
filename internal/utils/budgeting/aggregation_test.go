package budgeting

import (
	"fmt"
	"testing"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, expected, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !expected.Equal(actual) {
		assert.Fail(t, fmt.Sprintf("expected %s, got %s", expected, actual), msgAndArgs...)
	}
}

func assertSeries(t *testing.T, expected, actual domain.MonthlyAmounts) {
	t.Helper()
	for i := range expected {
		assertDecimal(t, expected[i], actual[i], "month %d", i+1)
	}
}

func ramp(start, step int64) domain.MonthlyAmounts {
	var a domain.MonthlyAmounts
	for i := range a {
		a[i] = dec(start + step*int64(i))
	}
	return a
}

func seriesOf(id, category string, t domain.ItemType, budget domain.MonthlyAmounts) domain.LineItemSeries {
	return domain.LineItemSeries{
		LineItemID:   id,
		LineItemName: id,
		CategoryName: category,
		Type:         t,
		Budget:       budget,
		Forecast:     domain.ZeroAmounts(),
		Actual:       domain.ZeroAmounts(),
	}
}

func TestCalculateTotals_RevenueAndExpenseProfitLoss(t *testing.T) {
	series := []domain.LineItemSeries{
		seriesOf("sales", "Sales", domain.Revenue, domain.Uniform(dec(1000))),
		seriesOf("rent", "Rent", domain.Expense, domain.Uniform(dec(-400))),
	}

	totals := CalculateTotals(series, false)

	assertSeries(t, domain.Uniform(dec(1000)), totals.Revenue)
	assertSeries(t, domain.Uniform(dec(400)), totals.Expense)
	assertSeries(t, domain.Uniform(dec(600)), totals.ProfitLoss)
	assertDecimal(t, dec(7200), FullYear(totals.ProfitLoss))
}

func TestCalculateTotals_UsesForecastWhenRequested(t *testing.T) {
	s := seriesOf("sales", "Sales", domain.Revenue, domain.Uniform(dec(10)))
	s.Forecast = domain.Uniform(dec(25))

	totals := CalculateTotals([]domain.LineItemSeries{s}, true)

	assertSeries(t, domain.Uniform(dec(25)), totals.Revenue)
	assertSeries(t, domain.Uniform(dec(25)), totals.ProfitLoss)
}

func TestCalculateTotalsFor_ExpenseSignInvariance(t *testing.T) {
	positive := []domain.LineItemSeries{seriesOf("a", "Ops", domain.Expense, ramp(10, 5))}
	negative := []domain.LineItemSeries{seriesOf("a", "Ops", domain.Expense, ramp(-10, -5))}

	pos := CalculateTotalsFor(positive, domain.KindBudget)
	neg := CalculateTotalsFor(negative, domain.KindBudget)

	assertSeries(t, pos.Expense, neg.Expense)
	assertSeries(t, pos.ProfitLoss, neg.ProfitLoss)
}

func TestCalculateTotalsFor_RevenueKeepsSign(t *testing.T) {
	series := []domain.LineItemSeries{
		seriesOf("a", "Sales", domain.Revenue, domain.Uniform(dec(100))),
		seriesOf("refunds", "Sales", domain.Revenue, domain.Uniform(dec(-30))),
	}

	totals := CalculateTotalsFor(series, domain.KindBudget)

	assertSeries(t, domain.Uniform(dec(70)), totals.Revenue)
}

func TestSumInvariant(t *testing.T) {
	cases := map[string]domain.MonthlyAmounts{
		"ramp":    ramp(100, 100),
		"uniform": domain.Uniform(dec(42)),
		"mixed":   ramp(-600, 100),
		"zeros":   domain.ZeroAmounts(),
	}
	for name, monthly := range cases {
		t.Run(name, func(t *testing.T) {
			monthlySum := decimal.Zero
			for _, v := range monthly {
				monthlySum = monthlySum.Add(v)
			}
			assertDecimal(t, monthlySum, FullYear(monthly))
			assertDecimal(t, FullYear(monthly), SumQuarters(CalculateQuarterlyTotals(monthly)))
		})
	}
}

func TestCalculateQuarterlyTotals(t *testing.T) {
	q := CalculateQuarterlyTotals(ramp(100, 100))

	assertDecimal(t, dec(600), q[0])
	assertDecimal(t, dec(1500), q[1])
	assertDecimal(t, dec(2400), q[2])
	assertDecimal(t, dec(3300), q[3])
}

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Payroll", "payroll"},
		{"padded", "  Payroll ", "payroll"},
		{"upper", "PAYROLL", "payroll"},
		{"empty", "", UncategorizedKey},
		{"blank", "   ", UncategorizedKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryKey(tt.input))
		})
	}
}

func TestGroupByCategory_MergesNormalizedNames(t *testing.T) {
	series := []domain.LineItemSeries{
		seriesOf("a", "Payroll", domain.Expense, domain.ZeroAmounts()),
		seriesOf("b", " payroll ", domain.Expense, domain.ZeroAmounts()),
		seriesOf("c", "PAYROLL", domain.Expense, domain.ZeroAmounts()),
		seriesOf("d", "", domain.Expense, domain.ZeroAmounts()),
		seriesOf("e", "Sales", domain.Revenue, domain.ZeroAmounts()),
	}

	groups := GroupByCategory(series)

	require.Len(t, groups, 3)
	require.Contains(t, groups, "payroll")
	assert.Len(t, groups["payroll"].Items, 3)
	assert.Equal(t, domain.Expense, groups["payroll"].Type)
	require.Contains(t, groups, UncategorizedKey)
	assert.Len(t, groups[UncategorizedKey].Items, 1)
	assert.Equal(t, domain.Revenue, groups["sales"].Type)
}

func TestPivot_FillsMissingMonthsWithZero(t *testing.T) {
	records := []domain.BudgetRecord{
		{
			BudgetDataPoint: domain.BudgetDataPoint{LineItemID: "li-1", Month: 3, BudgetAmount: dec(300), ForecastAmount: dec(310)},
			LineItemName:    "Licenses",
			LineItemType:    domain.Expense,
			CategoryName:    "Software",
		},
		{
			BudgetDataPoint: domain.BudgetDataPoint{LineItemID: "li-1", Month: 12, BudgetAmount: dec(1200)},
			LineItemName:    "Licenses",
			LineItemType:    domain.Expense,
			CategoryName:    "Software",
		},
		{
			BudgetDataPoint: domain.BudgetDataPoint{LineItemID: "li-2", Month: 13, BudgetAmount: dec(1)},
		},
	}

	series := Pivot(records)

	require.Len(t, series, 1)
	s := series[0]
	assert.Equal(t, "Licenses", s.LineItemName)
	assert.Equal(t, domain.Expense, s.Type)
	assertDecimal(t, dec(300), s.Budget.At(3))
	assertDecimal(t, dec(310), s.Forecast.At(3))
	assertDecimal(t, dec(1200), s.Budget.At(12))
	assertDecimal(t, decimal.Zero, s.Budget.At(1))
	assertDecimal(t, decimal.Zero, s.Actual.At(3))
}

func TestSeriesFromWorkingSet_IncludesItemsWithoutData(t *testing.T) {
	ws := &domain.BudgetWorkingSet{
		Categories: []domain.Category{
			{CategoryID: "cat-1", Name: "Sales", Type: domain.Revenue, IsActive: true},
		},
		LineItems: []domain.LineItem{
			{LineItemID: "li-1", CategoryID: "cat-1", Name: "Online", Type: domain.Revenue, IsActive: true},
			{LineItemID: "li-2", CategoryID: "cat-1", Name: "Retail", Type: domain.Revenue, IsActive: true},
		},
		Points: []domain.BudgetDataPoint{
			{LineItemID: "li-1", Month: 1, BudgetAmount: dec(5)},
		},
	}

	series := SeriesFromWorkingSet(ws)

	require.Len(t, series, 2)
	assert.Equal(t, "li-1", series[0].LineItemID)
	assert.Equal(t, "Sales", series[0].CategoryName)
	assert.Equal(t, "li-2", series[1].LineItemID)
	assertSeries(t, domain.ZeroAmounts(), series[1].Budget)
}
