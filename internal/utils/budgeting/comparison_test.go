package budgeting

import (
	"testing"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariancePercent(t *testing.T) {
	tests := []struct {
		name     string
		budget   decimal.Decimal
		forecast decimal.Decimal
		expected decimal.Decimal
	}{
		{"zero budget", decimal.Zero, dec(500), decimal.Zero},
		{"over budget", dec(100), dec(150), dec(50)},
		{"under budget", dec(200), dec(150), dec(-25)},
		{"negative budget", dec(-200), dec(-100), dec(50)},
		{"equal", dec(80), dec(80), decimal.Zero},
		{"rounded", dec(3), dec(4), decimal.RequireFromString("33.33")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, VariancePercent(tt.budget, tt.forecast))
		})
	}
}

func TestMonthOverMonthPercent(t *testing.T) {
	forecast := ramp(100, 50)

	assertDecimal(t, decimal.Zero, MonthOverMonthPercent(forecast, 1), "january is its own predecessor")
	assertDecimal(t, dec(50), MonthOverMonthPercent(forecast, 2))
	assertDecimal(t, decimal.Zero, MonthOverMonthPercent(forecast, 13))
}

func TestBuildComparison(t *testing.T) {
	s := seriesOf("li-1", "Sales", domain.Revenue, domain.Uniform(dec(100)))
	s.Forecast = domain.Uniform(dec(120))
	s.Forecast[0] = dec(0)
	s.Actual[1] = dec(90)

	rows := BuildComparison([]domain.LineItemSeries{s})

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "li-1", row.LineItemID)
	assert.Equal(t, "Sales", row.CategoryName)
	assertDecimal(t, dec(-100), row.Variance.At(1))
	assertDecimal(t, dec(20), row.Variance.At(2))
	assertDecimal(t, decimal.Zero, row.MonthOverMonth.At(1))
	assertDecimal(t, decimal.Zero, row.MonthOverMonth.At(2), "previous forecast is zero")
	assertDecimal(t, decimal.Zero, row.MonthOverMonth.At(3))
	assertDecimal(t, dec(90), row.Actual.At(2))
}

func TestSummarizeComparison(t *testing.T) {
	revenue := seriesOf("sales", "Sales", domain.Revenue, domain.Uniform(dec(100)))
	revenue.Forecast = domain.Uniform(dec(110))
	expense := seriesOf("rent", "Rent", domain.Expense, domain.Uniform(dec(-50)))
	expense.Forecast = domain.Uniform(dec(50))

	summary := SummarizeComparison([]domain.LineItemSeries{revenue, expense})

	require.Len(t, summary, 2)
	assert.Equal(t, domain.Revenue, summary[0].Type)
	assertDecimal(t, dec(1200), summary[0].Budget)
	assertDecimal(t, dec(1320), summary[0].Forecast)
	assertDecimal(t, dec(10), summary[0].VariancePercent)
	assert.Equal(t, domain.Expense, summary[1].Type)
	assertDecimal(t, dec(600), summary[1].Budget)
	assertDecimal(t, dec(600), summary[1].Forecast)
	assertDecimal(t, decimal.Zero, summary[1].VariancePercent)
}
