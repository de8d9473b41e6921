package budgeting

import (
	"testing"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lockedWorkingSet() *domain.BudgetWorkingSet {
	stamp := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return &domain.BudgetWorkingSet{
		Year: 2025,
		Categories: []domain.Category{
			{CategoryID: "cat-1", Name: "Sales", Type: domain.Revenue, IsActive: true},
			{CategoryID: "cat-old", Name: "Legacy", Type: domain.Expense, IsActive: false},
		},
		LineItems: []domain.LineItem{
			{LineItemID: "li-1", CategoryID: "cat-1", Type: domain.Revenue, IsActive: true},
			{LineItemID: "li-2", CategoryID: "cat-1", Type: domain.Revenue, IsActive: true},
			{LineItemID: "li-3", CategoryID: "cat-1", Type: domain.Revenue, IsActive: false},
			{LineItemID: "li-4", CategoryID: "cat-old", Type: domain.Expense, IsActive: true},
		},
		Points: []domain.BudgetDataPoint{
			{LineItemID: "li-1", Month: 1, ActualAmount: dec(100), ActualLockedAt: &stamp},
			// a genuine zero result still counts once it has been closed
			{LineItemID: "li-2", Month: 1, ActualAmount: decimal.Zero, ActualLockedAt: &stamp},
			{LineItemID: "li-1", Month: 2, ActualAmount: dec(100), ActualLockedAt: &stamp},
			{LineItemID: "li-2", Month: 2, ActualAmount: dec(70)},
		},
	}
}

func TestIsMonthLocked(t *testing.T) {
	ws := lockedWorkingSet()

	assert.True(t, IsMonthLocked(ws, 1))
	assert.False(t, IsMonthLocked(ws, 2), "li-2 has an actual but it was never closed")
	assert.False(t, IsMonthLocked(ws, 3))
	assert.False(t, IsMonthLocked(ws, 0))
	assert.False(t, IsMonthLocked(nil, 1))
}

func TestIsMonthLocked_NoActiveItems(t *testing.T) {
	ws := &domain.BudgetWorkingSet{Year: 2025}

	assert.False(t, IsMonthLocked(ws, 1))
}

func TestLockedMonths(t *testing.T) {
	assert.Equal(t, []domain.Month{1}, LockedMonths(lockedWorkingSet()))
}
