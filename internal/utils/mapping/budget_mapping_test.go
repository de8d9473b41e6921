package mapping

import (
	"testing"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/SscSPs/budget_forecast_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainBudgetRecord_NullCategory(t *testing.T) {
	row := models.BudgetSummaryRow{
		BudgetData: models.BudgetData{
			OrganizationID: "org-1",
			LineItemID:     "li-1",
			Year:           2025,
			Month:          7,
			BudgetAmount:   decimal.NewFromInt(120),
		},
		LineItemName: "Hosting",
		LineItemType: "EXPENSE",
	}

	record := ToDomainBudgetRecord(row)

	assert.Equal(t, domain.Month(7), record.Month)
	assert.Equal(t, domain.Expense, record.LineItemType)
	assert.Empty(t, record.CategoryName)
	assert.Empty(t, record.CategoryID)
	assert.True(t, decimal.NewFromInt(120).Equal(record.BudgetAmount))
	assert.False(t, record.IsActualLocked())
}

func TestToDomainBudgetRecord_WithCategory(t *testing.T) {
	name, color := "Infrastructure", "#336699"
	row := models.BudgetSummaryRow{
		LineItemName:  "Hosting",
		CategoryName:  &name,
		CategoryColor: &color,
	}

	record := ToDomainBudgetRecord(row)

	assert.Equal(t, "Infrastructure", record.CategoryName)
	assert.Equal(t, "#336699", record.CategoryColor)
}
