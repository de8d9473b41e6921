package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetWorkingSet_Records(t *testing.T) {
	ws := &BudgetWorkingSet{
		OrganizationID: "org-1",
		Year:           2025,
		Categories:     []Category{{CategoryID: "cat-1", Name: "Rent", Type: Expense, Color: "#aa0000"}},
		LineItems:      []LineItem{{LineItemID: "li-1", CategoryID: "cat-1", Name: "Office", Type: Expense, IsRecurring: true}},
		Points: []BudgetDataPoint{
			{LineItemID: "li-1", Month: 1, BudgetAmount: decimal.NewFromInt(10)},
			{LineItemID: "li-1", Month: 2, BudgetAmount: decimal.NewFromInt(20)},
			{LineItemID: "li-gone", Month: 1, BudgetAmount: decimal.NewFromInt(5)},
		},
	}

	records := ws.Records()

	require.Len(t, records, 3)
	assert.Equal(t, "Office", records[0].LineItemName)
	assert.Equal(t, "Rent", records[0].CategoryName)
	assert.Equal(t, "#aa0000", records[0].CategoryColor)
	assert.True(t, records[0].IsRecurring)
	assert.Equal(t, Month(2), records[1].Month)
	assert.Empty(t, records[2].LineItemName, "points of unknown line items keep empty names")
	assert.Empty(t, records[2].CategoryName)
}
