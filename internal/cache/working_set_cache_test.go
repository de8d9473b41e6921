package cache

import (
	"testing"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingSetCache_SetGetDelete(t *testing.T) {
	c, err := NewWorkingSetCache(1000, 0)
	require.NoError(t, err)
	defer c.Close()

	ws2024 := &domain.BudgetWorkingSet{OrganizationID: "org-1", Year: 2024}
	ws2025 := &domain.BudgetWorkingSet{OrganizationID: "org-1", Year: 2025}
	other := &domain.BudgetWorkingSet{OrganizationID: "org-2", Year: 2025}
	c.Set(ws2024)
	c.Set(ws2025)
	c.Set(other)

	got, ok := c.Get("org-1", 2025)
	require.True(t, ok)
	assert.Same(t, ws2025, got)

	c.DeleteOrganization("org-1")

	_, ok = c.Get("org-1", 2024)
	assert.False(t, ok)
	_, ok = c.Get("org-1", 2025)
	assert.False(t, ok)
	got, ok = c.Get("org-2", 2025)
	require.True(t, ok)
	assert.Same(t, other, got)
}

func TestWorkingSetCache_NilIsNoop(t *testing.T) {
	var c *WorkingSetCache

	c.Set(&domain.BudgetWorkingSet{OrganizationID: "org-1", Year: 2025})
	_, ok := c.Get("org-1", 2025)
	assert.False(t, ok)
	c.DeleteOrganization("org-1")
	c.Close()
}

func TestCost(t *testing.T) {
	ws := &domain.BudgetWorkingSet{
		Categories: make([]domain.Category, 2),
		LineItems:  make([]domain.LineItem, 3),
		Points:     make([]domain.BudgetDataPoint, 36),
	}
	assert.Equal(t, int64(42), Cost(ws))
}
