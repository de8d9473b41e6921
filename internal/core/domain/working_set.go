package domain

import "time"

// BudgetWorkingSet is everything the engine needs for one organization/year, loaded together.
// Aggregation and comparison read it; they never mutate it. Writers invalidate it and callers
// obtain a fresh copy through an explicit reload.
type BudgetWorkingSet struct {
	OrganizationID  string            `json:"organizationID"`
	Year            int               `json:"year"`
	Categories      []Category        `json:"categories"`
	LineItems       []LineItem        `json:"lineItems"`
	Points          []BudgetDataPoint `json:"points"`
	BudgetVersion   *Version          `json:"budgetVersion,omitempty"`
	ForecastVersion *Version          `json:"forecastVersion,omitempty"`
	LoadedAt        time.Time         `json:"loadedAt"`
}

// IsBudgetLocked reports whether the budget version exists and is locked.
func (ws *BudgetWorkingSet) IsBudgetLocked() bool {
	return ws.BudgetVersion != nil && ws.BudgetVersion.IsLocked
}

// HasForecast reports whether the forecast has been derived for the year.
func (ws *BudgetWorkingSet) HasForecast() bool {
	return ws.ForecastVersion != nil
}

// CategoryByID looks up a category of the working set.
func (ws *BudgetWorkingSet) CategoryByID(categoryID string) (Category, bool) {
	for _, c := range ws.Categories {
		if c.CategoryID == categoryID {
			return c, true
		}
	}
	return Category{}, false
}

// PointIndex maps (line item, month) to the stored data point.
func (ws *BudgetWorkingSet) PointIndex() map[string]map[Month]BudgetDataPoint {
	idx := make(map[string]map[Month]BudgetDataPoint, len(ws.LineItems))
	for _, p := range ws.Points {
		byMonth, ok := idx[p.LineItemID]
		if !ok {
			byMonth = make(map[Month]BudgetDataPoint, MonthsPerYear)
			idx[p.LineItemID] = byMonth
		}
		byMonth[p.Month] = p
	}
	return idx
}

// DataPoint returns the stored record for a line item and month, if any.
func (ws *BudgetWorkingSet) DataPoint(lineItemID string, month Month) (BudgetDataPoint, bool) {
	for _, p := range ws.Points {
		if p.LineItemID == lineItemID && p.Month == month {
			return p, true
		}
	}
	return BudgetDataPoint{}, false
}

// ActiveLineItems returns the active line items that sit under an active category.
func (ws *BudgetWorkingSet) ActiveLineItems() []LineItem {
	active := make(map[string]bool, len(ws.Categories))
	for _, c := range ws.Categories {
		active[c.CategoryID] = c.IsActive
	}
	items := make([]LineItem, 0, len(ws.LineItems))
	for _, li := range ws.LineItems {
		if li.IsActive && active[li.CategoryID] {
			items = append(items, li)
		}
	}
	return items
}

// Records joins points with their line item and category, like the summary read does.
// Points whose line item is unknown are reported with empty names.
func (ws *BudgetWorkingSet) Records() []BudgetRecord {
	items := make(map[string]LineItem, len(ws.LineItems))
	for _, li := range ws.LineItems {
		items[li.LineItemID] = li
	}
	cats := make(map[string]Category, len(ws.Categories))
	for _, c := range ws.Categories {
		cats[c.CategoryID] = c
	}

	records := make([]BudgetRecord, 0, len(ws.Points))
	for _, p := range ws.Points {
		li := items[p.LineItemID]
		cat := cats[li.CategoryID]
		records = append(records, BudgetRecord{
			BudgetDataPoint: p,
			LineItemName:    li.Name,
			LineItemType:    li.Type,
			IsRecurring:     li.IsRecurring,
			CategoryID:      li.CategoryID,
			CategoryName:    cat.Name,
			CategoryType:    cat.Type,
			CategoryColor:   cat.Color,
		})
	}
	return records
}
