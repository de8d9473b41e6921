package budgeting

import "github.com/SscSPs/budget_forecast_app/internal/core/domain"

// IsMonthLocked reports whether every active line item under an active category has a
// closed actual for month m. A year with no active line items is not locked.
func IsMonthLocked(ws *domain.BudgetWorkingSet, m domain.Month) bool {
	if ws == nil || !m.Valid() {
		return false
	}
	items := ws.ActiveLineItems()
	if len(items) == 0 {
		return false
	}
	idx := ws.PointIndex()
	for _, li := range items {
		p, ok := idx[li.LineItemID][m]
		if !ok || !p.IsActualLocked() {
			return false
		}
	}
	return true
}

// LockedMonths lists the closed months of the working set's year in order.
func LockedMonths(ws *domain.BudgetWorkingSet) []domain.Month {
	locked := make([]domain.Month, 0, domain.MonthsPerYear)
	for _, m := range domain.Months() {
		if IsMonthLocked(ws, m) {
			locked = append(locked, m)
		}
	}
	return locked
}
