package domain

import "time"

// EventType names a budget lifecycle event.
type EventType string

const (
	EventBudgetLocked     EventType = "budget.locked"
	EventBudgetUnlocked   EventType = "budget.unlocked"
	EventForecastDerived  EventType = "forecast.derived"
	EventMonthActualsLock EventType = "month.actuals_locked"
	EventDataChanged      EventType = "budget.data_changed"
	EventRegistryChanged  EventType = "registry.changed"
)

// EventTypes lists every event type, in the order they are bound by subscribers.
func EventTypes() []EventType {
	return []EventType{
		EventBudgetLocked,
		EventBudgetUnlocked,
		EventForecastDerived,
		EventMonthActualsLock,
		EventDataChanged,
		EventRegistryChanged,
	}
}

// BudgetEvent is published after a lifecycle transition or a data write has been persisted.
// Year is zero for registry changes, which apply to every year.
type BudgetEvent struct {
	Type           EventType `json:"type"`
	OrganizationID string    `json:"organizationID"`
	Year           int       `json:"year"`
	Month          *Month    `json:"month,omitempty"`
	UserID         string    `json:"userID"`
	Timestamp      time.Time `json:"timestamp"`
}
