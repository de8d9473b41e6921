package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
)

// BudgetEventMessage is the wire form of a domain.BudgetEvent.
type BudgetEventMessage struct {
	Type           string    `json:"type"`
	OrganizationID string    `json:"organizationID"`
	Year           int       `json:"year"`
	Month          *int      `json:"month,omitempty"`
	UserID         string    `json:"userID"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewBudgetEventMessage converts event, stamping the current time if it has none.
func NewBudgetEventMessage(event domain.BudgetEvent) *BudgetEventMessage {
	msg := &BudgetEventMessage{
		Type:           string(event.Type),
		OrganizationID: event.OrganizationID,
		Year:           event.Year,
		UserID:         event.UserID,
		Timestamp:      event.Timestamp,
	}
	if event.Month != nil {
		m := int(*event.Month)
		msg.Month = &m
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return msg
}

// ToJSON converts the message to JSON bytes
func (m *BudgetEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetEventMessageFromJSON creates a message from JSON bytes
func BudgetEventMessageFromJSON(data []byte) (*BudgetEventMessage, error) {
	var msg BudgetEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ToDomain converts the message back into a domain.BudgetEvent.
func (m *BudgetEventMessage) ToDomain() domain.BudgetEvent {
	event := domain.BudgetEvent{
		Type:           domain.EventType(m.Type),
		OrganizationID: m.OrganizationID,
		Year:           m.Year,
		UserID:         m.UserID,
		Timestamp:      m.Timestamp,
	}
	if m.Month != nil {
		month := domain.Month(*m.Month)
		event.Month = &month
	}
	return event
}
