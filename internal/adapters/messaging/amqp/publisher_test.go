package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishCall struct {
	exchange string
	key      string
	msg      amqp091.Publishing
}

type fakeChannel struct {
	declared   []string
	declareErr error
	publishErr error
	published  []publishCall
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishCall{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "budget.events")
	require.NoError(t, err)
	assert.Equal(t, []string{"budget.events:direct"}, ch.declared)

	month := domain.Month(4)
	ts := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	event := domain.BudgetEvent{
		Type:           domain.EventMonthActualsLock,
		OrganizationID: "org-1",
		Year:           2025,
		Month:          &month,
		UserID:         "user-1",
		Timestamp:      ts,
	}

	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, ch.published, 1)
	call := ch.published[0]
	assert.Equal(t, "budget.events", call.exchange)
	assert.Equal(t, string(domain.EventMonthActualsLock), call.key)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, call.msg.DeliveryMode)

	msg, err := BudgetEventMessageFromJSON(call.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, "org-1", msg.OrganizationID)
	assert.Equal(t, 2025, msg.Year)
	require.NotNil(t, msg.Month)
	assert.Equal(t, 4, *msg.Month)
	assert.True(t, ts.Equal(msg.Timestamp))
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p, err := newPublisher(ch, "budget.events")
	require.NoError(t, err)

	err = p.Publish(context.Background(), domain.BudgetEvent{Type: domain.EventBudgetLocked})
	assert.ErrorContains(t, err, "channel closed")
}

func TestNewPublisher_DeclareFailureClosesChannel(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}

	_, err := newPublisher(ch, "budget.events")

	assert.ErrorContains(t, err, "declare exchange")
	assert.True(t, ch.closed)
}

func TestNewBudgetEventMessage_OmitsMonthForYearEvents(t *testing.T) {
	msg := NewBudgetEventMessage(domain.BudgetEvent{Type: domain.EventBudgetLocked, Year: 2025})

	assert.Nil(t, msg.Month)
	assert.False(t, msg.Timestamp.IsZero())

	body, err := msg.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "month")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), domain.BudgetEvent{}))
}
