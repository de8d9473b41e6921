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

type fakeConsumeChannel struct {
	fakeChannel
	bound      []string
	bindErr    error
	deliveries chan amqp091.Delivery
}

func (f *fakeConsumeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error) {
	return amqp091.Queue{Name: "amq.gen-1"}, nil
}

func (f *fakeConsumeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error {
	if f.bindErr != nil {
		return f.bindErr
	}
	f.bound = append(f.bound, exchange+"/"+key+"->"+name)
	return nil
}

func (f *fakeConsumeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error) {
	return f.deliveries, nil
}

func TestNewSubscriber_BindsEveryEventType(t *testing.T) {
	ch := &fakeConsumeChannel{deliveries: make(chan amqp091.Delivery)}

	_, err := newSubscriber(ch, "budget.events")
	require.NoError(t, err)

	assert.Equal(t, []string{"budget.events:direct"}, ch.declared)
	require.Len(t, ch.bound, len(domain.EventTypes()))
	assert.Contains(t, ch.bound, "budget.events/budget.data_changed->amq.gen-1")
	assert.Contains(t, ch.bound, "budget.events/month.actuals_locked->amq.gen-1")
}

func TestNewSubscriber_BindFailureClosesChannel(t *testing.T) {
	ch := &fakeConsumeChannel{bindErr: errors.New("not found")}

	_, err := newSubscriber(ch, "budget.events")

	assert.ErrorContains(t, err, "bind queue")
	assert.True(t, ch.closed)
}

func TestSubscriber_RunDeliversEvents(t *testing.T) {
	ch := &fakeConsumeChannel{deliveries: make(chan amqp091.Delivery, 3)}
	s, err := newSubscriber(ch, "budget.events")
	require.NoError(t, err)

	month := domain.Month(2)
	body, err := NewBudgetEventMessage(domain.BudgetEvent{
		Type:           domain.EventMonthActualsLock,
		OrganizationID: "org-1",
		Year:           2025,
		Month:          &month,
		Timestamp:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}).ToJSON()
	require.NoError(t, err)

	ch.deliveries <- amqp091.Delivery{RoutingKey: "month.actuals_locked", Body: []byte("not json")}
	ch.deliveries <- amqp091.Delivery{RoutingKey: "month.actuals_locked", Body: body}
	close(ch.deliveries)

	var got []domain.BudgetEvent
	err = s.Run(context.Background(), func(_ context.Context, e domain.BudgetEvent) {
		got = append(got, e)
	})

	assert.ErrorIs(t, err, ErrDeliveriesClosed)
	require.Len(t, got, 1)
	assert.Equal(t, domain.EventMonthActualsLock, got[0].Type)
	assert.Equal(t, "org-1", got[0].OrganizationID)
	require.NotNil(t, got[0].Month)
	assert.Equal(t, month, *got[0].Month)
}

func TestSubscriber_RunStopsWithContext(t *testing.T) {
	ch := &fakeConsumeChannel{deliveries: make(chan amqp091.Delivery)}
	s, err := newSubscriber(ch, "budget.events")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx, func(context.Context, domain.BudgetEvent) {
		t.Fatal("no event expected")
	}))
}
