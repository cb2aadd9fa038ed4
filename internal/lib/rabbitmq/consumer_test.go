package rabbitmq

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	mu     sync.Mutex
	acked  []uint64
	nacked []uint64
	done   chan struct{}
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	a.acked = append(a.acked, tag)
	a.mu.Unlock()
	a.done <- struct{}{}
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	if requeue {
		a.nacked = append(a.nacked, tag)
	}
	a.mu.Unlock()
	a.done <- struct{}{}
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type fakeConsumer struct {
	deliveries chan amqp.Delivery
	err        error
	queue      string
}

func (c *fakeConsumer) Consume(queue, _ string, autoAck, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	c.queue = queue
	if autoAck {
		return nil, errors.New("auto ack is not expected")
	}
	return c.deliveries, c.err
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestConsumerMessage_AckAndNack(t *testing.T) {
	ack := &fakeAcknowledger{done: make(chan struct{}, 2)}
	consumer := &fakeConsumer{deliveries: make(chan amqp.Delivery, 2)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := func(body []byte) error {
		if string(body) == "bad" {
			return errors.New("cannot handle")
		}
		return nil
	}
	require.NoError(t, ConsumerMessage(ctx, newNoopLogger(), consumer, "analytics.recommendations", 2, handler))
	assert.Equal(t, "analytics.recommendations", consumer.queue)

	consumer.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte("good")}
	consumer.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("bad")}

	for i := 0; i < 2; i++ {
		select {
		case <-ack.done:
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for deliveries to be settled")
		}
	}

	ack.mu.Lock()
	defer ack.mu.Unlock()
	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Equal(t, []uint64{2}, ack.nacked)
}

func TestConsumerMessage_ConsumeError(t *testing.T) {
	consumer := &fakeConsumer{err: errors.New("channel closed")}

	err := ConsumerMessage(context.Background(), newNoopLogger(), consumer, "q", 1, func([]byte) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}
