package rabbitmq

import (
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (c *recordingChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg
	return c.err
}

func TestPublishMessage_EncodesJSON(t *testing.T) {
	ch := &recordingChannel{}

	err := PublishMessage(ch, "storefront.analytics", RecommendationRoutingKey, map[string]int{"result_count": 3})
	require.NoError(t, err)

	assert.Equal(t, "storefront.analytics", ch.exchange)
	assert.Equal(t, RecommendationRoutingKey, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), ch.msg.DeliveryMode)
	assert.JSONEq(t, `{"result_count":3}`, string(ch.msg.Body))
}

func TestPublishMessage_ChannelError(t *testing.T) {
	ch := &recordingChannel{err: errors.New("channel closed")}

	err := PublishMessage(ch, "x", "y", "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestPublishMessage_UnencodableMessage(t *testing.T) {
	ch := &recordingChannel{}

	err := PublishMessage(ch, "x", "y", make(chan int))
	require.Error(t, err)
	assert.Empty(t, ch.key)
}

func TestGetAnalyticsQueues(t *testing.T) {
	queues := GetAnalyticsQueues()
	require.NotEmpty(t, queues)

	seen := map[string]bool{}
	for _, q := range queues {
		assert.Falsef(t, seen[q.QueueName], "duplicate queue name: %s", q.QueueName)
		seen[q.QueueName] = true
	}
	assert.Equal(t, RecommendationRoutingKey, queues[0].RoutingKey)
}
