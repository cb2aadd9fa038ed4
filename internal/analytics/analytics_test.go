package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apsaracreations/saree-shop/internal/models"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func testEvent() models.RecommendationEvent {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return NewRecommendationEvent("visitor-1", "pear", "wedding", "silk", 3, at)
}

func TestNewRecommendationEvent(t *testing.T) {
	e := testEvent()
	assert.Equal(t, "recommendation_generated", e.Event)
	assert.Equal(t, 3, e.ResultCount)
	assert.Equal(t, "pear", e.BodyType)
}

func TestPublisher_PublishesJSON(t *testing.T) {
	ch := &mockChannel{}
	var published amqp.Publishing
	ch.On("Publish", "storefront.analytics", "recommendation_generated", false, false, mock.AnythingOfType("amqp.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(4).(amqp.Publishing) }).
		Return(nil)

	var logs bytes.Buffer
	p := NewPublisher(slog.New(slog.NewTextHandler(&logs, nil)), ch, "storefront.analytics")
	p.TrackRecommendation(context.Background(), testEvent())

	ch.AssertExpectations(t)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)

	var got models.RecommendationEvent
	require.NoError(t, json.Unmarshal(published.Body, &got))
	assert.Equal(t, "silk", got.Fabric)
	assert.Equal(t, "visitor-1", got.VisitorID)
	assert.Empty(t, logs.String())
}

func TestPublisher_FallsBackToLog(t *testing.T) {
	ch := &mockChannel{}
	ch.On("Publish", mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed"))

	var logs bytes.Buffer
	p := NewPublisher(slog.New(slog.NewTextHandler(&logs, nil)), ch, "storefront.analytics")
	p.TrackRecommendation(context.Background(), testEvent())

	assert.Contains(t, logs.String(), "failed to publish event")
	assert.Contains(t, logs.String(), "recommendation generated")
	assert.Contains(t, logs.String(), "result_count=3")
}

func TestLogTracker(t *testing.T) {
	var logs bytes.Buffer
	tr := NewLogTracker(slog.New(slog.NewTextHandler(&logs, nil)))

	tr.TrackRecommendation(context.Background(), testEvent())

	assert.Contains(t, logs.String(), "body_type=pear")
	assert.Contains(t, logs.String(), "occasion=wedding")
}
