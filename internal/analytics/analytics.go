// Package analytics отправляет события о работе подбора рекомендаций.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/apsaracreations/saree-shop/internal/lib/rabbitmq"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
)

// Tracker принимает события о сгенерированных рекомендациях.
type Tracker interface {
	TrackRecommendation(ctx context.Context, event models.RecommendationEvent)
}

// NewRecommendationEvent собирает событие recommendation_generated.
func NewRecommendationEvent(visitorID, bodyType, occasion, fabric string, count int, at time.Time) models.RecommendationEvent {
	return models.RecommendationEvent{
		Event:       rabbitmq.RecommendationRoutingKey,
		VisitorID:   visitorID,
		BodyType:    bodyType,
		Occasion:    occasion,
		Fabric:      fabric,
		ResultCount: count,
		At:          at.UTC(),
	}
}

// LogTracker только пишет события в лог. Используется, когда брокер не настроен.
type LogTracker struct {
	log *slog.Logger
}

func NewLogTracker(log *slog.Logger) *LogTracker {
	return &LogTracker{log: log}
}

func (t *LogTracker) TrackRecommendation(_ context.Context, e models.RecommendationEvent) {
	t.log.Info("recommendation generated",
		slog.String("body_type", e.BodyType),
		slog.String("occasion", e.Occasion),
		slog.String("fabric", e.Fabric),
		slog.Int("result_count", e.ResultCount),
	)
}

// Publisher публикует события в обменник RabbitMQ.
// Если публикация не удалась, событие пишется в лог.
type Publisher struct {
	log      *slog.Logger
	ch       rabbitmq.Channel
	exchange string
	fallback *LogTracker
}

func NewPublisher(log *slog.Logger, ch rabbitmq.Channel, exchange string) *Publisher {
	return &Publisher{
		log:      log,
		ch:       ch,
		exchange: exchange,
		fallback: NewLogTracker(log),
	}
}

func (p *Publisher) TrackRecommendation(ctx context.Context, e models.RecommendationEvent) {
	const op = "analytics.Publisher.TrackRecommendation"
	if err := rabbitmq.PublishMessage(p.ch, p.exchange, rabbitmq.RecommendationRoutingKey, e); err != nil {
		p.log.Error("failed to publish event", slog.String("op", op), sl.Err(err))
		p.fallback.TrackRecommendation(ctx, e)
	}
}
