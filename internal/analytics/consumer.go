package analytics

import (
	"encoding/json"
	"log/slog"

	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
)

// SelectionCounter учитывает выбор в форме подбора.
type SelectionCounter interface {
	Selection(bodyType, occasion, fabric string, results int)
	Dropped()
}

// Aggregator обрабатывает события recommendation_generated из очереди аналитики.
type Aggregator struct {
	log     *slog.Logger
	counter SelectionCounter
}

func NewAggregator(log *slog.Logger, counter SelectionCounter) *Aggregator {
	return &Aggregator{log: log, counter: counter}
}

// HandleRecommendation разбирает событие и учитывает его. Нечитаемое событие
// отбрасывается без ошибки, чтобы не возвращаться в очередь бесконечно.
func (a *Aggregator) HandleRecommendation(body []byte) error {
	const op = "analytics.Aggregator.HandleRecommendation"
	var e models.RecommendationEvent
	if err := json.Unmarshal(body, &e); err != nil || e.BodyType == "" {
		a.log.Warn("dropping malformed event", slog.String("op", op), sl.Err(err))
		a.counter.Dropped()
		return nil
	}
	a.counter.Selection(e.BodyType, e.Occasion, e.Fabric, e.ResultCount)
	a.log.Debug("recommendation event counted",
		slog.String("op", op),
		slog.String("body_type", e.BodyType),
		slog.Int("result_count", e.ResultCount),
	)
	return nil
}
