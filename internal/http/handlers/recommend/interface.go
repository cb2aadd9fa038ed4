package recommend

import (
	"context"

	"github.com/apsaracreations/saree-shop/internal/models"
	recommendservice "github.com/apsaracreations/saree-shop/internal/services/recommend"
)

// Service подбирает варианты по таблице рекомендаций.
type Service interface {
	Recommend(bodyType, occasion, fabric string) ([]models.Suggestion, error)
	Options() recommendservice.Options
}

// Tracker принимает событие о сгенерированных рекомендациях.
type Tracker interface {
	TrackRecommendation(ctx context.Context, event models.RecommendationEvent)
}

// Observer считает подборы по типу фигуры. Может быть nil.
type Observer interface {
	Recommendation(bodyType string)
}
