package rabbitmq

// QueueConfig — очередь и ключ маршрутизации, с которым она привязана к обменнику.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// RecommendationRoutingKey — ключ событий о сгенерированных рекомендациях.
const RecommendationRoutingKey = "recommendation_generated"

// GetAnalyticsQueues возвращает очереди аналитики витрины.
func GetAnalyticsQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "analytics.recommendations", RoutingKey: RecommendationRoutingKey},
	}
}
