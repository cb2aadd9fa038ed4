// Package metrics описывает счётчики Prometheus витрины.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "storefront"

// Metrics собирает счётчики событий витрины.
type Metrics struct {
	authEvents          *prometheus.CounterVec
	cartOperations      *prometheus.CounterVec
	recommendations     *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	activeVisitors      prometheus.Gauge
}

// New создаёт счётчики и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Signup, login, logout and session expiry events by outcome.",
		}, []string{"event", "outcome"}),
		cartOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_operations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"operation"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Generated recommendations by body type.",
		}, []string{"body_type"}),
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Storage strategy failures by strategy and operation.",
		}, []string{"strategy", "op"}),
		activeVisitors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_visitors",
			Help:      "Visitors with state held in memory.",
		}),
	}
	reg.MustRegister(m.authEvents, m.cartOperations, m.recommendations, m.persistenceFailures, m.activeVisitors)
	return m
}

// AuthEvent учитывает событие авторизации: event = signup|login|logout|expire.
func (m *Metrics) AuthEvent(event string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) CartOperation(op string) {
	m.cartOperations.WithLabelValues(op).Inc()
}

func (m *Metrics) Recommendation(bodyType string) {
	m.recommendations.WithLabelValues(bodyType).Inc()
}

// PersistenceFailure реализует storage.FailureCounter.
func (m *Metrics) PersistenceFailure(strategy, op string) {
	m.persistenceFailures.WithLabelValues(strategy, op).Inc()
}

func (m *Metrics) SetActiveVisitors(n int) {
	m.activeVisitors.Set(float64(n))
}
