package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analytics — счётчики обработчика событий подбора.
type Analytics struct {
	selections *prometheus.CounterVec
	results    prometheus.Histogram
	dropped    prometheus.Counter
}

// NewAnalytics создаёт счётчики обработчика событий и регистрирует их в reg.
func NewAnalytics(reg prometheus.Registerer) *Analytics {
	a := &Analytics{
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "selections_total",
			Help:      "Recommendation form selections received from the storefront.",
		}, []string{"body_type", "occasion", "fabric"}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "suggestions_per_request",
			Help:      "Number of suggestions returned per recommendation request.",
			Buckets:   []float64{1, 2, 3},
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "dropped_events_total",
			Help:      "Events that could not be decoded.",
		}),
	}
	reg.MustRegister(a.selections, a.results, a.dropped)
	return a
}

func (a *Analytics) Selection(bodyType, occasion, fabric string, results int) {
	a.selections.WithLabelValues(bodyType, occasion, fabric).Inc()
	a.results.Observe(float64(results))
}

func (a *Analytics) Dropped() {
	a.dropped.Inc()
}
