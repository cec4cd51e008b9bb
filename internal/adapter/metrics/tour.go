package metrics

import "github.com/prometheus/client_golang/prometheus"

// Stop request outcomes.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// TourMetrics holds Prometheus metrics for the tour directory and stop requests.
type TourMetrics struct {
	StopRequests *prometheus.CounterVec
	MissingField *prometheus.CounterVec
	Events       prometheus.Gauge
}

// NewTourMetrics creates and registers tour metrics on the given registry.
func NewTourMetrics(reg prometheus.Registerer) *TourMetrics {
	m := &TourMetrics{
		StopRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stop_requests_total",
			Help:      "Total number of stop requests received, by result.",
		}, []string{"result"}),
		MissingField: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stop_request_missing_fields_total",
			Help:      "Total number of required fields missing from rejected stop requests, by field.",
		}, []string{"field"}),
		Events: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "directory_events",
			Help:      "Number of events in the tour directory.",
		}),
	}

	reg.MustRegister(m.StopRequests, m.MissingField, m.Events)
	return m
}

func (m *TourMetrics) StopAccepted() {
	m.StopRequests.WithLabelValues(ResultAccepted).Inc()
}

func (m *TourMetrics) StopRejected(missing []string) {
	m.StopRequests.WithLabelValues(ResultRejected).Inc()
	for _, field := range missing {
		m.MissingField.WithLabelValues(field).Inc()
	}
}

func (m *TourMetrics) SetEvents(n int) {
	m.Events.Set(float64(n))
}
