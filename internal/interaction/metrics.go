package interaction

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts registrations and recognized gestures. A nil *Metrics
// records nothing.
type Metrics struct {
	registrations *prometheus.CounterVec
	rejected      prometheus.Counter
	recognized    *prometheus.CounterVec
	discarded     prometheus.Counter
}

// NewMetrics creates the engine collectors and registers them with reg.
// A nil reg leaves them unregistered, which is useful in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gestures",
			Name:      "registrations_total",
			Help:      "Accepted gesture registrations by gesture type.",
		}, []string{"gesture"}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gestures",
			Name:      "registrations_rejected_total",
			Help:      "Registrations rejected by validation.",
		}),
		recognized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gestures",
			Name:      "recognized_total",
			Help:      "Recognized gestures by family and gesture type.",
		}, []string{"family", "gesture"}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gestures",
			Name:      "click_bursts_discarded_total",
			Help:      "Click bursts whose count matched no registration.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.registrations, m.rejected, m.recognized, m.discarded)
	}
	return m
}

func (m *Metrics) registration(gt GestureType, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.rejected.Inc()
		return
	}
	m.registrations.WithLabelValues(string(gt)).Inc()
}

func (m *Metrics) recognize(gt GestureType) {
	if m == nil {
		return
	}
	m.recognized.WithLabelValues(gt.Family().String(), string(gt)).Inc()
}

func (m *Metrics) discard() {
	if m == nil {
		return
	}
	m.discarded.Inc()
}
